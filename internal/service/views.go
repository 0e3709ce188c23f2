package service

import (
	"time"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/media"
	"aroma-storefront/internal/order"
)

type StartRequest struct {
	Language  string `json:"language"`
	OrderType string `json:"orderType"`
	Table     *int   `json:"table"`
}

type SessionView struct {
	ID             string              `json:"id"`
	Language       domain.Language     `json:"language"`
	OrderType      domain.OrderType    `json:"orderType,omitempty"`
	TableNumber    *int                `json:"tableNumber,omitempty"`
	ActiveCategory string              `json:"activeCategory"`
	Degraded       bool                `json:"degraded"`
	MenuError      string              `json:"menuError,omitempty"`
	CartOpen       bool                `json:"cartOpen"`
	CheckoutOpen   bool                `json:"checkoutOpen"`
	CartCount      int                 `json:"cartCount"`
	Customer       domain.CustomerInfo `json:"customer"`
	Notice         *domain.Notice      `json:"notice,omitempty"`
	Labels         map[string]string   `json:"labels"`
}

type CategoryView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Key      string `json:"key"`
	Icon     string `json:"icon,omitempty"`
	Selected bool   `json:"selected"`
}

type ItemView struct {
	ID          int         `json:"id"`
	CategoryID  int         `json:"categoryId"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Ingredients string      `json:"ingredients,omitempty"`
	Nutrition   string      `json:"nutrition,omitempty"`
	Allergies   string      `json:"allergies,omitempty"`
	PrepTime    string      `json:"prepTime,omitempty"`
	Price       string      `json:"price"`
	Media       media.Media `json:"media"`
	Staged      int         `json:"staged"`
	InCart      int         `json:"inCart"`
}

type CartLineView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type CartView struct {
	Lines     []CartLineView `json:"lines"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
	Open      bool           `json:"open"`
}

type OrderResult struct {
	Status       domain.OrderStatus `json:"status"`
	Total        string             `json:"total"`
	TableNumber  *int               `json:"tableNumber"`
	Confirmation order.Confirmation `json:"confirmation,omitempty"`
	Notice       *domain.Notice     `json:"notice,omitempty"`
	SubmittedAt  time.Time          `json:"submittedAt"`
}
