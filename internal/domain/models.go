package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

type MenuItem struct {
	ID          int             `json:"id"`
	Name        LocalizedText   `json:"name"`
	Description LocalizedText   `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Video       string          `json:"video,omitempty"`
	CategoryID  int             `json:"category_id"`
	Active      bool            `json:"active"`
	Ingredients LocalizedText   `json:"ingredients"`
	Nutrition   LocalizedText   `json:"nutrition"`
	Allergies   LocalizedText   `json:"allergies"`
	PrepTime    LocalizedText   `json:"prepTime"`
}

type Menu struct {
	Categories []Category `json:"categories"`
	Items      []MenuItem `json:"items"`
}

func (m Menu) FindItem(id int) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

type CartLine struct {
	Item MenuItem `json:"item"`
	Qty  int      `json:"qty"`
}

// CartState is the serialisable form of a cart: its lines plus staged quantities.
type CartState struct {
	Lines  []CartLine  `json:"lines"`
	Staged map[int]int `json:"staged,omitempty"`
}

type CustomerInfo struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	MarketingConsent  bool   `json:"marketingConsent"`
	NewsletterConsent bool   `json:"newsletterConsent"`
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

var ErrInvalidOrderType = errors.New("order type must be dine-in or takeaway")

func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(strings.ToLower(strings.TrimSpace(s))) {
	case OrderTypeDineIn:
		return OrderTypeDineIn, nil
	case OrderTypeTakeaway:
		return OrderTypeTakeaway, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrderType, s)
}

type OrderLine struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

type OrderPayload struct {
	Items             []OrderLine     `json:"items"`
	OrderType         OrderType       `json:"orderType"`
	TableNumber       *int            `json:"tableNumber"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail"`
	MarketingConsent  bool            `json:"marketingConsent"`
	NewsletterConsent bool            `json:"newsletterConsent"`
	Total             decimal.Decimal `json:"total"`
}

// MarshalJSON sends the total as a plain JSON number with two decimals.
func (p OrderPayload) MarshalJSON() ([]byte, error) {
	type payload OrderPayload
	return json.Marshal(struct {
		payload
		Total json.Number `json:"total"`
	}{
		payload: payload(p),
		Total:   json.Number(p.Total.StringFixed(2)),
	})
}

type StorefrontEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	OrderType OrderType `json:"order_type,omitempty"`
	Total     string    `json:"total,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventMenuFallback   = "menu_fallback"
	EventOrderSubmitted = "order_submitted"
	EventOrderFailed    = "order_failed"
)

type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusFailed    OrderStatus = "failed"
)

// OrderRecord is one submission attempt as kept in the order journal.
type OrderRecord struct {
	ID            int64           `json:"id"`
	SessionID     string          `json:"session_id"`
	OrderType     OrderType       `json:"order_type"`
	TableNumber   *int            `json:"table_number,omitempty"`
	CustomerEmail string          `json:"customer_email"`
	ItemCount     int             `json:"item_count"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	Detail        string          `json:"detail,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DailyStats aggregates storefront events for one calendar day (UTC).
type DailyStats struct {
	Date            string `json:"date"`
	OrdersSubmitted int64  `json:"ordersSubmitted"`
	OrdersFailed    int64  `json:"ordersFailed"`
	MenuFallbacks   int64  `json:"menuFallbacks"`
	Revenue         string `json:"revenue"`
}
