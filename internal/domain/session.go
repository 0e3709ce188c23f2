package domain

import (
	"errors"
	"time"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient signal shown to the diner until ExpiresAt.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func (n *Notice) Active(now time.Time) bool {
	return n != nil && now.Before(n.ExpiresAt)
}

// UpstreamCookies are the restaurant API cookies issued to one diner, by name.
type UpstreamCookies map[string]string

// Session holds everything a diner's storefront keeps between requests.
type Session struct {
	ID             string          `json:"id"`
	Language       Language        `json:"language"`
	OrderType      OrderType       `json:"order_type"`
	TableNumber    *int            `json:"table_number,omitempty"`
	ActiveCategory string          `json:"active_category"`
	Menu           Menu            `json:"menu"`
	MenuError      string          `json:"menu_error,omitempty"`
	Cart           CartState       `json:"cart"`
	Customer       CustomerInfo    `json:"customer"`
	CartOpen       bool            `json:"cart_open"`
	CheckoutOpen   bool            `json:"checkout_open"`
	Notice         *Notice         `json:"notice,omitempty"`
	Upstream       UpstreamCookies `json:"upstream_cookies,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Degraded reports whether the session runs on the built-in fallback menu.
func (s *Session) Degraded() bool {
	return s.MenuError != ""
}

var ErrSessionNotFound = errors.New("session not found")
