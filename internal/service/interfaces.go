package service

import (
	"context"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/order"
)

type StorefrontServiceInterface interface {
	StartSession(ctx context.Context, req StartRequest) (SessionView, error)
	Session(ctx context.Context, id string) (SessionView, error)
	SetLanguage(ctx context.Context, id, language string) (SessionView, error)
	SetOrderType(ctx context.Context, id, orderType string) (SessionView, error)
	SelectCategory(ctx context.Context, id, category string) (SessionView, error)

	Categories(ctx context.Context, id string) ([]CategoryView, error)
	CategoryItems(ctx context.Context, id string) ([]ItemView, error)
	Item(ctx context.Context, id string, itemID int) (ItemView, error)

	Cart(ctx context.Context, id string) (CartView, error)
	AddToCart(ctx context.Context, id string, itemID int) (CartView, error)
	RemoveFromCart(ctx context.Context, id string, itemID int) (CartView, error)
	ClearCart(ctx context.Context, id string) (CartView, error)
	StageQuantity(ctx context.Context, id string, itemID, delta int) (int, error)
	CommitStaged(ctx context.Context, id string, itemID int) (CartView, error)
	OpenCart(ctx context.Context, id string) (SessionView, error)
	CloseCart(ctx context.Context, id string) (SessionView, error)

	BeginCheckout(ctx context.Context, id string) (SessionView, error)
	CancelCheckout(ctx context.Context, id string) (SessionView, error)
	UpdateCustomer(ctx context.Context, id string, info domain.CustomerInfo) (SessionView, error)
	ConfirmOrder(ctx context.Context, id string) (OrderResult, error)
	OrderHistory(ctx context.Context, id string) ([]domain.OrderRecord, error)

	TableQRCode(table int) ([]byte, error)
}

type MenuLoader interface {
	LoadOrDefault(ctx context.Context, fallback domain.Menu, cookies domain.UpstreamCookies) (domain.Menu, error)
}

type OrderSubmitter interface {
	Submit(ctx context.Context, payload domain.OrderPayload, cookies domain.UpstreamCookies) (order.Confirmation, error)
}

type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type OrderJournal interface {
	Record(ctx context.Context, record *domain.OrderRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.OrderRecord, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.StorefrontEvent) error
}

var _ StorefrontServiceInterface = (*StorefrontService)(nil)
var _ QRGenerator = TableQRGenerator{}
