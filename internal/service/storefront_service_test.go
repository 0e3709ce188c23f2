package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/menu"
	"aroma-storefront/internal/mocks"
	"aroma-storefront/internal/order"
	"aroma-storefront/internal/service"
	"aroma-storefront/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedTable int

func (f fixedTable) Assign() int { return int(f) }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testMenu() domain.Menu {
	return domain.Menu{
		Categories: []domain.Category{
			{ID: 2, Name: "Desserts", SortOrder: 2, Active: true},
			{ID: 1, Name: "Burgers", SortOrder: 1, Active: true},
		},
		Items: []domain.MenuItem{
			{
				ID:         1,
				Name:       domain.LocalizedMap(map[domain.Language]string{domain.LangEnglish: "Classic Burger", domain.LangSpanish: "Burger Clásico"}),
				Price:      decimal.RequireFromString("12.99"),
				CategoryID: 1,
				Active:     true,
			},
			{
				ID:         2,
				Name:       domain.PlainText("Chocolate Cake"),
				Price:      decimal.RequireFromString("5.50"),
				CategoryID: 2,
				Active:     true,
			},
		},
	}
}

type fixture struct {
	svc       *service.StorefrontService
	menus     *mocks.MenuLoader
	orders    *mocks.OrderSubmitter
	journal   *mocks.OrderJournal
	publisher *mocks.EventPublisher
	clock     *clock
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		menus:     mocks.NewMenuLoader(t),
		orders:    mocks.NewOrderSubmitter(t),
		journal:   mocks.NewOrderJournal(t),
		publisher: mocks.NewEventPublisher(t),
		clock:     &clock{now: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)},
	}
	f.svc = service.NewStorefrontService(f.menus, f.orders, storage.NewMemorySessionStore(time.Hour), service.Options{
		Journal:   f.journal,
		Publisher: f.publisher,
		Tables:    fixedTable(9),
		Clock:     f.clock.Now,
	})
	return f
}

// start opens a session on testMenu and fills the cart with two burgers.
func (f *fixture) start(t *testing.T, req service.StartRequest) string {
	t.Helper()
	f.menus.On("LoadOrDefault", mock.Anything, mock.Anything, mock.Anything).Return(testMenu(), nil).Once()
	view, err := f.svc.StartSession(context.Background(), req)
	require.NoError(t, err)
	return view.ID
}

func (f *fixture) fillCart(t *testing.T, id string, customer domain.CustomerInfo) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.AddToCart(ctx, id, 1)
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, id, 1)
	require.NoError(t, err)
	_, err = f.svc.UpdateCustomer(ctx, id, customer)
	require.NoError(t, err)
}

func TestStorefrontService_StartSession(t *testing.T) {
	table := 4
	zero := 0

	tests := []struct {
		name      string
		req       service.StartRequest
		menu      domain.Menu
		loadErr   error
		wantErr   error
		check     func(t *testing.T, view service.SessionView)
		published string
	}{
		{
			name: "menu_loaded",
			req:  service.StartRequest{},
			menu: testMenu(),
			check: func(t *testing.T, view service.SessionView) {
				assert.Equal(t, domain.LangEnglish, view.Language)
				assert.False(t, view.Degraded)
				assert.Equal(t, "burgers", view.ActiveCategory)
				assert.Empty(t, view.OrderType)
				assert.Equal(t, "Takeaway", view.Labels["takeaway"])
			},
		},
		{
			name:      "fallback_menu",
			req:       service.StartRequest{Language: "ES"},
			menu:      menu.Fallback(),
			loadErr:   errors.New("HTTP 503: Service Unavailable"),
			published: domain.EventMenuFallback,
			check: func(t *testing.T, view service.SessionView) {
				assert.True(t, view.Degraded)
				assert.Equal(t, "HTTP 503: Service Unavailable", view.MenuError)
				assert.Equal(t, "hamburguesas", view.ActiveCategory)
				assert.Equal(t, "Para llevar", view.Labels["takeaway"])
			},
		},
		{
			name: "table_implies_dine_in",
			req:  service.StartRequest{Table: &table},
			menu: testMenu(),
			check: func(t *testing.T, view service.SessionView) {
				assert.Equal(t, domain.OrderTypeDineIn, view.OrderType)
				require.NotNil(t, view.TableNumber)
				assert.Equal(t, 4, *view.TableNumber)
			},
		},
		{
			name:    "unsupported_language",
			req:     service.StartRequest{Language: "xx"},
			wantErr: domain.ErrUnsupportedLanguage,
		},
		{
			name:    "invalid_order_type",
			req:     service.StartRequest{OrderType: "delivery"},
			wantErr: domain.ErrInvalidOrderType,
		},
		{
			name:    "invalid_table",
			req:     service.StartRequest{Table: &zero},
			wantErr: service.ErrInvalidTable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			if testCase.wantErr == nil {
				f.menus.On("LoadOrDefault", mock.Anything, mock.Anything, mock.Anything).Return(testCase.menu, testCase.loadErr).Once()
			}
			if testCase.published != "" {
				f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.StorefrontEvent) bool {
					return e.Type == testCase.published && e.SessionID != "" && e.ID != ""
				})).Return(nil).Once()
			}

			view, err := f.svc.StartSession(context.Background(), testCase.req)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, view.ID)
			testCase.check(t, view)
		})
	}
}

func TestStorefrontService_FallbackCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.menus.On("LoadOrDefault", mock.Anything, mock.Anything, mock.Anything).Return(menu.Fallback(), errors.New("network down")).Once()
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	view, err := f.svc.StartSession(ctx, service.StartRequest{})
	require.NoError(t, err)

	categories, err := f.svc.Categories(ctx, view.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	_, err = f.svc.AddToCart(ctx, view.ID, 1)
	require.NoError(t, err)
	cartView, err := f.svc.AddToCart(ctx, view.ID, 1)
	require.NoError(t, err)

	require.Len(t, cartView.Lines, 1)
	assert.Equal(t, 2, cartView.Lines[0].Qty)
	assert.Equal(t, "25.98", cartView.Total)
	assert.Equal(t, "25.98", cartView.Lines[0].LineTotal)
}

func TestStorefrontService_CartOperations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{})

	cartView, err := f.svc.AddToCart(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, "5.50", cartView.Total)

	_, err = f.svc.AddToCart(ctx, id, 99)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	staged, err := f.svc.StageQuantity(ctx, id, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, staged)
	staged, err = f.svc.StageQuantity(ctx, id, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, staged)

	_, err = f.svc.StageQuantity(ctx, id, 99, 1)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	cartView, err = f.svc.CommitStaged(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cartView.ItemCount)
	assert.Equal(t, "31.48", cartView.Total)

	item, err := f.svc.Item(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Staged)
	assert.Equal(t, 2, item.InCart)
	assert.Equal(t, "12.99", item.Price)

	staged, err = f.svc.StageQuantity(ctx, id, 1, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, staged)

	cartView, err = f.svc.RemoveFromCart(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cartView.ItemCount)

	cartView, err = f.svc.RemoveFromCart(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cartView.ItemCount)

	cartView, err = f.svc.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, cartView.Lines)
	assert.Equal(t, "0.00", cartView.Total)

	_, err = f.svc.Cart(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStorefrontService_SetLanguageRemapsCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{})

	view, err := f.svc.SelectCategory(ctx, id, " Desserts ")
	require.NoError(t, err)
	assert.Equal(t, "desserts", view.ActiveCategory)

	view, err = f.svc.SetLanguage(ctx, id, "es")
	require.NoError(t, err)
	assert.Equal(t, domain.LangSpanish, view.Language)
	assert.Equal(t, "postres", view.ActiveCategory)

	categories, err := f.svc.Categories(ctx, id)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Hamburguesas", categories[0].Name)
	assert.False(t, categories[0].Selected)
	assert.Equal(t, "Postres", categories[1].Name)
	assert.True(t, categories[1].Selected)

	items, err := f.svc.CategoryItems(ctx, id)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	_, err = f.svc.SetLanguage(ctx, id, "klingon")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)

	view, err = f.svc.SelectCategory(ctx, id, "nothing here")
	require.NoError(t, err)
	items, err = f.svc.CategoryItems(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "nothing here", view.ActiveCategory)
}

func TestStorefrontService_LocalizedCartNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{Language: "es"})

	cartView, err := f.svc.AddToCart(ctx, id, 1)
	require.NoError(t, err)
	require.Len(t, cartView.Lines, 1)
	assert.Equal(t, "Burger Clásico", cartView.Lines[0].Name)

	_, err = f.svc.SetLanguage(ctx, id, "en")
	require.NoError(t, err)
	cartView, err = f.svc.AddToCart(ctx, id, 2)
	require.NoError(t, err)
	require.Len(t, cartView.Lines, 2)
	assert.Equal(t, "Chocolate Cake", cartView.Lines[1].Name)
}

func TestStorefrontService_CheckoutFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{OrderType: "takeaway"})

	view, err := f.svc.OpenCart(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.CartOpen)

	_, err = f.svc.BeginCheckout(ctx, id)
	assert.ErrorIs(t, err, service.ErrEmptyCart)

	_, err = f.svc.AddToCart(ctx, id, 1)
	require.NoError(t, err)

	view, err = f.svc.BeginCheckout(ctx, id)
	require.NoError(t, err)
	assert.True(t, view.CheckoutOpen)
	assert.Equal(t, 1, view.CartCount)

	view, err = f.svc.CancelCheckout(ctx, id)
	require.NoError(t, err)
	assert.False(t, view.CheckoutOpen)
	assert.True(t, view.CartOpen)

	view, err = f.svc.CloseCart(ctx, id)
	require.NoError(t, err)
	assert.False(t, view.CartOpen)
}

func TestStorefrontService_ConfirmOrderSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{OrderType: "dine-in"})
	f.fillCart(t, id, domain.CustomerInfo{Name: "Ana", Email: "ana@example.com", NewsletterConsent: true})
	_, err := f.svc.StageQuantity(ctx, id, 2, 1)
	require.NoError(t, err)
	_, err = f.svc.BeginCheckout(ctx, id)
	require.NoError(t, err)

	f.orders.On("Submit", mock.Anything, mock.MatchedBy(func(p domain.OrderPayload) bool {
		return p.OrderType == domain.OrderTypeDineIn &&
			p.TableNumber != nil && *p.TableNumber == 9 &&
			len(p.Items) == 1 && p.Items[0].ID == 1 && p.Items[0].Qty == 2 &&
			p.CustomerName == "Ana" && p.NewsletterConsent &&
			p.Total.StringFixed(2) == "25.98"
	}), mock.Anything).Return(order.Confirmation(`{"orderId":42}`), nil).Once()
	f.journal.On("Record", mock.Anything, mock.MatchedBy(func(r *domain.OrderRecord) bool {
		return r.Status == domain.OrderStatusSubmitted && r.ItemCount == 2 && r.SessionID == id
	})).Return(errors.New("db down")).Once()
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.StorefrontEvent) bool {
		return e.Type == domain.EventOrderSubmitted && e.Total == "25.98"
	})).Return(nil).Once()

	result, err := f.svc.ConfirmOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSubmitted, result.Status)
	assert.Equal(t, "25.98", result.Total)
	assert.JSONEq(t, `{"orderId":42}`, string(result.Confirmation))
	require.NotNil(t, result.Notice)
	assert.Equal(t, domain.NoticeSuccess, result.Notice.Kind)
	assert.Equal(t, "Order placed successfully!", result.Notice.Message)

	view, err := f.svc.Session(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, view.CartCount)
	assert.False(t, view.CartOpen)
	assert.False(t, view.CheckoutOpen)
	assert.Equal(t, domain.CustomerInfo{}, view.Customer)
	assert.NotNil(t, view.Notice)

	item, err := f.svc.Item(ctx, id, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Staged)

	f.clock.Advance(2 * time.Second)
	view, err = f.svc.Session(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, view.Notice)

	f.clock.Advance(2 * time.Second)
	view, err = f.svc.Session(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.Notice)
}

func TestStorefrontService_ConfirmOrderFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{OrderType: "takeaway", Language: "es"})
	f.fillCart(t, id, domain.CustomerInfo{Name: "Ana", Email: "ana@example.com"})

	submitErr := &order.SubmitError{StatusCode: 500, Detail: "kitchen closed"}
	f.orders.On("Submit", mock.Anything, mock.MatchedBy(func(p domain.OrderPayload) bool {
		return p.OrderType == domain.OrderTypeTakeaway && p.TableNumber == nil
	}), mock.Anything).Return(nil, submitErr).Once()
	f.journal.On("Record", mock.Anything, mock.MatchedBy(func(r *domain.OrderRecord) bool {
		return r.Status == domain.OrderStatusFailed && r.Detail == "HTTP 500: kitchen closed"
	})).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.StorefrontEvent) bool {
		return e.Type == domain.EventOrderFailed
	})).Return(nil).Once()

	result, err := f.svc.ConfirmOrder(ctx, id)
	var target *order.SubmitError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 500, target.StatusCode)
	assert.Equal(t, domain.OrderStatusFailed, result.Status)
	require.NotNil(t, result.Notice)
	assert.Equal(t, domain.NoticeError, result.Notice.Kind)
	assert.Equal(t, "El pedido ha fallado: HTTP 500: kitchen closed", result.Notice.Message)

	cartView, err := f.svc.Cart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, cartView.ItemCount)
	assert.Equal(t, "25.98", cartView.Total)

	view, err := f.svc.Session(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Customer.Name)
}

func TestStorefrontService_ConfirmOrderRejected(t *testing.T) {
	tests := []struct {
		name        string
		req         service.StartRequest
		customer    domain.CustomerInfo
		skipCart    bool
		wantErr     error
		wantMessage string
	}{
		{
			name:     "empty_cart",
			req:      service.StartRequest{OrderType: "takeaway"},
			customer: domain.CustomerInfo{Name: "Ana", Email: "ana@example.com"},
			skipCart: true,
			wantErr:  service.ErrEmptyCart,
		},
		{
			name:        "missing_name",
			req:         service.StartRequest{OrderType: "takeaway", Language: "es"},
			customer:    domain.CustomerInfo{Name: "   ", Email: "ana@example.com"},
			wantErr:     order.ErrMissingFields,
			wantMessage: "Por favor, introduce nombre y correo electrónico",
		},
		{
			name:        "invalid_email",
			req:         service.StartRequest{OrderType: "takeaway"},
			customer:    domain.CustomerInfo{Name: "Ana", Email: "ana@example"},
			wantErr:     order.ErrInvalidEmail,
			wantMessage: "Please enter a valid email address",
		},
		{
			name:     "no_order_type",
			req:      service.StartRequest{},
			customer: domain.CustomerInfo{Name: "Ana", Email: "ana@example.com"},
			wantErr:  domain.ErrInvalidOrderType,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			id := f.start(t, testCase.req)
			if testCase.skipCart {
				_, err := f.svc.UpdateCustomer(ctx, id, testCase.customer)
				require.NoError(t, err)
			} else {
				f.fillCart(t, id, testCase.customer)
			}

			_, err := f.svc.ConfirmOrder(ctx, id)
			require.ErrorIs(t, err, testCase.wantErr)
			if testCase.wantMessage != "" {
				var validationErr *order.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, testCase.wantMessage, validationErr.Message)
			}
		})
	}
}

func TestStorefrontService_OrderHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{})

	records := []domain.OrderRecord{{ID: 3, SessionID: id, Status: domain.OrderStatusSubmitted}}
	f.journal.On("ListBySession", mock.Anything, id).Return(records, nil).Once()
	got, err := f.svc.OrderHistory(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	f.journal.On("ListBySession", mock.Anything, id).Return(nil, errors.New("timeout")).Once()
	_, err = f.svc.OrderHistory(ctx, id)
	assert.EqualError(t, err, "failed to list orders: timeout")

	_, err = f.svc.OrderHistory(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStorefrontService_OrderHistoryWithoutJournal(t *testing.T) {
	menus := mocks.NewMenuLoader(t)
	menus.On("LoadOrDefault", mock.Anything, mock.Anything, mock.Anything).Return(testMenu(), nil).Once()
	svc := service.NewStorefrontService(menus, mocks.NewOrderSubmitter(t), storage.NewMemorySessionStore(time.Hour), service.Options{})

	view, err := svc.StartSession(context.Background(), service.StartRequest{})
	require.NoError(t, err)

	records, err := svc.OrderHistory(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestStorefrontService_TableQRCode(t *testing.T) {
	svc := service.NewStorefrontService(mocks.NewMenuLoader(t), mocks.NewOrderSubmitter(t), storage.NewMemorySessionStore(time.Hour), service.Options{
		QR: service.TableQRGenerator{BaseURL: "https://aroma.example/"},
	})

	png, err := svc.TableQRCode(12)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = svc.TableQRCode(0)
	assert.ErrorIs(t, err, service.ErrInvalidTable)

	assert.Equal(t, "https://aroma.example/?table=12", service.TableQRGenerator{BaseURL: "https://aroma.example/"}.URL(12))
}

func TestStorefrontService_TableQRCodeGeneratorError(t *testing.T) {
	qr := mocks.NewQRGenerator(t)
	qr.On("Generate", 3).Return(nil, errors.New("encode failed")).Once()
	svc := service.NewStorefrontService(mocks.NewMenuLoader(t), mocks.NewOrderSubmitter(t), storage.NewMemorySessionStore(time.Hour), service.Options{QR: qr})

	_, err := svc.TableQRCode(3)
	assert.EqualError(t, err, "encode failed")
}

func TestStorefrontService_ConcurrentAdds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.start(t, service.StartRequest{})

	const workers = 40
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddToCart(ctx, id, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cartView, err := f.svc.Cart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, workers, cartView.ItemCount)
}

func TestStorefrontService_OrdersCarryTheirSessionCookie(t *testing.T) {
	var (
		mu       sync.Mutex
		issued   int
		received = map[string]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		switch r.URL.Path {
		case "/api/menu":
			issued++
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: fmt.Sprintf("diner-%d", issued), Path: "/"})
			w.Write([]byte(`{
				"categories":[{"id":1,"name":"Burgers","sort_order":1,"active":true}],
				"items":[{"id":1,"name":"Classic Burger","price":12.99,"category_id":1,"active":true}]
			}`))
		case "/api/orders":
			var payload struct {
				CustomerName string `json:"customerName"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			if sid, err := r.Cookie("sid"); err == nil {
				received[payload.CustomerName] = sid.Value
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"status":"received"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := service.NewStorefrontService(
		menu.NewLoader(srv.URL, srv.Client(), nil),
		order.NewClient(srv.URL, srv.Client(), nil),
		storage.NewMemorySessionStore(time.Hour),
		service.Options{},
	)
	ctx := context.Background()

	ids := map[string]string{}
	for _, name := range []string{"Ana", "Ben"} {
		view, err := svc.StartSession(ctx, service.StartRequest{OrderType: "takeaway"})
		require.NoError(t, err)
		require.Empty(t, view.MenuError)
		ids[name] = view.ID

		_, err = svc.AddToCart(ctx, view.ID, 1)
		require.NoError(t, err)
		_, err = svc.UpdateCustomer(ctx, view.ID, domain.CustomerInfo{Name: name, Email: "diner@example.com"})
		require.NoError(t, err)
	}

	for _, name := range []string{"Ana", "Ben"} {
		result, err := svc.ConfirmOrder(ctx, ids[name])
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusSubmitted, result.Status)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]string{"Ana": "diner-1", "Ben": "diner-2"}, received)
}

type flakySaves struct {
	*storage.MemorySessionStore

	mu       sync.Mutex
	failures int
}

func (s *flakySaves) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	if s.failures > 0 {
		s.failures--
		s.mu.Unlock()
		return errors.New("redis unavailable")
	}
	s.mu.Unlock()
	return s.MemorySessionStore.Save(ctx, session)
}

func (s *flakySaves) failNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

func TestStorefrontService_ConfirmOrderSaveFailure(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantItems int
	}{
		{name: "retry_succeeds", failures: 1, wantItems: 0},
		{name: "save_lost", failures: 2, wantItems: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			menus := mocks.NewMenuLoader(t)
			orders := mocks.NewOrderSubmitter(t)
			store := &flakySaves{MemorySessionStore: storage.NewMemorySessionStore(time.Hour)}
			svc := service.NewStorefrontService(menus, orders, store, service.Options{Tables: fixedTable(9)})

			menus.On("LoadOrDefault", mock.Anything, mock.Anything, mock.Anything).Return(testMenu(), nil).Once()
			view, err := svc.StartSession(ctx, service.StartRequest{OrderType: "takeaway"})
			require.NoError(t, err)
			_, err = svc.AddToCart(ctx, view.ID, 1)
			require.NoError(t, err)
			_, err = svc.AddToCart(ctx, view.ID, 1)
			require.NoError(t, err)
			_, err = svc.UpdateCustomer(ctx, view.ID, domain.CustomerInfo{Name: "Ana", Email: "ana@example.com"})
			require.NoError(t, err)

			orders.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(order.Confirmation(`{"orderId":7}`), nil).Once()
			store.failNext(testCase.failures)

			result, err := svc.ConfirmOrder(ctx, view.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.OrderStatusSubmitted, result.Status)
			assert.Equal(t, "25.98", result.Total)

			cartView, err := svc.Cart(ctx, view.ID)
			require.NoError(t, err)
			assert.Equal(t, testCase.wantItems, cartView.ItemCount)
		})
	}
}
