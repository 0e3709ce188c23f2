package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aroma-storefront/internal/cart"
	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/i18n"
	"aroma-storefront/internal/media"
	"aroma-storefront/internal/menu"
	"aroma-storefront/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidTable = errors.New("table number must be a positive integer")
)

const DefaultNoticeTTL = 3 * time.Second

// labelKeys are the UI labels sent with every session view.
var labelKeys = []string{"welcome", "dineIn", "takeaway", "addToCart", "cancelOrder", "completeOrder"}

type Options struct {
	Journal   OrderJournal
	Publisher EventPublisher
	QR        QRGenerator
	Text      *i18n.Resolver
	Media     *media.Resolver
	Tables    order.TableAssigner
	Logger    *zap.Logger
	NoticeTTL time.Duration
	Clock     func() time.Time
}

type StorefrontService struct {
	menus     MenuLoader
	orders    OrderSubmitter
	sessions  SessionStore
	journal   OrderJournal
	publisher EventPublisher
	qr        QRGenerator
	text      *i18n.Resolver
	media     *media.Resolver
	tables    order.TableAssigner
	logger    *zap.Logger
	noticeTTL time.Duration
	now       func() time.Time
	newID     func() string
	locks     *keyedMutex
}

func NewStorefrontService(menus MenuLoader, orders OrderSubmitter, sessions SessionStore, opts Options) *StorefrontService {
	s := &StorefrontService{
		menus:     menus,
		orders:    orders,
		sessions:  sessions,
		journal:   opts.Journal,
		publisher: opts.Publisher,
		qr:        opts.QR,
		text:      opts.Text,
		media:     opts.Media,
		tables:    opts.Tables,
		logger:    opts.Logger,
		noticeTTL: opts.NoticeTTL,
		now:       opts.Clock,
		newID:     uuid.NewString,
		locks:     newKeyedMutex(),
	}
	if s.qr == nil {
		s.qr = TableQRGenerator{}
	}
	if s.text == nil {
		s.text = i18n.NewResolver(i18n.DefaultDictionaries())
	}
	if s.media == nil {
		s.media = media.NewResolver("")
	}
	if s.tables == nil {
		s.tables = order.RandomTables{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.noticeTTL <= 0 {
		s.noticeTTL = DefaultNoticeTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *StorefrontService) StartSession(ctx context.Context, req StartRequest) (SessionView, error) {
	lang := domain.DefaultLanguage
	if req.Language != "" {
		parsed, err := domain.ParseLanguage(req.Language)
		if err != nil {
			return SessionView{}, err
		}
		lang = parsed
	}

	var orderType domain.OrderType
	if req.OrderType != "" {
		parsed, err := domain.ParseOrderType(req.OrderType)
		if err != nil {
			return SessionView{}, err
		}
		orderType = parsed
	}

	if req.Table != nil {
		if *req.Table < 1 {
			return SessionView{}, fmt.Errorf("%w: %d", ErrInvalidTable, *req.Table)
		}
		if orderType == "" {
			orderType = domain.OrderTypeDineIn
		}
	}

	cookies := domain.UpstreamCookies{}
	m, loadErr := s.menus.LoadOrDefault(ctx, menu.Fallback(), cookies)

	now := s.now()
	session := &domain.Session{
		ID:        s.newID(),
		Language:  lang,
		OrderType: orderType,
		Menu:      m,
		Upstream:  cookies,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Table != nil {
		table := *req.Table
		session.TableNumber = &table
	}
	session.ActiveCategory = s.defaultCategory(m.Categories, lang)

	if loadErr != nil {
		session.MenuError = loadErr.Error()
		s.publish(ctx, domain.StorefrontEvent{
			Type:      domain.EventMenuFallback,
			SessionID: session.ID,
			Detail:    loadErr.Error(),
		})
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return SessionView{}, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("language", string(lang)),
		zap.Bool("degraded", session.Degraded()),
	)
	return s.sessionView(session), nil
}

func (s *StorefrontService) Session(ctx context.Context, id string) (SessionView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return s.sessionView(session), nil
}

// SetLanguage switches the session language and carries the selected
// category over to its label in the new language.
func (s *StorefrontService) SetLanguage(ctx context.Context, id, language string) (SessionView, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return SessionView{}, err
	}
	session, err := s.update(ctx, id, func(session *domain.Session) error {
		for _, category := range session.Menu.Categories {
			if s.categoryKey(category, session.Language) == session.ActiveCategory {
				session.ActiveCategory = s.categoryKey(category, lang)
				break
			}
		}
		session.Language = lang
		return nil
	})
	if err != nil {
		return SessionView{}, err
	}
	return s.sessionView(session), nil
}

func (s *StorefrontService) SetOrderType(ctx context.Context, id, orderType string) (SessionView, error) {
	parsed, err := domain.ParseOrderType(orderType)
	if err != nil {
		return SessionView{}, err
	}
	session, err := s.update(ctx, id, func(session *domain.Session) error {
		session.OrderType = parsed
		return nil
	})
	if err != nil {
		return SessionView{}, err
	}
	return s.sessionView(session), nil
}

// SelectCategory stores the lower-cased label. Labels that match no category
// simply select an empty item list.
func (s *StorefrontService) SelectCategory(ctx context.Context, id, category string) (SessionView, error) {
	session, err := s.update(ctx, id, func(session *domain.Session) error {
		session.ActiveCategory = strings.ToLower(strings.TrimSpace(category))
		return nil
	})
	if err != nil {
		return SessionView{}, err
	}
	return s.sessionView(session), nil
}

func (s *StorefrontService) Categories(ctx context.Context, id string) ([]CategoryView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sorted := menu.SortedCategories(session.Menu.Categories)
	views := make([]CategoryView, 0, len(sorted))
	for _, category := range sorted {
		key := s.categoryKey(category, session.Language)
		views = append(views, CategoryView{
			ID:       category.ID,
			Name:     s.text.CategoryName(category.Name, session.Language),
			Key:      key,
			Icon:     category.Icon,
			Selected: key == session.ActiveCategory,
		})
	}
	return views, nil
}

func (s *StorefrontService) CategoryItems(ctx context.Context, id string) ([]ItemView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c := cart.Restore(session.Cart)
	items := s.text.CurrentCategoryItems(session.Menu.Categories, session.Menu.Items, session.ActiveCategory, session.Language)
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.itemView(item, session.Language, c))
	}
	return views, nil
}

func (s *StorefrontService) Item(ctx context.Context, id string, itemID int) (ItemView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return ItemView{}, err
	}
	item, ok := session.Menu.FindItem(itemID)
	if !ok {
		return ItemView{}, fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
	}
	return s.itemView(item, session.Language, cart.Restore(session.Cart)), nil
}

func (s *StorefrontService) Cart(ctx context.Context, id string) (CartView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return CartView{}, err
	}
	return s.cartView(session), nil
}

func (s *StorefrontService) AddToCart(ctx context.Context, id string, itemID int) (CartView, error) {
	return s.updateCart(ctx, id, func(session *domain.Session, c *cart.Cart) error {
		item, ok := session.Menu.FindItem(itemID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
		}
		c.Add(item)
		return nil
	})
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, id string, itemID int) (CartView, error) {
	return s.updateCart(ctx, id, func(_ *domain.Session, c *cart.Cart) error {
		c.Remove(itemID)
		return nil
	})
}

func (s *StorefrontService) ClearCart(ctx context.Context, id string) (CartView, error) {
	return s.updateCart(ctx, id, func(_ *domain.Session, c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *StorefrontService) StageQuantity(ctx context.Context, id string, itemID, delta int) (int, error) {
	var staged int
	_, err := s.updateCart(ctx, id, func(session *domain.Session, c *cart.Cart) error {
		if _, ok := session.Menu.FindItem(itemID); !ok {
			return fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
		}
		staged = c.Stage(itemID, delta)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return staged, nil
}

func (s *StorefrontService) CommitStaged(ctx context.Context, id string, itemID int) (CartView, error) {
	return s.updateCart(ctx, id, func(session *domain.Session, c *cart.Cart) error {
		item, ok := session.Menu.FindItem(itemID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
		}
		c.CommitStaged(item)
		return nil
	})
}

func (s *StorefrontService) OpenCart(ctx context.Context, id string) (SessionView, error) {
	return s.setFlags(ctx, id, func(session *domain.Session) error {
		session.CartOpen = true
		return nil
	})
}

func (s *StorefrontService) CloseCart(ctx context.Context, id string) (SessionView, error) {
	return s.setFlags(ctx, id, func(session *domain.Session) error {
		session.CartOpen = false
		return nil
	})
}

// BeginCheckout opens the customer form. An empty cart cannot be checked out.
func (s *StorefrontService) BeginCheckout(ctx context.Context, id string) (SessionView, error) {
	return s.setFlags(ctx, id, func(session *domain.Session) error {
		if len(session.Cart.Lines) == 0 {
			return ErrEmptyCart
		}
		session.CheckoutOpen = true
		return nil
	})
}

func (s *StorefrontService) CancelCheckout(ctx context.Context, id string) (SessionView, error) {
	return s.setFlags(ctx, id, func(session *domain.Session) error {
		session.CheckoutOpen = false
		return nil
	})
}

func (s *StorefrontService) UpdateCustomer(ctx context.Context, id string, info domain.CustomerInfo) (SessionView, error) {
	return s.setFlags(ctx, id, func(session *domain.Session) error {
		session.Customer = info
		return nil
	})
}

// ConfirmOrder validates the customer, submits the cart and records the
// outcome on the session. A failed submission keeps the cart and customer
// so the diner can retry; the returned error is then an *order.SubmitError.
func (s *StorefrontService) ConfirmOrder(ctx context.Context, id string) (OrderResult, error) {
	var (
		result    OrderResult
		submitErr error
	)

	_, err := s.update(ctx, id, func(session *domain.Session) error {
		if len(session.Cart.Lines) == 0 {
			return ErrEmptyCart
		}
		if err := order.ValidateCustomer(session.Customer); err != nil {
			return s.localizeValidation(err, session.Language)
		}
		if session.OrderType == "" {
			return fmt.Errorf("%w: none selected", domain.ErrInvalidOrderType)
		}

		payload := order.BuildPayload(session.Cart.Lines, session.OrderType, session.Customer, session.TableNumber, s.tables)
		now := s.now()
		result = OrderResult{
			Total:       payload.Total.StringFixed(2),
			TableNumber: payload.TableNumber,
			SubmittedAt: now,
		}
		record := &domain.OrderRecord{
			SessionID:     session.ID,
			OrderType:     payload.OrderType,
			TableNumber:   payload.TableNumber,
			CustomerEmail: payload.CustomerEmail,
			ItemCount:     cart.Restore(session.Cart).ItemCount(),
			Total:         payload.Total,
			CreatedAt:     now,
		}
		event := domain.StorefrontEvent{
			SessionID: session.ID,
			OrderType: payload.OrderType,
			Total:     result.Total,
		}

		if session.Upstream == nil {
			session.Upstream = domain.UpstreamCookies{}
		}
		confirmation, err := s.orders.Submit(ctx, payload, session.Upstream)
		if err != nil {
			submitErr = err
			session.Notice = s.notice(domain.NoticeError, session.Language, "orderError", err.Error(), now)
			result.Status = domain.OrderStatusFailed
			record.Status, record.Detail = domain.OrderStatusFailed, err.Error()
			event.Type, event.Detail = domain.EventOrderFailed, err.Error()
			s.logger.Error("order submission failed", zap.String("session_id", session.ID), zap.Error(err))
		} else {
			session.Cart = domain.CartState{Staged: session.Cart.Staged}
			session.CartOpen = false
			session.CheckoutOpen = false
			session.Customer = domain.CustomerInfo{}
			session.Notice = s.notice(domain.NoticeSuccess, session.Language, "orderSuccess", "", now)
			result.Status = domain.OrderStatusSubmitted
			result.Confirmation = confirmation
			record.Status = domain.OrderStatusSubmitted
			event.Type = domain.EventOrderSubmitted
			s.logger.Info("order submitted",
				zap.String("session_id", session.ID),
				zap.String("total", result.Total),
				zap.String("order_type", string(payload.OrderType)),
			)
		}
		result.Notice = session.Notice

		s.record(ctx, record)
		s.publish(ctx, event)
		return nil
	})
	if err != nil {
		if result.Status == "" {
			return OrderResult{}, err
		}
		// The order already reached the restaurant API.
		s.logger.Error("failed to save session after order attempt",
			zap.String("session_id", id),
			zap.String("status", string(result.Status)),
			zap.Error(err),
		)
	}
	return result, submitErr
}

func (s *StorefrontService) OrderHistory(ctx context.Context, id string) ([]domain.OrderRecord, error) {
	if _, err := s.sessions.Get(ctx, id); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return []domain.OrderRecord{}, nil
	}
	records, err := s.journal.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if records == nil {
		records = []domain.OrderRecord{}
	}
	return records, nil
}

func (s *StorefrontService) TableQRCode(table int) ([]byte, error) {
	if table < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTable, table)
	}
	return s.qr.Generate(table)
}

// update runs fn on the stored session under the session's lock and saves the
// result. Nothing is saved when fn fails.
func (s *StorefrontService) update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Notice != nil && !session.Notice.Active(s.now()) {
		session.Notice = nil
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now()
	if err := s.save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// save stores the session, retrying once.
func (s *StorefrontService) save(ctx context.Context, session *domain.Session) error {
	err := s.sessions.Save(ctx, session)
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("retrying session save", zap.String("session_id", session.ID), zap.Error(err))
		err = s.sessions.Save(ctx, session)
	}
	return err
}

func (s *StorefrontService) updateCart(ctx context.Context, id string, fn func(*domain.Session, *cart.Cart) error) (CartView, error) {
	session, err := s.update(ctx, id, func(session *domain.Session) error {
		c := cart.Restore(session.Cart)
		if err := fn(session, c); err != nil {
			return err
		}
		session.Cart = c.Snapshot()
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	return s.cartView(session), nil
}

func (s *StorefrontService) setFlags(ctx context.Context, id string, fn func(*domain.Session) error) (SessionView, error) {
	session, err := s.update(ctx, id, fn)
	if err != nil {
		return SessionView{}, err
	}
	return s.sessionView(session), nil
}

func (s *StorefrontService) defaultCategory(categories []domain.Category, lang domain.Language) string {
	sorted := menu.SortedCategories(categories)
	if len(sorted) == 0 {
		return ""
	}
	return s.categoryKey(sorted[0], lang)
}

func (s *StorefrontService) categoryKey(category domain.Category, lang domain.Language) string {
	return strings.ToLower(s.text.CategoryName(category.Name, lang))
}

// itemName prefers a localized name. Plain names go through the food-term
// dictionary, except in English where they are already correct.
func (s *StorefrontService) itemName(item domain.MenuItem, lang domain.Language) string {
	if item.Name.IsLocalized() || lang == domain.DefaultLanguage {
		return item.Name.Resolve(lang)
	}
	return s.text.ItemTerm(item.Name.Resolve(lang), lang)
}

func (s *StorefrontService) itemView(item domain.MenuItem, lang domain.Language, c *cart.Cart) ItemView {
	return ItemView{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        s.itemName(item, lang),
		Description: s.text.ResolveText(item.Description, lang),
		Ingredients: s.text.ResolveText(item.Ingredients, lang),
		Nutrition:   s.text.ResolveText(item.Nutrition, lang),
		Allergies:   s.text.ResolveText(item.Allergies, lang),
		PrepTime:    s.text.ResolveText(item.PrepTime, lang),
		Price:       item.Price.StringFixed(2),
		Media:       s.media.Resolve(item),
		Staged:      c.Staged(item.ID),
		InCart:      c.Quantity(item.ID),
	}
}

func (s *StorefrontService) cartView(session *domain.Session) CartView {
	c := cart.Restore(session.Cart)
	lines := c.Lines()

	view := CartView{
		Lines:     make([]CartLineView, 0, len(lines)),
		Total:     c.Total().StringFixed(2),
		ItemCount: c.ItemCount(),
		Open:      session.CartOpen,
	}
	for _, line := range lines {
		view.Lines = append(view.Lines, CartLineView{
			ID:        line.Item.ID,
			Name:      s.itemName(line.Item, session.Language),
			Qty:       line.Qty,
			UnitPrice: line.Item.Price.StringFixed(2),
			LineTotal: cart.LineTotal(line).StringFixed(2),
		})
	}
	return view
}

func (s *StorefrontService) sessionView(session *domain.Session) SessionView {
	view := SessionView{
		ID:             session.ID,
		Language:       session.Language,
		OrderType:      session.OrderType,
		TableNumber:    session.TableNumber,
		ActiveCategory: session.ActiveCategory,
		Degraded:       session.Degraded(),
		MenuError:      session.MenuError,
		CartOpen:       session.CartOpen,
		CheckoutOpen:   session.CheckoutOpen,
		CartCount:      cart.Restore(session.Cart).ItemCount(),
		Customer:       session.Customer,
		Labels:         make(map[string]string, len(labelKeys)),
	}
	if session.Notice.Active(s.now()) {
		view.Notice = session.Notice
	}
	for _, key := range labelKeys {
		view.Labels[key] = s.text.UIText(session.Language, key)
	}
	return view
}

func (s *StorefrontService) notice(kind domain.NoticeKind, lang domain.Language, key, detail string, now time.Time) *domain.Notice {
	message := s.text.UIText(lang, key)
	if detail != "" {
		message += ": " + detail
	}
	return &domain.Notice{Kind: kind, Message: message, ExpiresAt: now.Add(s.noticeTTL)}
}

func (s *StorefrontService) localizeValidation(err error, lang domain.Language) error {
	var validationErr *order.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	key := "missingFields"
	if validationErr.Kind == order.KindInvalidEmail {
		key = "invalidEmail"
	}
	return &order.ValidationError{Kind: validationErr.Kind, Message: s.text.UIText(lang, key)}
}

func (s *StorefrontService) record(ctx context.Context, record *domain.OrderRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, record); err != nil {
		s.logger.Warn("failed to journal order", zap.String("session_id", record.SessionID), zap.Error(err))
	}
}

func (s *StorefrontService) publish(ctx context.Context, event domain.StorefrontEvent) {
	if s.publisher == nil {
		return
	}
	event.ID = s.newID()
	event.Timestamp = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", event.Type), zap.Error(err))
	}
}
