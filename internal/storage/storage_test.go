package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"aroma-storefront/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(id string) *domain.Session {
	table := 5
	burger := domain.MenuItem{
		ID:     1,
		Name:   domain.LocalizedMap(map[domain.Language]string{domain.LangEnglish: "Classic Burger", domain.LangSpanish: "Burger Clásico"}),
		Price:  decimal.RequireFromString("12.99"),
		Active: true,
	}
	return &domain.Session{
		ID:             id,
		Language:       domain.LangSpanish,
		OrderType:      domain.OrderTypeDineIn,
		TableNumber:    &table,
		ActiveCategory: "hamburguesas",
		Menu: domain.Menu{
			Categories: []domain.Category{{ID: 1, Name: "Burgers", Active: true}},
			Items:      []domain.MenuItem{burger},
		},
		Cart: domain.CartState{
			Lines:  []domain.CartLine{{Item: burger, Qty: 2}},
			Staged: map[int]int{1: 3},
		},
		Customer:  domain.CustomerInfo{Name: "Ana", Email: "ana@example.com"},
		CreatedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func assertSameSession(t *testing.T, want, got *domain.Session) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Language, got.Language)
	assert.Equal(t, *want.TableNumber, *got.TableNumber)
	assert.Equal(t, want.ActiveCategory, got.ActiveCategory)
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, 2, got.Cart.Lines[0].Qty)
	assert.True(t, want.Cart.Lines[0].Item.Price.Equal(got.Cart.Lines[0].Item.Price))
	assert.Equal(t, "Burger Clásico", got.Cart.Lines[0].Item.Name.Resolve(domain.LangSpanish))
	assert.Equal(t, map[int]int{1: 3}, got.Cart.Staged)
	assert.Equal(t, want.Customer, got.Customer)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(time.Hour)
	store.now = func() time.Time { return now }

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	session := sampleSession("s1")
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assertSameSession(t, session, got)

	got.Cart.Lines = nil
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, again.Cart.Lines, 1)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, sampleSession("s2")))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "s2"))
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisSessionStore(client, 30*time.Minute)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	session := sampleSession("abc")
	require.NoError(t, store.Save(ctx, session))
	assert.True(t, mr.Exists("storefront:session:abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL("storefront:session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assertSameSession(t, session, got)

	mr.FastForward(31 * time.Minute)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("storefront:session:abc"))
}

func TestRedisSessionStore_CorruptPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set("storefront:session:bad", "{not json"))

	_, err := NewRedisSessionStore(client, time.Minute).Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPostgresJournal_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	journal := NewPostgresJournal(db)
	table := 7
	createdAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		record    *domain.OrderRecord
		wantTable any
		wantID    int64
	}{
		{
			name: "dine_in",
			record: &domain.OrderRecord{
				SessionID: "s1", OrderType: domain.OrderTypeDineIn, TableNumber: &table, CustomerEmail: "a@b.com",
				ItemCount: 2, Total: decimal.RequireFromString("25.98"), Status: domain.OrderStatusSubmitted, CreatedAt: createdAt,
			},
			wantTable: int64(7),
			wantID:    11,
		},
		{
			name: "takeaway_failed",
			record: &domain.OrderRecord{
				SessionID: "s1", OrderType: domain.OrderTypeTakeaway, CustomerEmail: "a@b.com",
				ItemCount: 1, Total: decimal.RequireFromString("3.5"), Status: domain.OrderStatusFailed, Detail: "HTTP 500: boom", CreatedAt: createdAt,
			},
			wantTable: nil,
			wantID:    12,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := testCase.record
			mock.ExpectQuery("INSERT INTO storefront_orders").
				WithArgs(r.SessionID, string(r.OrderType), testCase.wantTable, r.CustomerEmail, int64(r.ItemCount),
					r.Total.StringFixed(2), string(r.Status), r.Detail, r.CreatedAt).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testCase.wantID))

			require.NoError(t, journal.Record(context.Background(), r))
			assert.Equal(t, testCase.wantID, r.ID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_ListBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "session_id", "order_type", "table_number", "customer_email", "item_count", "total", "status", "detail", "created_at"}).
		AddRow(2, "s1", "takeaway", nil, "a@b.com", 1, "3.50", "failed", "HTTP 500: boom", createdAt).
		AddRow(1, "s1", "dine-in", 7, "a@b.com", 2, "25.98", "submitted", "", createdAt)
	mock.ExpectQuery("SELECT id, session_id").WithArgs("s1").WillReturnRows(rows)

	records, err := NewPostgresJournal(db).ListBySession(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Nil(t, records[0].TableNumber)
	assert.Equal(t, domain.OrderStatusFailed, records[0].Status)
	require.NotNil(t, records[1].TableNumber)
	assert.Equal(t, 7, *records[1].TableNumber)
	assert.Equal(t, domain.OrderTypeDineIn, records[1].OrderType)
	assert.Equal(t, "25.98", records[1].Total.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_ListBySessionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, session_id").WithArgs("s1").WillReturnError(errors.New("connection reset"))

	_, err = NewPostgresJournal(db).ListBySession(context.Background(), "s1")
	assert.EqualError(t, err, "connection reset")
}

func TestPostgresJournal_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS storefront_orders").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewPostgresJournal(db).EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)

	event := domain.StorefrontEvent{
		ID:        "evt-1",
		Type:      domain.EventOrderSubmitted,
		SessionID: "s1",
		OrderType: domain.OrderTypeTakeaway,
		Total:     "25.98",
		Timestamp: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "s1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, domain.EventOrderSubmitted, string(msg.Headers[0].Value))

	var decoded domain.StorefrontEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, "25.98", decoded.Total)

	writer.err = errors.New("broker down")
	assert.EqualError(t, publisher.Publish(context.Background(), event), "broker down")
}

func TestRedisStats(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	stats := NewRedisStats(client)
	day := time.Date(2026, 10, 16, 21, 30, 0, 0, time.UTC)

	events := []domain.StorefrontEvent{
		{Type: domain.EventOrderSubmitted, Total: "25.98", Timestamp: day},
		{Type: domain.EventOrderSubmitted, Total: "3.5", Timestamp: day},
		{Type: domain.EventOrderFailed, Total: "9.99", Timestamp: day},
		{Type: domain.EventMenuFallback, Timestamp: day},
		{Type: "cart_opened", Timestamp: day},
	}
	for _, event := range events {
		require.NoError(t, stats.Apply(ctx, event))
	}

	assert.Equal(t, DefaultStatsTTL, mr.TTL("storefront:stats:2026-10-16"))

	got, err := stats.Daily(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyStats{
		Date:            "2026-10-16",
		OrdersSubmitted: 2,
		OrdersFailed:    1,
		MenuFallbacks:   1,
		Revenue:         "29.48",
	}, got)

	empty, err := stats.Daily(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17", empty.Date)
	assert.Equal(t, "0.00", empty.Revenue)
	assert.Zero(t, empty.OrdersSubmitted)

	err = stats.Apply(ctx, domain.StorefrontEvent{Type: domain.EventOrderSubmitted, Total: "abc", Timestamp: day})
	assert.Error(t, err)
}
