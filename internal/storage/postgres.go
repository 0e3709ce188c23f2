package storage

import (
	"context"
	"database/sql"

	"aroma-storefront/internal/domain"
)

const createOrdersTable = `
	CREATE TABLE IF NOT EXISTS storefront_orders (
		id             BIGSERIAL PRIMARY KEY,
		session_id     TEXT NOT NULL,
		order_type     TEXT NOT NULL,
		table_number   INTEGER,
		customer_email TEXT NOT NULL,
		item_count     INTEGER NOT NULL,
		total          NUMERIC(10, 2) NOT NULL,
		status         TEXT NOT NULL,
		detail         TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// PostgresJournal records every order submission attempt.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (j *PostgresJournal) EnsureSchema(ctx context.Context) error {
	_, err := j.DB.ExecContext(ctx, createOrdersTable)
	return err
}

func (j *PostgresJournal) Record(ctx context.Context, record *domain.OrderRecord) error {
	var table sql.NullInt64
	if record.TableNumber != nil {
		table = sql.NullInt64{Int64: int64(*record.TableNumber), Valid: true}
	}
	return j.DB.QueryRowContext(ctx, `
		INSERT INTO storefront_orders (session_id, order_type, table_number, customer_email, item_count, total, status, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, record.SessionID, record.OrderType, table, record.CustomerEmail, record.ItemCount,
		record.Total.StringFixed(2), record.Status, record.Detail, record.CreatedAt).
		Scan(&record.ID)
}

func (j *PostgresJournal) ListBySession(ctx context.Context, sessionID string) ([]domain.OrderRecord, error) {
	rows, err := j.DB.QueryContext(ctx, `
		SELECT id, session_id, order_type, table_number, customer_email, item_count, total, status, detail, created_at
		FROM storefront_orders
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.OrderRecord
	for rows.Next() {
		var (
			rec   domain.OrderRecord
			table sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.OrderType, &table, &rec.CustomerEmail,
			&rec.ItemCount, &rec.Total, &rec.Status, &rec.Detail, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if table.Valid {
			n := int(table.Int64)
			rec.TableNumber = &n
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
