package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"restopos/pos-svc/internal/domain"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) InTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return loadSale(ctx, r.DB, id, false)
}

func (r *PostgresRepository) SyncStatus(ctx context.Context) (*domain.SyncStatus, error) {
	var (
		status   domain.SyncStatus
		lastSync sql.NullTime
	)
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE sync_state = 'synced'),
		       MAX(synced_at)
		FROM sales
	`).Scan(&status.TotalSales, &status.SyncedSales, &lastSync); err != nil {
		return nil, err
	}

	status.PendingSales = status.TotalSales - status.SyncedSales
	status.SyncPercentage = 100
	if status.TotalSales > 0 {
		pct := float64(status.SyncedSales) / float64(status.TotalSales) * 100
		status.SyncPercentage = math.Round(pct*10) / 10
	}
	if lastSync.Valid {
		t := lastSync.Time
		status.LastSync = &t
	}
	return &status, nil
}

// PendingSales lists sales not yet synced, optionally only those created
// after since.
func (r *PostgresRepository) PendingSales(ctx context.Context, since *time.Time) ([]domain.Sale, error) {
	var after sql.NullTime
	if since != nil {
		after = sql.NullTime{Time: *since, Valid: true}
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE sync_state = 'local' AND ($1::timestamptz IS NULL OR created_at > $1)
		ORDER BY created_at`, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sales {
		items, err := loadSaleItems(ctx, r.DB, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}
	return sales, nil
}

type pgTx struct {
	tx *sql.Tx
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// translate maps driver errors onto the domain taxonomy. Anything it does
// not recognise is returned unchanged.
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrConflict, what, pqErr.Message)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", domain.ErrNotFound, what, pqErr.Detail)
		}
	}
	return err
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
