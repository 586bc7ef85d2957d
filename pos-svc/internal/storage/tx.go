package storage

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"
)

// Tx is the unit of work every core write runs in. Lookups of missing rows
// return domain.ErrNotFound; lock-taking reads hold their row lock until the
// transaction ends.
type Tx interface {
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	// ReserveStock decrements a finite stock only if enough remains.
	// It reports false when the item would go negative.
	ReserveStock(ctx context.Context, menuItemID, quantity int) (bool, error)
	RestoreStock(ctx context.Context, menuItemID, quantity int) error
	// ConsumeStock decrements a finite stock, clamped at zero.
	ConsumeStock(ctx context.Context, menuItemID, quantity int) error

	GetTable(ctx context.Context, id int) (*domain.Table, error)
	UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) error
	CustomerExists(ctx context.Context, id int) (bool, error)

	// ActiveShift returns nil, nil when the employee has no active shift.
	ActiveShift(ctx context.Context, employeeID int) (*domain.Shift, error)
	LockShift(ctx context.Context, id int) (*domain.Shift, error)
	InsertShift(ctx context.Context, shift *domain.Shift) error
	CompletedSaleAmounts(ctx context.Context, shiftID int) ([]domain.SaleAmount, error)
	SaveClosedShift(ctx context.Context, shift *domain.Shift) error

	LockSale(ctx context.Context, id string) (*domain.Sale, error)
	// InsertSale reports false when a sale with the same id already exists.
	InsertSale(ctx context.Context, sale *domain.Sale) (bool, error)
	MarkSaleCancelled(ctx context.Context, id, notes string, at time.Time) error
	// MarkSaleSynced reports false when no sale has the id.
	MarkSaleSynced(ctx context.Context, id string, at time.Time) (bool, error)
}

// TxRunner runs fn in a transaction, committing when fn returns nil and
// rolling back otherwise.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
