package service

import (
	"context"
	"fmt"
	"sort"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"
)

// InventoryLedger owns every change to menu item stock counts. All methods
// run inside the caller's transaction.
type InventoryLedger struct{}

func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{}
}

// Reserve takes quantity units of a finite-stock item, failing with
// ErrInsufficientStock rather than letting the count go negative.
func (l *InventoryLedger) Reserve(ctx context.Context, tx storage.Tx, menuItemID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrValidation)
	}
	item, err := tx.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}
	return l.reserveItem(ctx, tx, item, quantity)
}

func (l *InventoryLedger) reserveItem(ctx context.Context, tx storage.Tx, item *domain.MenuItem, quantity int) error {
	if item.Unlimited() {
		return nil
	}
	ok, err := tx.ReserveStock(ctx, item.ID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s (requested %d, available %d)",
			domain.ErrInsufficientStock, item.Name, quantity, item.StockCount)
	}
	return nil
}

// Restore gives back quantity units. Unlimited items are left untouched.
func (l *InventoryLedger) Restore(ctx context.Context, tx storage.Tx, menuItemID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrValidation)
	}
	return tx.RestoreStock(ctx, menuItemID, quantity)
}

// Consume records stock already sold elsewhere. It never fails for lack of
// stock; the count bottoms out at zero.
func (l *InventoryLedger) Consume(ctx context.Context, tx storage.Tx, menuItemID, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrValidation)
	}
	return tx.ConsumeStock(ctx, menuItemID, quantity)
}

type itemQuantity struct {
	MenuItemID int
	Quantity   int
}

// aggregateByItem sums quantities per menu item in ascending id order, the
// order every transaction takes stock row locks in.
func aggregateByItem[T any](lines []T, key func(T) (int, int)) []itemQuantity {
	totals := make(map[int]int, len(lines))
	for _, line := range lines {
		id, quantity := key(line)
		totals[id] += quantity
	}

	result := make([]itemQuantity, 0, len(totals))
	for id, quantity := range totals {
		result = append(result, itemQuantity{MenuItemID: id, Quantity: quantity})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MenuItemID < result[j].MenuItemID })
	return result
}
