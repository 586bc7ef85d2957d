package storage

import (
	"context"
	"fmt"

	"restopos/pos-svc/internal/domain"
)

func (t *pgTx) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, name, unit_price, unit_cost, stock_count, is_active
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.UnitPrice, &item.UnitCost, &item.StockCount, &item.IsActive)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("menu item %d", id))
	}
	return &item, nil
}

// ReserveStock is a single conditional decrement so concurrent reservations
// against the same row serialise on its lock and never oversell.
func (t *pgTx) ReserveStock(ctx context.Context, menuItemID, quantity int) (bool, error) {
	result, err := t.tx.ExecContext(ctx, `
		UPDATE menu_items
		SET stock_count = CASE WHEN stock_count = -1 THEN -1 ELSE stock_count - $1 END
		WHERE id = $2 AND (stock_count = -1 OR stock_count >= $1)`,
		quantity, menuItemID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (t *pgTx) RestoreStock(ctx context.Context, menuItemID, quantity int) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE menu_items
		SET stock_count = stock_count + $1
		WHERE id = $2 AND stock_count <> -1`,
		quantity, menuItemID)
	return err
}

func (t *pgTx) ConsumeStock(ctx context.Context, menuItemID, quantity int) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE menu_items
		SET stock_count = GREATEST(stock_count - $1, 0)
		WHERE id = $2 AND stock_count <> -1`,
		quantity, menuItemID)
	return err
}
