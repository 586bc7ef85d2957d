package storage

import (
	"context"
	"fmt"

	"restopos/pos-svc/internal/domain"
)

func (t *pgTx) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	var table domain.Table
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, number, capacity, status, is_active
		FROM tables
		WHERE id = $1
		FOR UPDATE`, id).
		Scan(&table.ID, &table.Number, &table.Capacity, &table.Status, &table.IsActive)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("table %d", id))
	}
	return &table, nil
}

func (t *pgTx) UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) error {
	_, err := t.tx.ExecContext(ctx, "UPDATE tables SET status = $1 WHERE id = $2", status, id)
	return err
}

func (t *pgTx) CustomerExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := t.tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
