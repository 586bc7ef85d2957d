package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restopos/pos-svc/internal/domain"
)

const saleColumns = `id, subtotal, tax_amount, delivery_fee, total, payment_method, order_type, status,
	table_id, customer_id, shift_id, employee_id, COALESCE(origin_device_id, ''), sync_state, synced_at,
	COALESCE(notes, ''), cancelled_at, created_at`

func scanSale(row rowScanner) (*domain.Sale, error) {
	var (
		sale                  domain.Sale
		tableID, customerID   sql.NullInt64
		syncedAt, cancelledAt sql.NullTime
	)
	if err := row.Scan(&sale.ID, &sale.Subtotal, &sale.TaxAmount, &sale.DeliveryFee, &sale.Total,
		&sale.PaymentMethod, &sale.OrderType, &sale.Status, &tableID, &customerID, &sale.ShiftID,
		&sale.EmployeeID, &sale.OriginDeviceID, &sale.SyncState, &syncedAt, &sale.Notes,
		&cancelledAt, &sale.CreatedAt); err != nil {
		return nil, err
	}
	sale.TableID = intPtr(tableID)
	sale.CustomerID = intPtr(customerID)
	sale.SyncedAt = timePtr(syncedAt)
	sale.CancelledAt = timePtr(cancelledAt)
	return &sale, nil
}

func loadSale(ctx context.Context, q querier, id string, lock bool) (*domain.Sale, error) {
	query := "SELECT " + saleColumns + " FROM sales WHERE id = $1"
	if lock {
		query += " FOR UPDATE"
	}
	sale, err := scanSale(q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("sale %s", id))
	}

	if sale.Items, err = loadSaleItems(ctx, q, id); err != nil {
		return nil, err
	}
	return sale, nil
}

func loadSaleItems(ctx context.Context, q querier, saleID string) ([]domain.SaleItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, sale_id, menu_item_id, quantity, unit_price_at_sale, line_total, COALESCE(notes, '')
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id`, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.SaleItem{}
	for rows.Next() {
		var item domain.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.MenuItemID, &item.Quantity,
			&item.UnitPriceAtSale, &item.LineTotal, &item.Notes); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (t *pgTx) LockSale(ctx context.Context, id string) (*domain.Sale, error) {
	return loadSale(ctx, t.tx, id, true)
}

func (t *pgTx) InsertSale(ctx context.Context, sale *domain.Sale) (bool, error) {
	var syncedAt sql.NullTime
	if sale.SyncedAt != nil {
		syncedAt = sql.NullTime{Time: *sale.SyncedAt, Valid: true}
	}

	var id string
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO sales (id, subtotal, tax_amount, delivery_fee, total, payment_method, order_type, status,
			table_id, customer_id, shift_id, employee_id, origin_device_id, sync_state, synced_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO NOTHING
		RETURNING id`,
		sale.ID, sale.Subtotal, sale.TaxAmount, sale.DeliveryFee, sale.Total, sale.PaymentMethod,
		sale.OrderType, sale.Status, nullInt(sale.TableID), nullInt(sale.CustomerID), sale.ShiftID,
		sale.EmployeeID, sale.OriginDeviceID, sale.SyncState, syncedAt, sale.Notes, sale.CreatedAt).
		Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, fmt.Sprintf("sale %s", sale.ID))
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		if err := t.tx.QueryRowContext(ctx, `
			INSERT INTO sale_items (sale_id, menu_item_id, quantity, unit_price_at_sale, line_total, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			sale.ID, item.MenuItemID, item.Quantity, item.UnitPriceAtSale, item.LineTotal, item.Notes).
			Scan(&item.ID); err != nil {
			return false, translate(err, fmt.Sprintf("sale %s item %d", sale.ID, item.MenuItemID))
		}
	}
	return true, nil
}

func (t *pgTx) MarkSaleCancelled(ctx context.Context, id, notes string, at time.Time) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE sales
		SET status = 'cancelled', cancelled_at = $1, notes = $2
		WHERE id = $3`, at, notes, id)
	return err
}

func (t *pgTx) MarkSaleSynced(ctx context.Context, id string, at time.Time) (bool, error) {
	result, err := t.tx.ExecContext(ctx, `
		UPDATE sales
		SET sync_state = 'synced', synced_at = $1
		WHERE id = $2`, at, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
