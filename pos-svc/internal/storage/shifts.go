package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restopos/pos-svc/internal/domain"
)

const shiftColumns = `id, employee_id, start_time, end_time, starting_cash, ending_cash, expected_cash,
	total_sales, cash_total, card_total, transaction_count, status, COALESCE(notes, ''), COALESCE(device_id, '')`

func scanShift(row rowScanner) (*domain.Shift, error) {
	var (
		shift   domain.Shift
		endTime sql.NullTime
	)
	if err := row.Scan(&shift.ID, &shift.EmployeeID, &shift.StartTime, &endTime, &shift.StartingCash,
		&shift.EndingCash, &shift.ExpectedCash, &shift.TotalSales, &shift.CashTotal, &shift.CardTotal,
		&shift.TransactionCount, &shift.Status, &shift.Notes, &shift.DeviceID); err != nil {
		return nil, err
	}
	shift.EndTime = timePtr(endTime)
	return &shift, nil
}

// ActiveShift takes a shared lock so a concurrent close waits for the
// sales being recorded against the shift.
func (t *pgTx) ActiveShift(ctx context.Context, employeeID int) (*domain.Shift, error) {
	shift, err := scanShift(t.tx.QueryRowContext(ctx, `
		SELECT `+shiftColumns+`
		FROM shifts
		WHERE employee_id = $1 AND status = 'active'
		FOR SHARE`, employeeID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func (t *pgTx) LockShift(ctx context.Context, id int) (*domain.Shift, error) {
	shift, err := scanShift(t.tx.QueryRowContext(ctx, `
		SELECT `+shiftColumns+`
		FROM shifts
		WHERE id = $1
		FOR UPDATE`, id))
	if err != nil {
		return nil, translate(err, fmt.Sprintf("shift %d", id))
	}
	return shift, nil
}

func (t *pgTx) InsertShift(ctx context.Context, shift *domain.Shift) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO shifts (employee_id, start_time, starting_cash, status, notes, device_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		shift.EmployeeID, shift.StartTime, shift.StartingCash, shift.Status, shift.Notes, shift.DeviceID).
		Scan(&shift.ID)
	return translate(err, fmt.Sprintf("active shift for employee %d", shift.EmployeeID))
}

func (t *pgTx) CompletedSaleAmounts(ctx context.Context, shiftID int) ([]domain.SaleAmount, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT total, payment_method
		FROM sales
		WHERE shift_id = $1 AND status = 'completed'`, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amounts []domain.SaleAmount
	for rows.Next() {
		var amount domain.SaleAmount
		if err := rows.Scan(&amount.Total, &amount.PaymentMethod); err != nil {
			return nil, err
		}
		amounts = append(amounts, amount)
	}
	return amounts, rows.Err()
}

func (t *pgTx) SaveClosedShift(ctx context.Context, shift *domain.Shift) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE shifts
		SET end_time = $1, ending_cash = $2, expected_cash = $3, total_sales = $4, cash_total = $5,
		    card_total = $6, transaction_count = $7, status = $8, notes = $9
		WHERE id = $10`,
		shift.EndTime, shift.EndingCash, shift.ExpectedCash, shift.TotalSales, shift.CashTotal,
		shift.CardTotal, shift.TransactionCount, shift.Status, shift.Notes, shift.ID)
	return err
}
