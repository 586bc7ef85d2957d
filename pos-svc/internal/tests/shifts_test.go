package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"restopos/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSale(id string, shiftID int, total, method string, status domain.SaleStatus) domain.Sale {
	return domain.Sale{
		ID:            id,
		Subtotal:      dec(total),
		TaxAmount:     dec("0"),
		Total:         dec(total),
		PaymentMethod: method,
		OrderType:     domain.OrderTypeTakeaway,
		Status:        status,
		ShiftID:       shiftID,
		EmployeeID:    cashier.EmployeeID,
		SyncState:     domain.SyncStateSynced,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestShiftService_CloseShiftSettlesCash(t *testing.T) {
	f := newFixture(t, "0")
	shift := f.openShift(t, cashier, "100")
	f.store.putSale(completedSale("s1", shift.ID, "30", "cash", domain.SaleStatusCompleted))
	f.store.putSale(completedSale("s2", shift.ID, "25", "Efectivo", domain.SaleStatusCompleted))
	f.store.putSale(completedSale("s3", shift.ID, "40", "card", domain.SaleStatusCompleted))
	f.store.putSale(completedSale("s4", shift.ID, "500", "cash", domain.SaleStatusCancelled))

	closed, err := f.shifts.CloseShift(context.Background(), cashier, shift.ID, domain.CloseShiftInput{
		EndingCash: dec("150"),
		Notes:      "short five",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ShiftClosed, closed.Status)
	assert.NotNil(t, closed.EndTime)
	assert.True(t, dec("95").Equal(closed.TotalSales), closed.TotalSales.String())
	assert.True(t, dec("55").Equal(closed.CashTotal), closed.CashTotal.String())
	assert.True(t, dec("40").Equal(closed.CardTotal), closed.CardTotal.String())
	assert.Equal(t, 3, closed.TransactionCount)
	require.True(t, closed.ExpectedCash.Valid)
	assert.True(t, dec("155").Equal(closed.ExpectedCash.Decimal))
	assert.True(t, dec("150").Equal(closed.EndingCash.Decimal))
	assert.Equal(t, "short five", closed.Notes)

	stored := f.store.shift(shift.ID)
	assert.Equal(t, domain.ShiftClosed, stored.Status)
	assert.Equal(t, 3, stored.TransactionCount)
}

func TestShiftService_CloseShiftWithoutSales(t *testing.T) {
	f := newFixture(t, "0")
	shift := f.openShift(t, cashier, "80")

	closed, err := f.shifts.CloseShift(context.Background(), cashier, shift.ID, domain.CloseShiftInput{EndingCash: dec("80")})

	require.NoError(t, err)
	assert.True(t, closed.TotalSales.IsZero())
	assert.Equal(t, 0, closed.TransactionCount)
	assert.True(t, dec("80").Equal(closed.ExpectedCash.Decimal))
}

func TestShiftService_CloseShiftFailures(t *testing.T) {
	tests := []struct {
		name          string
		actor         domain.Actor
		shiftID       func(shift *domain.Shift) int
		endingCash    string
		closeFirst    bool
		expectedError error
	}{
		{
			name:          "negative_ending_cash",
			actor:         cashier,
			shiftID:       func(shift *domain.Shift) int { return shift.ID },
			endingCash:    "-1",
			expectedError: domain.ErrValidation,
		},
		{
			name:          "unknown_shift",
			actor:         cashier,
			shiftID:       func(*domain.Shift) int { return 404 },
			endingCash:    "0",
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "other_cashier",
			actor:         otherCashier,
			shiftID:       func(shift *domain.Shift) int { return shift.ID },
			endingCash:    "0",
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "already_closed",
			actor:         manager,
			shiftID:       func(shift *domain.Shift) int { return shift.ID },
			endingCash:    "0",
			closeFirst:    true,
			expectedError: domain.ErrAlreadyClosed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, "0")
			shift := f.openShift(t, cashier, "10")
			if testCase.closeFirst {
				_, err := f.shifts.CloseShift(context.Background(), cashier, shift.ID, domain.CloseShiftInput{EndingCash: dec("10")})
				require.NoError(t, err)
			}

			closed, err := f.shifts.CloseShift(context.Background(), testCase.actor, testCase.shiftID(shift),
				domain.CloseShiftInput{EndingCash: dec(testCase.endingCash)})

			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Nil(t, closed)
		})
	}
}

func TestShiftService_OpenShift(t *testing.T) {
	f := newFixture(t, "0")

	shift := f.openShift(t, cashier, "100")
	assert.Equal(t, cashier.EmployeeID, shift.EmployeeID)
	assert.Equal(t, domain.ShiftActive, shift.Status)
	assert.NotZero(t, shift.ID)

	_, err := f.shifts.OpenShift(context.Background(), cashier, domain.OpenShiftInput{StartingCash: dec("5")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.shifts.OpenShift(context.Background(), otherCashier, domain.OpenShiftInput{StartingCash: dec("-5")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.shifts.OpenShift(context.Background(), otherCashier, domain.OpenShiftInput{EmployeeID: 9, StartingCash: dec("5")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	opened, err := f.shifts.OpenShift(context.Background(), manager, domain.OpenShiftInput{EmployeeID: 9, StartingCash: dec("5")})
	require.NoError(t, err)
	assert.Equal(t, 9, opened.EmployeeID)
}

func TestShiftService_ReopenAfterClose(t *testing.T) {
	f := newFixture(t, "0")
	first := f.openShift(t, cashier, "0")
	_, err := f.shifts.CloseShift(context.Background(), cashier, first.ID, domain.CloseShiftInput{EndingCash: dec("0")})
	require.NoError(t, err)

	second := f.openShift(t, cashier, "20")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestShiftService_ActiveShiftForReportsLiveTotals(t *testing.T) {
	f := newFixture(t, "0")
	f.store.addMenuItem(1, "Taco", "10", domain.UnlimitedStock)
	shift := f.openShift(t, cashier, "50")

	input := takeaway(line(1, 2))
	_, err := f.orders.CreateSale(context.Background(), cashier, input)
	require.NoError(t, err)
	input = takeaway(line(1, 1))
	input.PaymentMethod = "card"
	_, err = f.orders.CreateSale(context.Background(), cashier, input)
	require.NoError(t, err)

	active, err := f.shifts.ActiveShiftFor(context.Background(), cashier.EmployeeID)

	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, shift.ID, active.ID)
	assert.True(t, dec("30").Equal(active.TotalSales))
	assert.True(t, dec("20").Equal(active.CashTotal))
	assert.Equal(t, 2, active.TransactionCount)
	assert.True(t, f.store.shift(shift.ID).TotalSales.IsZero())

	none, err := f.shifts.ActiveShiftFor(context.Background(), otherCashier.EmployeeID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

// Sales racing a close either land before it and are counted, or fail with
// ErrNoActiveShift. None slip in after the totals are computed.
func TestShiftService_CloseRacingSales(t *testing.T) {
	f := newFixture(t, "0")
	f.store.addMenuItem(1, "Taco", "10", domain.UnlimitedStock)
	shift := f.openShift(t, cashier, "0")

	const attempts = 20
	var (
		wg     sync.WaitGroup
		closed *domain.Shift
	)
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.orders.CreateSale(context.Background(), cashier, takeaway(line(1, 1)))
		}(i)
		if i == attempts/2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var err error
				closed, err = f.shifts.CloseShift(context.Background(), cashier, shift.ID, domain.CloseShiftInput{EndingCash: dec("0")})
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	require.NotNil(t, closed)
	counted := 0
	for _, sale := range f.store.sales() {
		if sale.ShiftID == shift.ID {
			counted++
		}
	}
	assert.Equal(t, counted, closed.TransactionCount)
	assert.True(t, decimal.NewFromInt(int64(counted*10)).Equal(closed.TotalSales), closed.TotalSales.String())

	for _, err := range errs {
		if err != nil {
			assert.True(t, errors.Is(err, domain.ErrNoActiveShift), err.Error())
		}
	}
}
