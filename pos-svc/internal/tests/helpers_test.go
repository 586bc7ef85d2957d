package tests

import (
	"context"
	"testing"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/mocks"
	"restopos/pos-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	cashier      = domain.Actor{EmployeeID: 7, Role: domain.RoleCashier}
	otherCashier = domain.Actor{EmployeeID: 8, Role: domain.RoleCashier}
	manager      = domain.Actor{EmployeeID: 1, Role: domain.RoleManager}
)

type fixture struct {
	store     *memStore
	publisher *mocks.EventPublisher
	inventory *service.InventoryLedger
	tables    *service.TableService
	orders    *service.OrderService
	shifts    *service.ShiftService
}

// newFixture wires the core services over an in-memory store with a
// publisher that accepts any event.
func newFixture(t *testing.T, taxRate string) *fixture {
	publisher := mocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return newFixtureWithPublisher(t, taxRate, publisher)
}

// newFixtureWithPublisher lets a test assert on the events it expects.
func newFixtureWithPublisher(t *testing.T, taxRate string, publisher *mocks.EventPublisher) *fixture {
	store := newMemStore()
	inventory := service.NewInventoryLedger()
	tables := service.NewTableService(store, publisher)
	return &fixture{
		store:     store,
		publisher: publisher,
		inventory: inventory,
		tables:    tables,
		orders:    service.NewOrderService(store, inventory, tables, publisher, nil, nil, decimal.RequireFromString(taxRate)),
		shifts:    service.NewShiftService(store),
	}
}

func (f *fixture) openShift(t *testing.T, actor domain.Actor, startingCash string) *domain.Shift {
	shift, err := f.shifts.OpenShift(context.Background(), actor, domain.OpenShiftInput{
		StartingCash: decimal.RequireFromString(startingCash),
	})
	require.NoError(t, err)
	return shift
}

func takeaway(lines ...domain.LineInput) domain.CreateSaleInput {
	return domain.CreateSaleInput{Target: domain.Takeaway{}, Lines: lines}
}

func line(menuItemID, quantity int) domain.LineInput {
	return domain.LineInput{MenuItemID: menuItemID, Quantity: quantity}
}

func intRef(v int) *int {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
