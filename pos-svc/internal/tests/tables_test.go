package tests

import (
	"context"
	"testing"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTableService_Transitions(t *testing.T) {
	tests := []struct {
		name           string
		initial        domain.TableStatus
		pendingSale    bool
		act            func(f *fixture) (*domain.Table, error)
		expectedStatus domain.TableStatus
		expectedError  error
	}{
		{
			name:    "reserve_available",
			initial: domain.TableAvailable,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Reserve(context.Background(), cashier, 3)
			},
			expectedStatus: domain.TableReserved,
		},
		{
			name:    "reserve_occupied",
			initial: domain.TableOccupied,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Reserve(context.Background(), cashier, 3)
			},
			expectedStatus: domain.TableOccupied,
			expectedError:  domain.ErrConflict,
		},
		{
			name:    "release_to_cleaning",
			initial: domain.TableOccupied,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Release(context.Background(), cashier, 3, true)
			},
			expectedStatus: domain.TableCleaning,
		},
		{
			name:    "release_to_available",
			initial: domain.TableReserved,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Release(context.Background(), cashier, 3, false)
			},
			expectedStatus: domain.TableAvailable,
		},
		{
			name:        "release_with_pending_sale",
			initial:     domain.TableOccupied,
			pendingSale: true,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Release(context.Background(), cashier, 3, false)
			},
			expectedStatus: domain.TableAvailable,
		},
		{
			name:    "set_status",
			initial: domain.TableCleaning,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.SetStatus(context.Background(), manager, 3, domain.TableAvailable)
			},
			expectedStatus: domain.TableAvailable,
		},
		{
			name:    "set_unknown_status",
			initial: domain.TableCleaning,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.SetStatus(context.Background(), manager, 3, domain.TableStatus("broken"))
			},
			expectedStatus: domain.TableCleaning,
			expectedError:  domain.ErrValidation,
		},
		{
			name:    "unknown_table",
			initial: domain.TableAvailable,
			act: func(f *fixture) (*domain.Table, error) {
				return f.tables.Reserve(context.Background(), cashier, 30)
			},
			expectedStatus: domain.TableAvailable,
			expectedError:  domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t, "0")
			f.store.addTable(3, testCase.initial)
			if testCase.pendingSale {
				sale := completedSale("p1", 1, "10", "cash", domain.SaleStatusPending)
				sale.OrderType = domain.OrderTypeDineIn
				sale.TableID = intRef(3)
				f.store.putSale(sale)
			}

			table, err := testCase.act(f)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, table)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expectedStatus, table.Status)
			}
			assert.Equal(t, testCase.expectedStatus, f.store.table(3).Status)
		})
	}
}

func TestTableService_PublishesOnlyRealChanges(t *testing.T) {
	publisher := mocks.NewEventPublisher(t)
	f := newFixtureWithPublisher(t, "0", publisher)
	f.store.addTable(5, domain.TableOccupied)

	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg domain.EventMessage) bool {
		return msg.Type == domain.EventTableOccupancyChanged && msg.Key == "table:5" &&
			msg.Table.From == domain.TableOccupied && msg.Table.To == domain.TableCleaning
	})).Return(nil).Once()

	_, err := f.tables.Release(context.Background(), cashier, 5, true)
	require.NoError(t, err)

	// Already cleaning: nothing to publish.
	_, err = f.tables.SetStatus(context.Background(), cashier, 5, domain.TableCleaning)
	require.NoError(t, err)
}
