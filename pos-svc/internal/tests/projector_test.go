package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/mocks"
	"restopos/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjector_Process(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC)
	sale := &domain.Sale{
		ID:        "s-1",
		CreatedAt: createdAt,
		Items: []domain.SaleItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 4, Quantity: 1},
		},
	}

	tests := []struct {
		name    string
		message domain.EventMessage
		setup   func(board *mocks.BoardStore)
	}{
		{
			name: "table_change",
			message: domain.EventMessage{
				Type:  domain.EventTableOccupancyChanged,
				Table: &domain.TableChange{TableID: 6, From: domain.TableAvailable, To: domain.TableOccupied},
			},
			setup: func(board *mocks.BoardStore) {
				board.On("SetTableStatus", mock.Anything, 6, domain.TableOccupied).Return(nil).Once()
			},
		},
		{
			name:    "sale_created",
			message: domain.EventMessage{Type: domain.EventSaleCreated, Sale: sale},
			setup: func(board *mocks.BoardStore) {
				board.On("AddItemSales", mock.Anything, createdAt, 1, 2).Return(nil).Once()
				board.On("AddItemSales", mock.Anything, createdAt, 4, 1).Return(nil).Once()
			},
		},
		{
			name:    "sale_cancelled",
			message: domain.EventMessage{Type: domain.EventSaleCancelled, Sale: sale},
			setup: func(board *mocks.BoardStore) {
				board.On("AddItemSales", mock.Anything, createdAt, 1, -2).Return(nil).Once()
				board.On("AddItemSales", mock.Anything, createdAt, 4, -1).Return(nil).Once()
			},
		},
		{
			name:    "sync_completed_ignored",
			message: domain.EventMessage{Type: domain.EventSyncCompleted, Sync: &domain.SyncSummary{DeviceID: "t-1"}},
			setup:   func(board *mocks.BoardStore) {},
		},
		{
			name:    "sale_event_without_sale",
			message: domain.EventMessage{Type: domain.EventSaleCreated},
			setup:   func(board *mocks.BoardStore) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			board := mocks.NewBoardStore(t)
			testCase.setup(board)
			projector := service.NewProjector(nil, board)

			projector.Process(context.Background(), testCase.message)
		})
	}
}

func TestProjector_FallsBackToEventTimestamp(t *testing.T) {
	stamp := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	board := mocks.NewBoardStore(t)
	board.On("AddItemSales", mock.Anything, stamp, 2, 3).Return(nil).Once()
	projector := service.NewProjector(nil, board)

	projector.Process(context.Background(), domain.EventMessage{
		Type:      domain.EventSaleCreated,
		Sale:      &domain.Sale{ID: "s-2", Items: []domain.SaleItem{{MenuItemID: 2, Quantity: 3}}},
		Timestamp: stamp,
	})
}

func TestProjector_StopsOnFirstLeaderboardError(t *testing.T) {
	board := mocks.NewBoardStore(t)
	board.On("AddItemSales", mock.Anything, mock.Anything, 1, 1).Return(errors.New("redis down")).Once()
	projector := service.NewProjector(nil, board)

	projector.Process(context.Background(), domain.EventMessage{
		Type: domain.EventSaleCreated,
		Sale: &domain.Sale{ID: "s-3", CreatedAt: time.Now(), Items: []domain.SaleItem{
			{MenuItemID: 1, Quantity: 1},
			{MenuItemID: 2, Quantity: 1},
		}},
	})
}

// The projector writes through the real Redis projections.
func TestProjector_UpdatesRedisBoard(t *testing.T) {
	cache, _ := newTestCache(t)
	projector := service.NewProjector(nil, cache)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	projector.Process(ctx, domain.EventMessage{
		Type:  domain.EventTableOccupancyChanged,
		Table: &domain.TableChange{TableID: 2, From: domain.TableAvailable, To: domain.TableOccupied},
	})
	projector.Process(ctx, domain.EventMessage{
		Type: domain.EventSaleCreated,
		Sale: &domain.Sale{ID: "a", CreatedAt: day, Items: []domain.SaleItem{{MenuItemID: 1, Quantity: 5}, {MenuItemID: 2, Quantity: 2}}},
	})
	projector.Process(ctx, domain.EventMessage{
		Type: domain.EventSaleCancelled,
		Sale: &domain.Sale{ID: "a", CreatedAt: day, Items: []domain.SaleItem{{MenuItemID: 1, Quantity: 4}}},
	})

	board, err := cache.TableBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TableOccupied, board[2])

	top, err := cache.TopItems(ctx, day, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.ItemSales{MenuItemID: 2, Quantity: 2}, top[0])
	assert.Equal(t, domain.ItemSales{MenuItemID: 1, Quantity: 1}, top[1])
}
