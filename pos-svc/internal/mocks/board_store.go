package mocks

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// BoardStore is a mock type for the BoardStore type
type BoardStore struct {
	mock.Mock
}

// SetTableStatus provides a mock function with given fields: ctx, tableID, status
func (_m *BoardStore) SetTableStatus(ctx context.Context, tableID int, status domain.TableStatus) error {
	ret := _m.Called(ctx, tableID, status)

	if len(ret) == 0 {
		panic("no return value specified for SetTableStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.TableStatus) error); ok {
		r0 = rf(ctx, tableID, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AddItemSales provides a mock function with given fields: ctx, day, menuItemID, delta
func (_m *BoardStore) AddItemSales(ctx context.Context, day time.Time, menuItemID int, delta int) error {
	ret := _m.Called(ctx, day, menuItemID, delta)

	if len(ret) == 0 {
		panic("no return value specified for AddItemSales")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int, int) error); ok {
		r0 = rf(ctx, day, menuItemID, delta)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewBoardStore creates a new instance of BoardStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBoardStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *BoardStore {
	m := &BoardStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
