package mocks

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// BoardReader is a mock type for the BoardReader type
type BoardReader struct {
	mock.Mock
}

// TableBoard provides a mock function with given fields: ctx
func (_m *BoardReader) TableBoard(ctx context.Context) (map[int]domain.TableStatus, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for TableBoard")
	}

	var r0 map[int]domain.TableStatus
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (map[int]domain.TableStatus, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) map[int]domain.TableStatus); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[int]domain.TableStatus)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TopItems provides a mock function with given fields: ctx, day, limit
func (_m *BoardReader) TopItems(ctx context.Context, day time.Time, limit int) ([]domain.ItemSales, error) {
	ret := _m.Called(ctx, day, limit)

	if len(ret) == 0 {
		panic("no return value specified for TopItems")
	}

	var r0 []domain.ItemSales
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) ([]domain.ItemSales, error)); ok {
		return rf(ctx, day, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) []domain.ItemSales); ok {
		r0 = rf(ctx, day, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.ItemSales)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time, int) error); ok {
		r1 = rf(ctx, day, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewBoardReader creates a new instance of BoardReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBoardReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *BoardReader {
	m := &BoardReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
