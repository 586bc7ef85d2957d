package mocks

import (
	"context"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// TableServiceInterface is a mock type for the TableServiceInterface type
type TableServiceInterface struct {
	mock.Mock
}

// SetStatus provides a mock function with given fields: ctx, actor, tableID, status
func (_m *TableServiceInterface) SetStatus(ctx context.Context, actor domain.Actor, tableID int, status domain.TableStatus) (*domain.Table, error) {
	ret := _m.Called(ctx, actor, tableID, status)

	if len(ret) == 0 {
		panic("no return value specified for SetStatus")
	}

	var r0 *domain.Table
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, domain.TableStatus) (*domain.Table, error)); ok {
		return rf(ctx, actor, tableID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, domain.TableStatus) *domain.Table); ok {
		r0 = rf(ctx, actor, tableID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Table)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, int, domain.TableStatus) error); ok {
		r1 = rf(ctx, actor, tableID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Reserve provides a mock function with given fields: ctx, actor, tableID
func (_m *TableServiceInterface) Reserve(ctx context.Context, actor domain.Actor, tableID int) (*domain.Table, error) {
	ret := _m.Called(ctx, actor, tableID)

	if len(ret) == 0 {
		panic("no return value specified for Reserve")
	}

	var r0 *domain.Table
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int) (*domain.Table, error)); ok {
		return rf(ctx, actor, tableID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int) *domain.Table); ok {
		r0 = rf(ctx, actor, tableID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Table)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, int) error); ok {
		r1 = rf(ctx, actor, tableID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Release provides a mock function with given fields: ctx, actor, tableID, requiresCleaning
func (_m *TableServiceInterface) Release(ctx context.Context, actor domain.Actor, tableID int, requiresCleaning bool) (*domain.Table, error) {
	ret := _m.Called(ctx, actor, tableID, requiresCleaning)

	if len(ret) == 0 {
		panic("no return value specified for Release")
	}

	var r0 *domain.Table
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, bool) (*domain.Table, error)); ok {
		return rf(ctx, actor, tableID, requiresCleaning)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, bool) *domain.Table); ok {
		r0 = rf(ctx, actor, tableID, requiresCleaning)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Table)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, int, bool) error); ok {
		r1 = rf(ctx, actor, tableID, requiresCleaning)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTableServiceInterface creates a new instance of TableServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTableServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableServiceInterface {
	m := &TableServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
