package mocks

import (
	"context"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ShiftServiceInterface is a mock type for the ShiftServiceInterface type
type ShiftServiceInterface struct {
	mock.Mock
}

// OpenShift provides a mock function with given fields: ctx, actor, input
func (_m *ShiftServiceInterface) OpenShift(ctx context.Context, actor domain.Actor, input domain.OpenShiftInput) (*domain.Shift, error) {
	ret := _m.Called(ctx, actor, input)

	if len(ret) == 0 {
		panic("no return value specified for OpenShift")
	}

	var r0 *domain.Shift
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, domain.OpenShiftInput) (*domain.Shift, error)); ok {
		return rf(ctx, actor, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, domain.OpenShiftInput) *domain.Shift); ok {
		r0 = rf(ctx, actor, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Shift)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, domain.OpenShiftInput) error); ok {
		r1 = rf(ctx, actor, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CloseShift provides a mock function with given fields: ctx, actor, shiftID, input
func (_m *ShiftServiceInterface) CloseShift(ctx context.Context, actor domain.Actor, shiftID int, input domain.CloseShiftInput) (*domain.Shift, error) {
	ret := _m.Called(ctx, actor, shiftID, input)

	if len(ret) == 0 {
		panic("no return value specified for CloseShift")
	}

	var r0 *domain.Shift
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, domain.CloseShiftInput) (*domain.Shift, error)); ok {
		return rf(ctx, actor, shiftID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, int, domain.CloseShiftInput) *domain.Shift); ok {
		r0 = rf(ctx, actor, shiftID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Shift)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, int, domain.CloseShiftInput) error); ok {
		r1 = rf(ctx, actor, shiftID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ActiveShiftFor provides a mock function with given fields: ctx, employeeID
func (_m *ShiftServiceInterface) ActiveShiftFor(ctx context.Context, employeeID int) (*domain.Shift, error) {
	ret := _m.Called(ctx, employeeID)

	if len(ret) == 0 {
		panic("no return value specified for ActiveShiftFor")
	}

	var r0 *domain.Shift
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*domain.Shift, error)); ok {
		return rf(ctx, employeeID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *domain.Shift); ok {
		r0 = rf(ctx, employeeID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Shift)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, employeeID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewShiftServiceInterface creates a new instance of ShiftServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewShiftServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ShiftServiceInterface {
	m := &ShiftServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
