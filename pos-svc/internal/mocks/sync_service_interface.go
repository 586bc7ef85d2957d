package mocks

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SyncServiceInterface is a mock type for the SyncServiceInterface type
type SyncServiceInterface struct {
	mock.Mock
}

// Reconcile provides a mock function with given fields: ctx, deviceID, records
func (_m *SyncServiceInterface) Reconcile(ctx context.Context, deviceID string, records []domain.SaleRecord) (*domain.SyncResult, error) {
	ret := _m.Called(ctx, deviceID, records)

	if len(ret) == 0 {
		panic("no return value specified for Reconcile")
	}

	var r0 *domain.SyncResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []domain.SaleRecord) (*domain.SyncResult, error)); ok {
		return rf(ctx, deviceID, records)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, []domain.SaleRecord) *domain.SyncResult); ok {
		r0 = rf(ctx, deviceID, records)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.SyncResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, []domain.SaleRecord) error); ok {
		r1 = rf(ctx, deviceID, records)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Status provides a mock function with given fields: ctx, deviceID
func (_m *SyncServiceInterface) Status(ctx context.Context, deviceID string) (*domain.SyncStatus, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for Status")
	}

	var r0 *domain.SyncStatus
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.SyncStatus, error)); ok {
		return rf(ctx, deviceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.SyncStatus); ok {
		r0 = rf(ctx, deviceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.SyncStatus)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Pending provides a mock function with given fields: ctx, since
func (_m *SyncServiceInterface) Pending(ctx context.Context, since *time.Time) ([]domain.Sale, error) {
	ret := _m.Called(ctx, since)

	if len(ret) == 0 {
		panic("no return value specified for Pending")
	}

	var r0 []domain.Sale
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *time.Time) ([]domain.Sale, error)); ok {
		return rf(ctx, since)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *time.Time) []domain.Sale); ok {
		r0 = rf(ctx, since)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Sale)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *time.Time) error); ok {
		r1 = rf(ctx, since)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewSyncServiceInterface creates a new instance of SyncServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSyncServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SyncServiceInterface {
	m := &SyncServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
