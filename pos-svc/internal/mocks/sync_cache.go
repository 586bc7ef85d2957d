package mocks

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SyncCache is a mock type for the SyncCache type
type SyncCache struct {
	mock.Mock
}

// CachedStatus provides a mock function with given fields: ctx
func (_m *SyncCache) CachedStatus(ctx context.Context) (*domain.SyncStatus, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for CachedStatus")
	}

	var r0 *domain.SyncStatus
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*domain.SyncStatus, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *domain.SyncStatus); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.SyncStatus)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// StoreStatus provides a mock function with given fields: ctx, status
func (_m *SyncCache) StoreStatus(ctx context.Context, status *domain.SyncStatus) error {
	ret := _m.Called(ctx, status)

	if len(ret) == 0 {
		panic("no return value specified for StoreStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.SyncStatus) error); ok {
		r0 = rf(ctx, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InvalidateStatus provides a mock function with given fields: ctx
func (_m *SyncCache) InvalidateStatus(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for InvalidateStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MarkDeviceSync provides a mock function with given fields: ctx, deviceID, at
func (_m *SyncCache) MarkDeviceSync(ctx context.Context, deviceID string, at time.Time) error {
	ret := _m.Called(ctx, deviceID, at)

	if len(ret) == 0 {
		panic("no return value specified for MarkDeviceSync")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) error); ok {
		r0 = rf(ctx, deviceID, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeviceLastSync provides a mock function with given fields: ctx, deviceID
func (_m *SyncCache) DeviceLastSync(ctx context.Context, deviceID string) (*time.Time, error) {
	ret := _m.Called(ctx, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for DeviceLastSync")
	}

	var r0 *time.Time
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*time.Time, error)); ok {
		return rf(ctx, deviceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *time.Time); ok {
		r0 = rf(ctx, deviceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*time.Time)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, deviceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewSyncCache creates a new instance of SyncCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSyncCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *SyncCache {
	m := &SyncCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
