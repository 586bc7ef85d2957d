package mocks

import (
	"context"

	"restopos/pos-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the OrderServiceInterface type
type OrderServiceInterface struct {
	mock.Mock
}

// CreateSale provides a mock function with given fields: ctx, actor, input
func (_m *OrderServiceInterface) CreateSale(ctx context.Context, actor domain.Actor, input domain.CreateSaleInput) (*domain.Sale, error) {
	ret := _m.Called(ctx, actor, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateSale")
	}

	var r0 *domain.Sale
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, domain.CreateSaleInput) (*domain.Sale, error)); ok {
		return rf(ctx, actor, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, domain.CreateSaleInput) *domain.Sale); ok {
		r0 = rf(ctx, actor, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Sale)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, domain.CreateSaleInput) error); ok {
		r1 = rf(ctx, actor, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CancelSale provides a mock function with given fields: ctx, actor, saleID, reason
func (_m *OrderServiceInterface) CancelSale(ctx context.Context, actor domain.Actor, saleID string, reason string) (*domain.Sale, error) {
	ret := _m.Called(ctx, actor, saleID, reason)

	if len(ret) == 0 {
		panic("no return value specified for CancelSale")
	}

	var r0 *domain.Sale
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string, string) (*domain.Sale, error)); ok {
		return rf(ctx, actor, saleID, reason)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string, string) *domain.Sale); ok {
		r0 = rf(ctx, actor, saleID, reason)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Sale)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, string, string) error); ok {
		r1 = rf(ctx, actor, saleID, reason)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetSale provides a mock function with given fields: ctx, actor, saleID
func (_m *OrderServiceInterface) GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error) {
	ret := _m.Called(ctx, actor, saleID)

	if len(ret) == 0 {
		panic("no return value specified for GetSale")
	}

	var r0 *domain.Sale
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string) (*domain.Sale, error)); ok {
		return rf(ctx, actor, saleID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string) *domain.Sale); ok {
		r0 = rf(ctx, actor, saleID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Sale)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, string) error); ok {
		r1 = rf(ctx, actor, saleID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReceiptQRCode provides a mock function with given fields: ctx, actor, saleID
func (_m *OrderServiceInterface) ReceiptQRCode(ctx context.Context, actor domain.Actor, saleID string) ([]byte, error) {
	ret := _m.Called(ctx, actor, saleID)

	if len(ret) == 0 {
		panic("no return value specified for ReceiptQRCode")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string) ([]byte, error)); ok {
		return rf(ctx, actor, saleID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Actor, string) []byte); ok {
		r0 = rf(ctx, actor, saleID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Actor, string) error); ok {
		r1 = rf(ctx, actor, saleID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderServiceInterface creates a new instance of OrderServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
