package mocks

import (
	"context"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/service"

	"github.com/stretchr/testify/mock"
)

type StorefrontServiceInterface struct {
	mock.Mock
}

func NewStorefrontServiceInterface(t testingT) *StorefrontServiceInterface {
	m := &StorefrontServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StorefrontServiceInterface) sessionView(ret mock.Arguments) (service.SessionView, error) {
	var r0 service.SessionView
	if v := ret.Get(0); v != nil {
		r0 = v.(service.SessionView)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) cartView(ret mock.Arguments) (service.CartView, error) {
	var r0 service.CartView
	if v := ret.Get(0); v != nil {
		r0 = v.(service.CartView)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) StartSession(ctx context.Context, req service.StartRequest) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, req))
}

func (_m *StorefrontServiceInterface) Session(ctx context.Context, id string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) SetLanguage(ctx context.Context, id, language string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id, language))
}

func (_m *StorefrontServiceInterface) SetOrderType(ctx context.Context, id, orderType string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id, orderType))
}

func (_m *StorefrontServiceInterface) SelectCategory(ctx context.Context, id, category string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id, category))
}

func (_m *StorefrontServiceInterface) Categories(ctx context.Context, id string) ([]service.CategoryView, error) {
	ret := _m.Called(ctx, id)
	var r0 []service.CategoryView
	if v := ret.Get(0); v != nil {
		r0 = v.([]service.CategoryView)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) CategoryItems(ctx context.Context, id string) ([]service.ItemView, error) {
	ret := _m.Called(ctx, id)
	var r0 []service.ItemView
	if v := ret.Get(0); v != nil {
		r0 = v.([]service.ItemView)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) Item(ctx context.Context, id string, itemID int) (service.ItemView, error) {
	ret := _m.Called(ctx, id, itemID)
	var r0 service.ItemView
	if v := ret.Get(0); v != nil {
		r0 = v.(service.ItemView)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) Cart(ctx context.Context, id string) (service.CartView, error) {
	return _m.cartView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) AddToCart(ctx context.Context, id string, itemID int) (service.CartView, error) {
	return _m.cartView(_m.Called(ctx, id, itemID))
}

func (_m *StorefrontServiceInterface) RemoveFromCart(ctx context.Context, id string, itemID int) (service.CartView, error) {
	return _m.cartView(_m.Called(ctx, id, itemID))
}

func (_m *StorefrontServiceInterface) ClearCart(ctx context.Context, id string) (service.CartView, error) {
	return _m.cartView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) StageQuantity(ctx context.Context, id string, itemID, delta int) (int, error) {
	ret := _m.Called(ctx, id, itemID, delta)
	return ret.Int(0), ret.Error(1)
}

func (_m *StorefrontServiceInterface) CommitStaged(ctx context.Context, id string, itemID int) (service.CartView, error) {
	return _m.cartView(_m.Called(ctx, id, itemID))
}

func (_m *StorefrontServiceInterface) OpenCart(ctx context.Context, id string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) CloseCart(ctx context.Context, id string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) BeginCheckout(ctx context.Context, id string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) CancelCheckout(ctx context.Context, id string) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id))
}

func (_m *StorefrontServiceInterface) UpdateCustomer(ctx context.Context, id string, info domain.CustomerInfo) (service.SessionView, error) {
	return _m.sessionView(_m.Called(ctx, id, info))
}

func (_m *StorefrontServiceInterface) ConfirmOrder(ctx context.Context, id string) (service.OrderResult, error) {
	ret := _m.Called(ctx, id)
	var r0 service.OrderResult
	if v := ret.Get(0); v != nil {
		r0 = v.(service.OrderResult)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) OrderHistory(ctx context.Context, id string) ([]domain.OrderRecord, error) {
	ret := _m.Called(ctx, id)
	var r0 []domain.OrderRecord
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderRecord)
	}
	return r0, ret.Error(1)
}

func (_m *StorefrontServiceInterface) TableQRCode(table int) ([]byte, error) {
	ret := _m.Called(table)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

var _ service.StorefrontServiceInterface = (*StorefrontServiceInterface)(nil)
