package mocks

import (
	"context"

	"aroma-storefront/internal/domain"
	"aroma-storefront/internal/order"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MenuLoader struct {
	mock.Mock
}

func (_m *MenuLoader) LoadOrDefault(ctx context.Context, fallback domain.Menu, cookies domain.UpstreamCookies) (domain.Menu, error) {
	ret := _m.Called(ctx, fallback, cookies)
	if rf, ok := ret.Get(0).(func(context.Context, domain.Menu, domain.UpstreamCookies) (domain.Menu, error)); ok {
		return rf(ctx, fallback, cookies)
	}
	return ret.Get(0).(domain.Menu), ret.Error(1)
}

func NewMenuLoader(t testingT) *MenuLoader {
	m := &MenuLoader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderSubmitter struct {
	mock.Mock
}

func (_m *OrderSubmitter) Submit(ctx context.Context, payload domain.OrderPayload, cookies domain.UpstreamCookies) (order.Confirmation, error) {
	ret := _m.Called(ctx, payload, cookies)
	var r0 order.Confirmation
	if v := ret.Get(0); v != nil {
		r0 = v.(order.Confirmation)
	}
	return r0, ret.Error(1)
}

func NewOrderSubmitter(t testingT) *OrderSubmitter {
	m := &OrderSubmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type OrderJournal struct {
	mock.Mock
}

func (_m *OrderJournal) Record(ctx context.Context, record *domain.OrderRecord) error {
	return _m.Called(ctx, record).Error(0)
}

func (_m *OrderJournal) ListBySession(ctx context.Context, sessionID string) ([]domain.OrderRecord, error) {
	ret := _m.Called(ctx, sessionID)
	var r0 []domain.OrderRecord
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderRecord)
	}
	return r0, ret.Error(1)
}

func NewOrderJournal(t testingT) *OrderJournal {
	m := &OrderJournal{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) Publish(ctx context.Context, event domain.StorefrontEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(table int) ([]byte, error) {
	ret := _m.Called(table)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
