package mocks

import (
	"context"

	"aroma-storefront/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StatsStore struct {
	mock.Mock
}

func (_m *StatsStore) Apply(ctx context.Context, event domain.StorefrontEvent) error {
	return _m.Called(ctx, event).Error(0)
}

func NewStatsStore(t testingT) *StatsStore {
	m := &StatsStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
