package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// StatsStore is a mock type for the StatsStore type.
type StatsStore struct {
	mock.Mock
}

// RecordOrderCreated provides a mock function with given fields: ctx, date, deliveryType, total
func (_m *StatsStore) RecordOrderCreated(ctx context.Context, date string, deliveryType string, total float64) error {
	ret := _m.Called(ctx, date, deliveryType, total)

	if len(ret) == 0 {
		panic("no return value specified for RecordOrderCreated")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, float64) error); ok {
		r0 = rf(ctx, date, deliveryType, total)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecordStatusChange provides a mock function with given fields: ctx, date, status
func (_m *StatsStore) RecordStatusChange(ctx context.Context, date string, status string) error {
	ret := _m.Called(ctx, date, status)

	if len(ret) == 0 {
		panic("no return value specified for RecordStatusChange")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, date, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStatsStore creates a new instance of StatsStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsStore {
	mock := &StatsStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
