package mocks

import (
	context "context"

	domain "desi-beats/menu-svc/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// StatsReader is a mock type for the StatsReader type.
type StatsReader struct {
	mock.Mock
}

// DailyStats provides a mock function with given fields: ctx, date
func (_m *StatsReader) DailyStats(ctx context.Context, date string) (*domain.DailyStats, error) {
	ret := _m.Called(ctx, date)

	if len(ret) == 0 {
		panic("no return value specified for DailyStats")
	}

	var r0 *domain.DailyStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.DailyStats, error)); ok {
		return rf(ctx, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.DailyStats); ok {
		r0 = rf(ctx, date)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.DailyStats)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewStatsReader creates a new instance of StatsReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStatsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsReader {
	mock := &StatsReader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
