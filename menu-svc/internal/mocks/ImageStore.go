package mocks

import (
	context "context"
	io "io"

	mock "github.com/stretchr/testify/mock"
)

// ImageStore is a mock type for the ImageStore type.
type ImageStore struct {
	mock.Mock
}

// SaveImage provides a mock function with given fields: ctx, name, src
func (_m *ImageStore) SaveImage(ctx context.Context, name string, src io.Reader) (string, error) {
	ret := _m.Called(ctx, name, src)

	if len(ret) == 0 {
		panic("no return value specified for SaveImage")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader) (string, error)); ok {
		return rf(ctx, name, src)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader) string); ok {
		r0 = rf(ctx, name, src)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader) error); ok {
		r1 = rf(ctx, name, src)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewImageStore creates a new instance of ImageStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewImageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageStore {
	mock := &ImageStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
