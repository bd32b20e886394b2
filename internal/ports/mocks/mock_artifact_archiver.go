package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockArtifactArchiver is a testify mock of ports.ArtifactArchiver
type MockArtifactArchiver struct {
	mock.Mock
}

type MockArtifactArchiver_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArtifactArchiver) EXPECT() *MockArtifactArchiver_Expecter {
	return &MockArtifactArchiver_Expecter{mock: &_m.Mock}
}

// Archive provides a mock function for the type MockArtifactArchiver
func (_m *MockArtifactArchiver) Archive(ctx context.Context, sha string, paths ...string) error {
	ret := _m.Called(ctx, sha, paths)

	if len(ret) == 0 {
		panic("no return value specified for Archive")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, ...string) error); ok {
		r0 = rf(ctx, sha, paths...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockArtifactArchiver_Archive_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Archive'
type MockArtifactArchiver_Archive_Call struct {
	*mock.Call
}

// Archive is a helper method to define mock.On call
func (_e *MockArtifactArchiver_Expecter) Archive(ctx interface{}, sha interface{}, paths interface{}) *MockArtifactArchiver_Archive_Call {
	return &MockArtifactArchiver_Archive_Call{Call: _e.mock.On("Archive", ctx, sha, paths)}
}

func (_c *MockArtifactArchiver_Archive_Call) Run(run func(ctx context.Context, sha string, paths ...string)) *MockArtifactArchiver_Archive_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].([]string)...)
	})
	return _c
}

func (_c *MockArtifactArchiver_Archive_Call) Return(_a0 error) *MockArtifactArchiver_Archive_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockArtifactArchiver_Archive_Call) RunAndReturn(run func(context.Context, string, ...string) error) *MockArtifactArchiver_Archive_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function for the type MockArtifactArchiver
func (_m *MockArtifactArchiver) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockArtifactArchiver_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockArtifactArchiver_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockArtifactArchiver_Expecter) Close() *MockArtifactArchiver_Close_Call {
	return &MockArtifactArchiver_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockArtifactArchiver_Close_Call) Run(run func()) *MockArtifactArchiver_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockArtifactArchiver_Close_Call) Return(_a0 error) *MockArtifactArchiver_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockArtifactArchiver_Close_Call) RunAndReturn(run func() error) *MockArtifactArchiver_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockArtifactArchiver creates a new instance of MockArtifactArchiver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockArtifactArchiver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArtifactArchiver {
	m := &MockArtifactArchiver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
