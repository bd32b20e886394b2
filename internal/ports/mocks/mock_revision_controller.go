package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockRevisionController is a testify mock of ports.RevisionController
type MockRevisionController struct {
	mock.Mock
}

type MockRevisionController_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRevisionController) EXPECT() *MockRevisionController_Expecter {
	return &MockRevisionController_Expecter{mock: &_m.Mock}
}

// Checkout provides a mock function for the type MockRevisionController
func (_m *MockRevisionController) Checkout(ctx context.Context, sha string) error {
	ret := _m.Called(ctx, sha)

	if len(ret) == 0 {
		panic("no return value specified for Checkout")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, sha)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRevisionController_Checkout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Checkout'
type MockRevisionController_Checkout_Call struct {
	*mock.Call
}

// Checkout is a helper method to define mock.On call
func (_e *MockRevisionController_Expecter) Checkout(ctx interface{}, sha interface{}) *MockRevisionController_Checkout_Call {
	return &MockRevisionController_Checkout_Call{Call: _e.mock.On("Checkout", ctx, sha)}
}

func (_c *MockRevisionController_Checkout_Call) Run(run func(ctx context.Context, sha string)) *MockRevisionController_Checkout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRevisionController_Checkout_Call) Return(_a0 error) *MockRevisionController_Checkout_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRevisionController_Checkout_Call) RunAndReturn(run func(context.Context, string) error) *MockRevisionController_Checkout_Call {
	_c.Call.Return(run)
	return _c
}

// FetchLatest provides a mock function for the type MockRevisionController
func (_m *MockRevisionController) FetchLatest(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FetchLatest")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRevisionController_FetchLatest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchLatest'
type MockRevisionController_FetchLatest_Call struct {
	*mock.Call
}

// FetchLatest is a helper method to define mock.On call
func (_e *MockRevisionController_Expecter) FetchLatest(ctx interface{}) *MockRevisionController_FetchLatest_Call {
	return &MockRevisionController_FetchLatest_Call{Call: _e.mock.On("FetchLatest", ctx)}
}

func (_c *MockRevisionController_FetchLatest_Call) Run(run func(ctx context.Context)) *MockRevisionController_FetchLatest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockRevisionController_FetchLatest_Call) Return(_a0 error) *MockRevisionController_FetchLatest_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRevisionController_FetchLatest_Call) RunAndReturn(run func(context.Context) error) *MockRevisionController_FetchLatest_Call {
	_c.Call.Return(run)
	return _c
}

// ResolveAncestor provides a mock function for the type MockRevisionController
func (_m *MockRevisionController) ResolveAncestor(ctx context.Context, trunkRef string) (string, error) {
	ret := _m.Called(ctx, trunkRef)

	if len(ret) == 0 {
		panic("no return value specified for ResolveAncestor")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, trunkRef)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, trunkRef)
	} else {
		r0 = ret.Get(0).(string)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, trunkRef)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRevisionController_ResolveAncestor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ResolveAncestor'
type MockRevisionController_ResolveAncestor_Call struct {
	*mock.Call
}

// ResolveAncestor is a helper method to define mock.On call
func (_e *MockRevisionController_Expecter) ResolveAncestor(ctx interface{}, trunkRef interface{}) *MockRevisionController_ResolveAncestor_Call {
	return &MockRevisionController_ResolveAncestor_Call{Call: _e.mock.On("ResolveAncestor", ctx, trunkRef)}
}

func (_c *MockRevisionController_ResolveAncestor_Call) Run(run func(ctx context.Context, trunkRef string)) *MockRevisionController_ResolveAncestor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRevisionController_ResolveAncestor_Call) Return(_a0 string, _a1 error) *MockRevisionController_ResolveAncestor_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRevisionController_ResolveAncestor_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockRevisionController_ResolveAncestor_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRevisionController creates a new instance of MockRevisionController. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRevisionController(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRevisionController {
	m := &MockRevisionController{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
