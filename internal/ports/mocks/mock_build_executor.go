package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockBuildExecutor is a testify mock of ports.BuildExecutor
type MockBuildExecutor struct {
	mock.Mock
}

type MockBuildExecutor_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBuildExecutor) EXPECT() *MockBuildExecutor_Expecter {
	return &MockBuildExecutor_Expecter{mock: &_m.Mock}
}

// Cleanup provides a mock function for the type MockBuildExecutor
func (_m *MockBuildExecutor) Cleanup(ctx context.Context, artifacts ...string) error {
	ret := _m.Called(ctx, artifacts)

	if len(ret) == 0 {
		panic("no return value specified for Cleanup")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...string) error); ok {
		r0 = rf(ctx, artifacts...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBuildExecutor_Cleanup_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Cleanup'
type MockBuildExecutor_Cleanup_Call struct {
	*mock.Call
}

// Cleanup is a helper method to define mock.On call
func (_e *MockBuildExecutor_Expecter) Cleanup(ctx interface{}, artifacts interface{}) *MockBuildExecutor_Cleanup_Call {
	return &MockBuildExecutor_Cleanup_Call{Call: _e.mock.On("Cleanup", ctx, artifacts)}
}

func (_c *MockBuildExecutor_Cleanup_Call) Run(run func(ctx context.Context, artifacts ...string)) *MockBuildExecutor_Cleanup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string)...)
	})
	return _c
}

func (_c *MockBuildExecutor_Cleanup_Call) Return(_a0 error) *MockBuildExecutor_Cleanup_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBuildExecutor_Cleanup_Call) RunAndReturn(run func(context.Context, ...string) error) *MockBuildExecutor_Cleanup_Call {
	_c.Call.Return(run)
	return _c
}

// InstallDependencies provides a mock function for the type MockBuildExecutor
func (_m *MockBuildExecutor) InstallDependencies(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for InstallDependencies")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBuildExecutor_InstallDependencies_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'InstallDependencies'
type MockBuildExecutor_InstallDependencies_Call struct {
	*mock.Call
}

// InstallDependencies is a helper method to define mock.On call
func (_e *MockBuildExecutor_Expecter) InstallDependencies(ctx interface{}) *MockBuildExecutor_InstallDependencies_Call {
	return &MockBuildExecutor_InstallDependencies_Call{Call: _e.mock.On("InstallDependencies", ctx)}
}

func (_c *MockBuildExecutor_InstallDependencies_Call) Run(run func(ctx context.Context)) *MockBuildExecutor_InstallDependencies_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockBuildExecutor_InstallDependencies_Call) Return(_a0 error) *MockBuildExecutor_InstallDependencies_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBuildExecutor_InstallDependencies_Call) RunAndReturn(run func(context.Context) error) *MockBuildExecutor_InstallDependencies_Call {
	_c.Call.Return(run)
	return _c
}

// RunProductionBuild provides a mock function for the type MockBuildExecutor
func (_m *MockBuildExecutor) RunProductionBuild(ctx context.Context, outputPath string) error {
	ret := _m.Called(ctx, outputPath)

	if len(ret) == 0 {
		panic("no return value specified for RunProductionBuild")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, outputPath)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockBuildExecutor_RunProductionBuild_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RunProductionBuild'
type MockBuildExecutor_RunProductionBuild_Call struct {
	*mock.Call
}

// RunProductionBuild is a helper method to define mock.On call
func (_e *MockBuildExecutor_Expecter) RunProductionBuild(ctx interface{}, outputPath interface{}) *MockBuildExecutor_RunProductionBuild_Call {
	return &MockBuildExecutor_RunProductionBuild_Call{Call: _e.mock.On("RunProductionBuild", ctx, outputPath)}
}

func (_c *MockBuildExecutor_RunProductionBuild_Call) Run(run func(ctx context.Context, outputPath string)) *MockBuildExecutor_RunProductionBuild_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockBuildExecutor_RunProductionBuild_Call) Return(_a0 error) *MockBuildExecutor_RunProductionBuild_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBuildExecutor_RunProductionBuild_Call) RunAndReturn(run func(context.Context, string) error) *MockBuildExecutor_RunProductionBuild_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBuildExecutor creates a new instance of MockBuildExecutor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBuildExecutor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBuildExecutor {
	m := &MockBuildExecutor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
