package mocks

import (
	context "context"

	"github.com/renato0307/bundlestats/internal/ports"
	mock "github.com/stretchr/testify/mock"
)

// MockCommandRunner is a testify mock of ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

type MockCommandRunner_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommandRunner) EXPECT() *MockCommandRunner_Expecter {
	return &MockCommandRunner_Expecter{mock: &_m.Mock}
}

// Run provides a mock function for the type MockCommandRunner
func (_m *MockCommandRunner) Run(ctx context.Context, cmd ports.Command) (ports.CommandResult, error) {
	ret := _m.Called(ctx, cmd)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 ports.CommandResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, ports.Command) (ports.CommandResult, error)); ok {
		return rf(ctx, cmd)
	}
	if rf, ok := ret.Get(0).(func(context.Context, ports.Command) ports.CommandResult); ok {
		r0 = rf(ctx, cmd)
	} else {
		r0 = ret.Get(0).(ports.CommandResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, ports.Command) error); ok {
		r1 = rf(ctx, cmd)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCommandRunner_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type MockCommandRunner_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
func (_e *MockCommandRunner_Expecter) Run(ctx interface{}, cmd interface{}) *MockCommandRunner_Run_Call {
	return &MockCommandRunner_Run_Call{Call: _e.mock.On("Run", ctx, cmd)}
}

func (_c *MockCommandRunner_Run_Call) Run(run func(ctx context.Context, cmd ports.Command)) *MockCommandRunner_Run_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(ports.Command))
	})
	return _c
}

func (_c *MockCommandRunner_Run_Call) Return(_a0 ports.CommandResult, _a1 error) *MockCommandRunner_Run_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCommandRunner_Run_Call) RunAndReturn(run func(context.Context, ports.Command) (ports.CommandResult, error)) *MockCommandRunner_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCommandRunner creates a new instance of MockCommandRunner. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCommandRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommandRunner {
	m := &MockCommandRunner{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
