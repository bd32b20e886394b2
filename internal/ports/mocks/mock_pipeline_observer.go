package mocks

import (
	time "time"

	"github.com/renato0307/bundlestats/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockPipelineObserver is a testify mock of ports.PipelineObserver
type MockPipelineObserver struct {
	mock.Mock
}

type MockPipelineObserver_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPipelineObserver) EXPECT() *MockPipelineObserver_Expecter {
	return &MockPipelineObserver_Expecter{mock: &_m.Mock}
}

// ChunkRecorded provides a mock function for the type MockPipelineObserver
func (_m *MockPipelineObserver) ChunkRecorded(stat domain.ChunkStat) {
	_m.Called(stat)
}

// MockPipelineObserver_ChunkRecorded_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChunkRecorded'
type MockPipelineObserver_ChunkRecorded_Call struct {
	*mock.Call
}

// ChunkRecorded is a helper method to define mock.On call
func (_e *MockPipelineObserver_Expecter) ChunkRecorded(stat interface{}) *MockPipelineObserver_ChunkRecorded_Call {
	return &MockPipelineObserver_ChunkRecorded_Call{Call: _e.mock.On("ChunkRecorded", stat)}
}

func (_c *MockPipelineObserver_ChunkRecorded_Call) Run(run func(stat domain.ChunkStat)) *MockPipelineObserver_ChunkRecorded_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.ChunkStat))
	})
	return _c
}

func (_c *MockPipelineObserver_ChunkRecorded_Call) Return() *MockPipelineObserver_ChunkRecorded_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPipelineObserver_ChunkRecorded_Call) RunAndReturn(run func(domain.ChunkStat)) *MockPipelineObserver_ChunkRecorded_Call {
	_c.Run(run)
	return _c
}

// PushCompleted provides a mock function for the type MockPipelineObserver
func (_m *MockPipelineObserver) PushCompleted(push domain.Push, outcome domain.Outcome) {
	_m.Called(push, outcome)
}

// MockPipelineObserver_PushCompleted_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PushCompleted'
type MockPipelineObserver_PushCompleted_Call struct {
	*mock.Call
}

// PushCompleted is a helper method to define mock.On call
func (_e *MockPipelineObserver_Expecter) PushCompleted(push interface{}, outcome interface{}) *MockPipelineObserver_PushCompleted_Call {
	return &MockPipelineObserver_PushCompleted_Call{Call: _e.mock.On("PushCompleted", push, outcome)}
}

func (_c *MockPipelineObserver_PushCompleted_Call) Run(run func(push domain.Push, outcome domain.Outcome)) *MockPipelineObserver_PushCompleted_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.Push), args[1].(domain.Outcome))
	})
	return _c
}

func (_c *MockPipelineObserver_PushCompleted_Call) Return() *MockPipelineObserver_PushCompleted_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPipelineObserver_PushCompleted_Call) RunAndReturn(run func(domain.Push, domain.Outcome)) *MockPipelineObserver_PushCompleted_Call {
	_c.Run(run)
	return _c
}

// QueuePolled provides a mock function for the type MockPipelineObserver
func (_m *MockPipelineObserver) QueuePolled(pending int) {
	_m.Called(pending)
}

// MockPipelineObserver_QueuePolled_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'QueuePolled'
type MockPipelineObserver_QueuePolled_Call struct {
	*mock.Call
}

// QueuePolled is a helper method to define mock.On call
func (_e *MockPipelineObserver_Expecter) QueuePolled(pending interface{}) *MockPipelineObserver_QueuePolled_Call {
	return &MockPipelineObserver_QueuePolled_Call{Call: _e.mock.On("QueuePolled", pending)}
}

func (_c *MockPipelineObserver_QueuePolled_Call) Run(run func(pending int)) *MockPipelineObserver_QueuePolled_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int))
	})
	return _c
}

func (_c *MockPipelineObserver_QueuePolled_Call) Return() *MockPipelineObserver_QueuePolled_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPipelineObserver_QueuePolled_Call) RunAndReturn(run func(int)) *MockPipelineObserver_QueuePolled_Call {
	_c.Run(run)
	return _c
}

// StepFinished provides a mock function for the type MockPipelineObserver
func (_m *MockPipelineObserver) StepFinished(step domain.Step, elapsed time.Duration, err error) {
	_m.Called(step, elapsed, err)
}

// MockPipelineObserver_StepFinished_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StepFinished'
type MockPipelineObserver_StepFinished_Call struct {
	*mock.Call
}

// StepFinished is a helper method to define mock.On call
func (_e *MockPipelineObserver_Expecter) StepFinished(step interface{}, elapsed interface{}, err interface{}) *MockPipelineObserver_StepFinished_Call {
	return &MockPipelineObserver_StepFinished_Call{Call: _e.mock.On("StepFinished", step, elapsed, err)}
}

func (_c *MockPipelineObserver_StepFinished_Call) Run(run func(step domain.Step, elapsed time.Duration, err error)) *MockPipelineObserver_StepFinished_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg2 error
		if args[2] != nil {
			arg2 = args[2].(error)
		}
		run(args[0].(domain.Step), args[1].(time.Duration), arg2)
	})
	return _c
}

func (_c *MockPipelineObserver_StepFinished_Call) Return() *MockPipelineObserver_StepFinished_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockPipelineObserver_StepFinished_Call) RunAndReturn(run func(domain.Step, time.Duration, error)) *MockPipelineObserver_StepFinished_Call {
	_c.Run(run)
	return _c
}

// NewMockPipelineObserver creates a new instance of MockPipelineObserver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPipelineObserver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPipelineObserver {
	m := &MockPipelineObserver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
