package mocks

import (
	context "context"

	"github.com/renato0307/bundlestats/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockPushQueue is a testify mock of ports.PushQueue
type MockPushQueue struct {
	mock.Mock
}

type MockPushQueue_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPushQueue) EXPECT() *MockPushQueue_Expecter {
	return &MockPushQueue_Expecter{mock: &_m.Mock}
}

// InsertChunkStat provides a mock function for the type MockPushQueue
func (_m *MockPushQueue) InsertChunkStat(ctx context.Context, stat domain.ChunkStat) error {
	ret := _m.Called(ctx, stat)

	if len(ret) == 0 {
		panic("no return value specified for InsertChunkStat")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ChunkStat) error); ok {
		r0 = rf(ctx, stat)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPushQueue_InsertChunkStat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'InsertChunkStat'
type MockPushQueue_InsertChunkStat_Call struct {
	*mock.Call
}

// InsertChunkStat is a helper method to define mock.On call
func (_e *MockPushQueue_Expecter) InsertChunkStat(ctx interface{}, stat interface{}) *MockPushQueue_InsertChunkStat_Call {
	return &MockPushQueue_InsertChunkStat_Call{Call: _e.mock.On("InsertChunkStat", ctx, stat)}
}

func (_c *MockPushQueue_InsertChunkStat_Call) Run(run func(ctx context.Context, stat domain.ChunkStat)) *MockPushQueue_InsertChunkStat_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ChunkStat))
	})
	return _c
}

func (_c *MockPushQueue_InsertChunkStat_Call) Return(_a0 error) *MockPushQueue_InsertChunkStat_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPushQueue_InsertChunkStat_Call) RunAndReturn(run func(context.Context, domain.ChunkStat) error) *MockPushQueue_InsertChunkStat_Call {
	_c.Call.Return(run)
	return _c
}

// ListPendingPushes provides a mock function for the type MockPushQueue
func (_m *MockPushQueue) ListPendingPushes(ctx context.Context, limit int) ([]domain.Push, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListPendingPushes")
	}

	var r0 []domain.Push
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.Push, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.Push); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Push)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPushQueue_ListPendingPushes_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPendingPushes'
type MockPushQueue_ListPendingPushes_Call struct {
	*mock.Call
}

// ListPendingPushes is a helper method to define mock.On call
func (_e *MockPushQueue_Expecter) ListPendingPushes(ctx interface{}, limit interface{}) *MockPushQueue_ListPendingPushes_Call {
	return &MockPushQueue_ListPendingPushes_Call{Call: _e.mock.On("ListPendingPushes", ctx, limit)}
}

func (_c *MockPushQueue_ListPendingPushes_Call) Run(run func(ctx context.Context, limit int)) *MockPushQueue_ListPendingPushes_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockPushQueue_ListPendingPushes_Call) Return(_a0 []domain.Push, _a1 error) *MockPushQueue_ListPendingPushes_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPushQueue_ListPendingPushes_Call) RunAndReturn(run func(context.Context, int) ([]domain.Push, error)) *MockPushQueue_ListPendingPushes_Call {
	_c.Call.Return(run)
	return _c
}

// MarkFailed provides a mock function for the type MockPushQueue
func (_m *MockPushQueue) MarkFailed(ctx context.Context, sha string, failure domain.PushFailure) error {
	ret := _m.Called(ctx, sha, failure)

	if len(ret) == 0 {
		panic("no return value specified for MarkFailed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.PushFailure) error); ok {
		r0 = rf(ctx, sha, failure)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPushQueue_MarkFailed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkFailed'
type MockPushQueue_MarkFailed_Call struct {
	*mock.Call
}

// MarkFailed is a helper method to define mock.On call
func (_e *MockPushQueue_Expecter) MarkFailed(ctx interface{}, sha interface{}, failure interface{}) *MockPushQueue_MarkFailed_Call {
	return &MockPushQueue_MarkFailed_Call{Call: _e.mock.On("MarkFailed", ctx, sha, failure)}
}

func (_c *MockPushQueue_MarkFailed_Call) Run(run func(ctx context.Context, sha string, failure domain.PushFailure)) *MockPushQueue_MarkFailed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.PushFailure))
	})
	return _c
}

func (_c *MockPushQueue_MarkFailed_Call) Return(_a0 error) *MockPushQueue_MarkFailed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPushQueue_MarkFailed_Call) RunAndReturn(run func(context.Context, string, domain.PushFailure) error) *MockPushQueue_MarkFailed_Call {
	_c.Call.Return(run)
	return _c
}

// MarkProcessed provides a mock function for the type MockPushQueue
func (_m *MockPushQueue) MarkProcessed(ctx context.Context, sha string) error {
	ret := _m.Called(ctx, sha)

	if len(ret) == 0 {
		panic("no return value specified for MarkProcessed")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, sha)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPushQueue_MarkProcessed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkProcessed'
type MockPushQueue_MarkProcessed_Call struct {
	*mock.Call
}

// MarkProcessed is a helper method to define mock.On call
func (_e *MockPushQueue_Expecter) MarkProcessed(ctx interface{}, sha interface{}) *MockPushQueue_MarkProcessed_Call {
	return &MockPushQueue_MarkProcessed_Call{Call: _e.mock.On("MarkProcessed", ctx, sha)}
}

func (_c *MockPushQueue_MarkProcessed_Call) Run(run func(ctx context.Context, sha string)) *MockPushQueue_MarkProcessed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockPushQueue_MarkProcessed_Call) Return(_a0 error) *MockPushQueue_MarkProcessed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPushQueue_MarkProcessed_Call) RunAndReturn(run func(context.Context, string) error) *MockPushQueue_MarkProcessed_Call {
	_c.Call.Return(run)
	return _c
}

// SetAncestor provides a mock function for the type MockPushQueue
func (_m *MockPushQueue) SetAncestor(ctx context.Context, sha string, ancestor string) error {
	ret := _m.Called(ctx, sha, ancestor)

	if len(ret) == 0 {
		panic("no return value specified for SetAncestor")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, sha, ancestor)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPushQueue_SetAncestor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetAncestor'
type MockPushQueue_SetAncestor_Call struct {
	*mock.Call
}

// SetAncestor is a helper method to define mock.On call
func (_e *MockPushQueue_Expecter) SetAncestor(ctx interface{}, sha interface{}, ancestor interface{}) *MockPushQueue_SetAncestor_Call {
	return &MockPushQueue_SetAncestor_Call{Call: _e.mock.On("SetAncestor", ctx, sha, ancestor)}
}

func (_c *MockPushQueue_SetAncestor_Call) Run(run func(ctx context.Context, sha string, ancestor string)) *MockPushQueue_SetAncestor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockPushQueue_SetAncestor_Call) Return(_a0 error) *MockPushQueue_SetAncestor_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPushQueue_SetAncestor_Call) RunAndReturn(run func(context.Context, string, string) error) *MockPushQueue_SetAncestor_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPushQueue creates a new instance of MockPushQueue. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPushQueue(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPushQueue {
	m := &MockPushQueue{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
