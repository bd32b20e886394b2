package mocks

import (
	iter "iter"

	"github.com/renato0307/bundlestats/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockBundleAnalyzer is a testify mock of ports.BundleAnalyzer
type MockBundleAnalyzer struct {
	mock.Mock
}

type MockBundleAnalyzer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBundleAnalyzer) EXPECT() *MockBundleAnalyzer_Expecter {
	return &MockBundleAnalyzer_Expecter{mock: &_m.Mock}
}

// Analyze provides a mock function for the type MockBundleAnalyzer
func (_m *MockBundleAnalyzer) Analyze(push domain.Push, statsPath string, chartPath string) iter.Seq2[domain.ChunkStat, error] {
	ret := _m.Called(push, statsPath, chartPath)

	if len(ret) == 0 {
		panic("no return value specified for Analyze")
	}

	var r0 iter.Seq2[domain.ChunkStat, error]
	if rf, ok := ret.Get(0).(func(domain.Push, string, string) iter.Seq2[domain.ChunkStat, error]); ok {
		r0 = rf(push, statsPath, chartPath)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(iter.Seq2[domain.ChunkStat, error])
		}
	}

	return r0
}

// MockBundleAnalyzer_Analyze_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Analyze'
type MockBundleAnalyzer_Analyze_Call struct {
	*mock.Call
}

// Analyze is a helper method to define mock.On call
func (_e *MockBundleAnalyzer_Expecter) Analyze(push interface{}, statsPath interface{}, chartPath interface{}) *MockBundleAnalyzer_Analyze_Call {
	return &MockBundleAnalyzer_Analyze_Call{Call: _e.mock.On("Analyze", push, statsPath, chartPath)}
}

func (_c *MockBundleAnalyzer_Analyze_Call) Run(run func(push domain.Push, statsPath string, chartPath string)) *MockBundleAnalyzer_Analyze_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.Push), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockBundleAnalyzer_Analyze_Call) Return(_a0 iter.Seq2[domain.ChunkStat, error]) *MockBundleAnalyzer_Analyze_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBundleAnalyzer_Analyze_Call) RunAndReturn(run func(domain.Push, string, string) iter.Seq2[domain.ChunkStat, error]) *MockBundleAnalyzer_Analyze_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBundleAnalyzer creates a new instance of MockBundleAnalyzer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBundleAnalyzer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBundleAnalyzer {
	m := &MockBundleAnalyzer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
