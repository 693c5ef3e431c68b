package mocks

import "github.com/stretchr/testify/mock"

type Runner struct {
	mock.Mock
}

// Run provides a mock function with given fields: name, args
func (_m *Runner) Run(name string, args ...string) (string, string, error) {
	ret := _m.Called(name, args)

	var r0 string
	if rf, ok := ret.Get(0).(func(string, ...string) string); ok {
		r0 = rf(name, args...)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 string
	if rf, ok := ret.Get(1).(func(string, ...string) string); ok {
		r1 = rf(name, args...)
	} else {
		r1 = ret.Get(1).(string)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(string, ...string) error); ok {
		r2 = rf(name, args...)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}
