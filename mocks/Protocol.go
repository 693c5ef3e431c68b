package mocks

import (
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/common"
)

type Protocol struct {
	mock.Mock
}

// Dialect provides a mock function with given fields:
func (_m *Protocol) Dialect() common.Dialect {
	ret := _m.Called()

	var r0 common.Dialect
	if rf, ok := ret.Get(0).(func() common.Dialect); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Dialect)
	}

	return r0
}

// Version provides a mock function with given fields:
func (_m *Protocol) Version() (string, error) {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Devices provides a mock function with given fields:
func (_m *Protocol) Devices() ([]dbus.ObjectPath, error) {
	ret := _m.Called()

	var r0 []dbus.ObjectPath
	if rf, ok := ret.Get(0).(func() []dbus.ObjectPath); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dbus.ObjectPath)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Device provides a mock function with given fields: path
func (_m *Protocol) Device(path dbus.ObjectPath) (common.Device, error) {
	ret := _m.Called(path)

	var r0 common.Device
	if rf, ok := ret.Get(0).(func(dbus.ObjectPath) common.Device); ok {
		r0 = rf(path)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(common.Device)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(dbus.ObjectPath) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SubscribeDevicesChanged provides a mock function with given fields: handler
func (_m *Protocol) SubscribeDevicesChanged(handler func(string)) error {
	ret := _m.Called(handler)

	var r0 error
	if rf, ok := ret.Get(0).(func(func(string)) error); ok {
		r0 = rf(handler)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ServiceUnit provides a mock function with given fields:
func (_m *Protocol) ServiceUnit() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// DaemonBinary provides a mock function with given fields:
func (_m *Protocol) DaemonBinary() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Close provides a mock function with given fields:
func (_m *Protocol) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
