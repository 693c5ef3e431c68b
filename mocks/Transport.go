package mocks

import (
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/transport"
)

type Transport struct {
	mock.Mock
}

// Call provides a mock function with given fields: path, iface, member, args
func (_m *Transport) Call(path dbus.ObjectPath, iface string, member string, args ...interface{}) ([]interface{}, error) {
	ret := _m.Called(path, iface, member, args)

	var r0 []interface{}
	if rf, ok := ret.Get(0).(func(dbus.ObjectPath, string, string, ...interface{}) []interface{}); ok {
		r0 = rf(path, iface, member, args...)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]interface{})
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(dbus.ObjectPath, string, string, ...interface{}) error); ok {
		r1 = rf(path, iface, member, args...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetProperty provides a mock function with given fields: path, iface, name
func (_m *Transport) GetProperty(path dbus.ObjectPath, iface string, name string) (interface{}, error) {
	ret := _m.Called(path, iface, name)

	var r0 interface{}
	if rf, ok := ret.Get(0).(func(dbus.ObjectPath, string, string) interface{}); ok {
		r0 = rf(path, iface, name)
	} else {
		r0 = ret.Get(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(dbus.ObjectPath, string, string) error); ok {
		r1 = rf(path, iface, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Subscribe provides a mock function with given fields: path, iface, signal, handler
func (_m *Transport) Subscribe(path dbus.ObjectPath, iface string, signal string, handler transport.SignalHandler) error {
	ret := _m.Called(path, iface, signal, handler)

	var r0 error
	if rf, ok := ret.Get(0).(func(dbus.ObjectPath, string, string, transport.SignalHandler) error); ok {
		r0 = rf(path, iface, signal, handler)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Close provides a mock function with given fields:
func (_m *Transport) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
