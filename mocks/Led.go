package mocks

import (
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/common"
)

type Led struct {
	mock.Mock
}

// ObjectPath provides a mock function with given fields:
func (_m *Led) ObjectPath() dbus.ObjectPath {
	ret := _m.Called()

	var r0 dbus.ObjectPath
	if rf, ok := ret.Get(0).(func() dbus.ObjectPath); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(dbus.ObjectPath)
	}

	return r0
}

// Dialect provides a mock function with given fields:
func (_m *Led) Dialect() common.Dialect {
	ret := _m.Called()

	var r0 common.Dialect
	if rf, ok := ret.Get(0).(func() common.Dialect); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Dialect)
	}

	return r0
}

// LedID provides a mock function with given fields:
func (_m *Led) LedID() (common.LedID, error) {
	ret := _m.Called()

	var r0 common.LedID
	if rf, ok := ret.Get(0).(func() common.LedID); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.LedID)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Capabilities provides a mock function with given fields:
func (_m *Led) Capabilities() common.CapabilitySet {
	ret := _m.Called()

	var r0 common.CapabilitySet
	if rf, ok := ret.Get(0).(func() common.CapabilitySet); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.CapabilitySet)
	}

	return r0
}

// HasFx provides a mock function with given fields: token
func (_m *Led) HasFx(token string) bool {
	ret := _m.Called(token)

	var r0 bool
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// HasEffect provides a mock function with given fields: effect
func (_m *Led) HasEffect(effect common.Effect) bool {
	ret := _m.Called(effect)

	var r0 bool
	if rf, ok := ret.Get(0).(func(common.Effect) bool); ok {
		r0 = rf(effect)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// CurrentEffect provides a mock function with given fields:
func (_m *Led) CurrentEffect() (common.Effect, error) {
	ret := _m.Called()

	var r0 common.Effect
	if rf, ok := ret.Get(0).(func() common.Effect); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Effect)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CurrentColors provides a mock function with given fields:
func (_m *Led) CurrentColors() ([3]common.RGB, error) {
	ret := _m.Called()

	var r0 [3]common.RGB
	if rf, ok := ret.Get(0).(func() [3]common.RGB); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).([3]common.RGB)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// WaveDirection provides a mock function with given fields:
func (_m *Led) WaveDirection() (common.WaveDirection, error) {
	ret := _m.Called()

	var r0 common.WaveDirection
	if rf, ok := ret.Get(0).(func() common.WaveDirection); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.WaveDirection)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Brightness provides a mock function with given fields:
func (_m *Led) Brightness() (uint8, error) {
	ret := _m.Called()

	var r0 uint8
	if rf, ok := ret.Get(0).(func() uint8); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint8)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetOff provides a mock function with given fields:
func (_m *Led) SetOff() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetOn provides a mock function with given fields:
func (_m *Led) SetOn() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetStatic provides a mock function with given fields: color
func (_m *Led) SetStatic(color common.RGB) error {
	ret := _m.Called(color)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.RGB) error); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBreathing provides a mock function with given fields: color
func (_m *Led) SetBreathing(color common.RGB) error {
	ret := _m.Called(color)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.RGB) error); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBreathingDual provides a mock function with given fields: color, color2
func (_m *Led) SetBreathingDual(color common.RGB, color2 common.RGB) error {
	ret := _m.Called(color, color2)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.RGB, common.RGB) error); ok {
		r0 = rf(color, color2)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBreathingRandom provides a mock function with given fields:
func (_m *Led) SetBreathingRandom() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBlinking provides a mock function with given fields: color
func (_m *Led) SetBlinking(color common.RGB) error {
	ret := _m.Called(color)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.RGB) error); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetSpectrum provides a mock function with given fields:
func (_m *Led) SetSpectrum() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetWave provides a mock function with given fields: direction
func (_m *Led) SetWave(direction common.WaveDirection) error {
	ret := _m.Called(direction)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.WaveDirection) error); ok {
		r0 = rf(direction)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetReactive provides a mock function with given fields: color, speed
func (_m *Led) SetReactive(color common.RGB, speed common.ReactiveSpeed) error {
	ret := _m.Called(color, speed)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.RGB, common.ReactiveSpeed) error); ok {
		r0 = rf(color, speed)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBrightness provides a mock function with given fields: brightness
func (_m *Led) SetBrightness(brightness uint8) error {
	ret := _m.Called(brightness)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint8) error); ok {
		r0 = rf(brightness)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
