package mocks

import (
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/common"
)

type Device struct {
	mock.Mock
}

// ObjectPath provides a mock function with given fields:
func (_m *Device) ObjectPath() dbus.ObjectPath {
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
func (_m *Device) Dialect() common.Dialect {
	ret := _m.Called()

	var r0 common.Dialect
	if rf, ok := ret.Get(0).(func() common.Dialect); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Dialect)
	}

	return r0
}

// Capabilities provides a mock function with given fields:
func (_m *Device) Capabilities() common.CapabilitySet {
	ret := _m.Called()

	var r0 common.CapabilitySet
	if rf, ok := ret.Get(0).(func() common.CapabilitySet); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.CapabilitySet)
	}

	return r0
}

// HasFeature provides a mock function with given fields: token
func (_m *Device) HasFeature(token string) bool {
	ret := _m.Called(token)

	var r0 bool
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Leds provides a mock function with given fields:
func (_m *Device) Leds() []common.Led {
	ret := _m.Called()

	var r0 []common.Led
	if rf, ok := ret.Get(0).(func() []common.Led); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]common.Led)
	}

	return r0
}

// Name provides a mock function with given fields:
func (_m *Device) Name() (string, error) {
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

// Type provides a mock function with given fields:
func (_m *Device) Type() (string, error) {
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

// FirmwareVersion provides a mock function with given fields:
func (_m *Device) FirmwareVersion() (string, error) {
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

// Serial provides a mock function with given fields:
func (_m *Device) Serial() (string, error) {
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

// VidPid provides a mock function with given fields:
func (_m *Device) VidPid() (common.USBID, error) {
	ret := _m.Called()

	var r0 common.USBID
	if rf, ok := ret.Get(0).(func() common.USBID); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.USBID)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// KeyboardLayout provides a mock function with given fields:
func (_m *Device) KeyboardLayout() (string, error) {
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

// DPI provides a mock function with given fields:
func (_m *Device) DPI() (common.DPI, error) {
	ret := _m.Called()

	var r0 common.DPI
	if rf, ok := ret.Get(0).(func() common.DPI); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.DPI)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetDPI provides a mock function with given fields: dpi
func (_m *Device) SetDPI(dpi common.DPI) error {
	ret := _m.Called(dpi)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.DPI) error); ok {
		r0 = rf(dpi)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MaxDPI provides a mock function with given fields:
func (_m *Device) MaxDPI() (uint16, error) {
	ret := _m.Called()

	var r0 uint16
	if rf, ok := ret.Get(0).(func() uint16); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint16)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DPIStages provides a mock function with given fields:
func (_m *Device) DPIStages() ([]common.DPI, error) {
	ret := _m.Called()

	var r0 []common.DPI
	if rf, ok := ret.Get(0).(func() []common.DPI); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]common.DPI)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetDPIStages provides a mock function with given fields: stages
func (_m *Device) SetDPIStages(stages []common.DPI) error {
	ret := _m.Called(stages)

	var r0 error
	if rf, ok := ret.Get(0).(func([]common.DPI) error); ok {
		r0 = rf(stages)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PollRate provides a mock function with given fields:
func (_m *Device) PollRate() (uint16, error) {
	ret := _m.Called()

	var r0 uint16
	if rf, ok := ret.Get(0).(func() uint16); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint16)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetPollRate provides a mock function with given fields: rate
func (_m *Device) SetPollRate(rate uint16) error {
	ret := _m.Called(rate)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint16) error); ok {
		r0 = rf(rate)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
