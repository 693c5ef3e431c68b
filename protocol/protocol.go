// Package protocol implements the two openrazer daemon dialects.
//
// This package is not designed to used directly by end users, other than to
// pick a dialect when creating a new Manager from the razer package.
//
// The implemented dialects are:
//   Legacy  - openrazer-daemon, per-feature razer.device.* interfaces
//   Unified - razer_test, property based io.github.openrazer1.* interfaces
package protocol

import (
	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
)

// Protocol defines the interface between the Manager and a dialect
// implementation
type Protocol interface {
	// Dialect identifies the implementation
	Dialect() common.Dialect
	// Version returns the daemon version, e.g. `2.3.0`
	Version() (string, error)
	// Devices returns the object paths of the devices the daemon knows
	Devices() ([]dbus.ObjectPath, error)
	// Device constructs a Device bound to path, probing its capabilities
	Device(path dbus.ObjectPath) (common.Device, error)
	// SubscribeDevicesChanged calls handler with the signal name whenever
	// the daemon reports added or removed devices
	SubscribeDevicesChanged(handler func(signal string)) error
	// ServiceUnit is the systemd unit name of the daemon
	ServiceUnit() string
	// DaemonBinary is the path the daemon executable is installed to
	DaemonBinary() string
	// Close closes the dialect's transport, no further communication with
	// the daemon is possible
	Close() error
}
