package protocol

import (
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol/unified/device"
	"github.com/z3ntu/libqopenrazer/transport"
)

const (
	UnifiedServiceName      = `io.github.openrazer1`
	UnifiedManagerPath      = dbus.ObjectPath(`/io/github/openrazer1`)
	UnifiedManagerInterface = `io.github.openrazer1.Manager`
	UnifiedServiceUnit      = `razer_test.service`
	UnifiedDaemonBinary     = `/usr/bin/razer_test`

	unifiedDevicesChanged = `devicesChanged`
)

// Unified implements the razer_test dialect.
type Unified struct {
	// Bus selects the message bus, defaults to the session bus
	Bus transport.Bus
	// Transport overrides the D-Bus transport, mainly for tests. When nil a
	// transport is created on first use.
	Transport transport.Transport
	sync.Mutex
}

func (p *Unified) transport() transport.Transport {
	p.Lock()
	defer p.Unlock()
	if p.Transport == nil {
		p.Transport = transport.NewDBus(p.Bus, UnifiedServiceName)
	}
	return p.Transport
}

// Dialect returns common.DialectUnified
func (p *Unified) Dialect() common.Dialect {
	return common.DialectUnified
}

// Version returns the daemon version
func (p *Unified) Version() (string, error) {
	var version string
	err := transport.PropertyStore(p.transport(), UnifiedManagerPath, UnifiedManagerInterface, `Version`, &version)
	return version, err
}

// Devices returns the device paths reported by the daemon
func (p *Unified) Devices() ([]dbus.ObjectPath, error) {
	var paths []dbus.ObjectPath
	if err := transport.PropertyStore(p.transport(), UnifiedManagerPath, UnifiedManagerInterface, `Devices`, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// Device constructs the device at path
func (p *Unified) Device(path dbus.ObjectPath) (common.Device, error) {
	dev, err := device.New(p.transport(), path)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// SubscribeDevicesChanged subscribes to devicesChanged
func (p *Unified) SubscribeDevicesChanged(handler func(signal string)) error {
	return p.transport().Subscribe(UnifiedManagerPath, UnifiedManagerInterface, unifiedDevicesChanged, func([]interface{}) {
		handler(unifiedDevicesChanged)
	})
}

// ServiceUnit returns the systemd unit of razer_test
func (p *Unified) ServiceUnit() string {
	return UnifiedServiceUnit
}

// DaemonBinary returns the install path of razer_test
func (p *Unified) DaemonBinary() string {
	return UnifiedDaemonBinary
}

// Close closes the transport
func (p *Unified) Close() error {
	return p.transport().Close()
}
