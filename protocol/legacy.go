package protocol

import (
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol/legacy/device"
	"github.com/z3ntu/libqopenrazer/transport"
)

const (
	LegacyServiceName      = `org.razer`
	LegacyDaemonPath       = dbus.ObjectPath(`/org/razer`)
	LegacyDaemonInterface  = `razer.daemon`
	LegacyDevicesInterface = `razer.devices`
	LegacyServiceUnit      = `openrazer-daemon.service`
	LegacyDaemonBinary     = `/usr/bin/openrazer-daemon`
)

// legacySignals are emitted by openrazer-daemon on LegacyDevicesInterface.
var legacySignals = []string{`device_added`, `device_removed`}

// Legacy implements the openrazer-daemon dialect.
type Legacy struct {
	// Bus selects the message bus, defaults to the session bus
	Bus transport.Bus
	// Transport overrides the D-Bus transport, mainly for tests. When nil a
	// transport is created on first use.
	Transport transport.Transport
	sync.Mutex

	subscribeMu sync.Mutex
	subscribed  map[string]bool
	handlersMu  sync.RWMutex
	handlers    []func(signal string)
}

func (p *Legacy) transport() transport.Transport {
	p.Lock()
	defer p.Unlock()
	if p.Transport == nil {
		p.Transport = transport.NewDBus(p.Bus, LegacyServiceName)
	}
	return p.Transport
}

// Dialect returns common.DialectLegacy
func (p *Legacy) Dialect() common.Dialect {
	return common.DialectLegacy
}

// Version returns the daemon version
func (p *Legacy) Version() (string, error) {
	var version string
	err := transport.CallStore(p.transport(), LegacyDaemonPath, LegacyDaemonInterface, `version`, &version)
	return version, err
}

// Devices maps the daemon's serial list to device paths
func (p *Legacy) Devices() ([]dbus.ObjectPath, error) {
	var serials []string
	if err := transport.CallStore(p.transport(), LegacyDaemonPath, LegacyDevicesInterface, `getDevices`, &serials); err != nil {
		return nil, err
	}
	paths := make([]dbus.ObjectPath, 0, len(serials))
	for _, serial := range serials {
		paths = append(paths, device.PathForSerial(serial))
	}
	return paths, nil
}

// Device constructs the device at path
func (p *Legacy) Device(path dbus.ObjectPath) (common.Device, error) {
	dev, err := device.New(p.transport(), path)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// SubscribeDevicesChanged subscribes to device_added and device_removed.
// Each signal is registered on the transport once per Legacy and fanned out
// to every handler. handler is only added once both signals are registered,
// so a failed call can be retried without doubling either signal.
func (p *Legacy) SubscribeDevicesChanged(handler func(signal string)) error {
	t := p.transport()
	p.subscribeMu.Lock()
	defer p.subscribeMu.Unlock()
	if p.subscribed == nil {
		p.subscribed = make(map[string]bool, len(legacySignals))
	}
	for _, name := range legacySignals {
		if p.subscribed[name] {
			continue
		}
		name := name
		err := t.Subscribe(LegacyDaemonPath, LegacyDevicesInterface, name, func([]interface{}) {
			p.dispatch(name)
		})
		if err != nil {
			return err
		}
		p.subscribed[name] = true
	}
	p.handlersMu.Lock()
	p.handlers = append(p.handlers, handler)
	p.handlersMu.Unlock()
	return nil
}

func (p *Legacy) dispatch(signal string) {
	p.handlersMu.RLock()
	handlers := p.handlers
	p.handlersMu.RUnlock()
	for _, h := range handlers {
		h(signal)
	}
}

// ServiceUnit returns the systemd unit of openrazer-daemon
func (p *Legacy) ServiceUnit() string {
	return LegacyServiceUnit
}

// DaemonBinary returns the install path of openrazer-daemon
func (p *Legacy) DaemonBinary() string {
	return LegacyDaemonBinary
}

// Close closes the transport
func (p *Legacy) Close() error {
	return p.transport().Close()
}
