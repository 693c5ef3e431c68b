package razer

import (
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol"
	"github.com/z3ntu/libqopenrazer/systemd"
)

// Manager is the entry point for talking to a daemon. Always use NewManager()
// to obtain a Manager instance.
type Manager struct {
	protocol      protocol.Protocol
	unit          *systemd.Unit
	subscriptions map[string]*common.Subscription
	subscribed    bool
	closed        bool
	sync.RWMutex
}

// Dialect returns the dialect the manager was created with
func (m *Manager) Dialect() common.Dialect {
	return m.protocol.Dialect()
}

// IsDaemonRunning reports whether the daemon answers a version query
func (m *Manager) IsDaemonRunning() bool {
	_, err := m.protocol.Version()
	if err != nil {
		common.Log.Debugf("Daemon is not running: %v", err)
		return false
	}
	return true
}

// DaemonVersion returns the version of the running daemon, e.g. `2.3.0`
func (m *Manager) DaemonVersion() (string, error) {
	return m.protocol.Version()
}

// Devices returns the object paths of all devices known to the daemon, in
// the daemon's order
func (m *Manager) Devices() ([]dbus.ObjectPath, error) {
	return m.protocol.Devices()
}

// Device constructs a Device for path. Capabilities are detected once, here;
// create a new Device when the daemon's view of the hardware changes.
func (m *Manager) Device(path dbus.ObjectPath) (common.Device, error) {
	dev, err := m.protocol.Device(path)
	if err != nil {
		return nil, errors.Wrapf(err, `creating device %s`, path)
	}
	return dev, nil
}

// DaemonStatus classifies the daemon's systemd unit
func (m *Manager) DaemonStatus() common.DaemonStatus {
	return m.unit.Status()
}

// DaemonStatusOutput returns the multi-line output of `systemctl status`
// for the daemon's unit
func (m *Manager) DaemonStatusOutput() (string, error) {
	return m.unit.StatusOutput()
}

// EnableDaemon enables the daemon's systemd unit so that it starts when the
// user logs in
func (m *Manager) EnableDaemon() error {
	return m.unit.Enable()
}

// SetServiceRunner replaces the command runner used by DaemonStatus,
// DaemonStatusOutput and EnableDaemon
func (m *Manager) SetServiceRunner(r systemd.Runner) {
	m.unit.Runner = r
}

// ConnectDevicesChanged calls handler whenever the daemon reports added or
// removed devices. Ordering and multiplicity of calls are those of the bus.
func (m *Manager) ConnectDevicesChanged(handler func()) error {
	return m.protocol.SubscribeDevicesChanged(func(string) {
		handler()
	})
}

// NewSubscription returns a *common.Subscription receiving
// common.EventDevicesChanged events
func (m *Manager) NewSubscription() (*common.Subscription, error) {
	m.Lock()
	defer m.Unlock()
	if m.closed {
		return nil, common.ErrClosed
	}
	if !m.subscribed {
		if err := m.protocol.SubscribeDevicesChanged(m.publishDevicesChanged); err != nil {
			return nil, err
		}
		m.subscribed = true
	}
	sub := common.NewSubscription(m)
	m.subscriptions[sub.ID()] = sub
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of subscriptions.
func (m *Manager) CloseSubscription(sub *common.Subscription) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.subscriptions[sub.ID()]; !ok {
		return common.ErrNotFound
	}
	delete(m.subscriptions, sub.ID())
	return nil
}

func (m *Manager) publishDevicesChanged(signal string) {
	m.RLock()
	subs := make([]*common.Subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.RUnlock()

	event := common.EventDevicesChanged{Signal: signal}
	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("Dropping %s event for subscription %s: %v", signal, sub.ID(), err)
		}
	}
}

// Close closes all subscriptions and the dialect's transport
func (m *Manager) Close() error {
	m.Lock()
	if m.closed {
		m.Unlock()
		return common.ErrClosed
	}
	m.closed = true
	subs := make([]*common.Subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			common.Log.Warnf("Failed closing subscription %s: %v", sub.ID(), err)
		}
	}
	return m.protocol.Close()
}
