package transport

import (
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"

	"github.com/z3ntu/libqopenrazer/common"
)

// Bus selects which message bus a DBus transport connects to.
type Bus string

const (
	SessionBus Bus = `session`
	SystemBus  Bus = `system`
)

type signalKey struct {
	path dbus.ObjectPath
	name string
}

// DBus implements Transport against one well-known bus name. The bus
// connection and the per-path object handles are created on first use and
// kept for the lifetime of the transport.
type DBus struct {
	bus      Bus
	service  string
	conn     *dbus.Conn
	objects  map[dbus.ObjectPath]dbus.BusObject
	handlers map[signalKey][]SignalHandler
	signals  chan *dbus.Signal
	closed   bool
	sync.Mutex
}

// NewDBus returns a transport for service on bus. No connection is made
// until the first call.
func NewDBus(bus Bus, service string) *DBus {
	return &DBus{
		bus:      bus,
		service:  service,
		objects:  make(map[dbus.ObjectPath]dbus.BusObject),
		handlers: make(map[signalKey][]SignalHandler),
	}
}

// connect must be called with the lock held.
func (t *DBus) connect() (*dbus.Conn, error) {
	if t.closed {
		return nil, common.ErrClosed
	}
	if t.conn != nil {
		return t.conn, nil
	}
	var (
		conn *dbus.Conn
		err  error
	)
	switch t.bus {
	case SystemBus:
		conn, err = dbus.ConnectSystemBus()
	default:
		conn, err = dbus.ConnectSessionBus()
	}
	if err != nil {
		return nil, errors.Wrapf(err, `connecting to %s bus`, t.bus)
	}
	common.Log.Debugf("Connected to %s bus for %s", t.bus, t.service)
	t.conn = conn
	return conn, nil
}

func (t *DBus) object(path dbus.ObjectPath) (dbus.BusObject, error) {
	t.Lock()
	defer t.Unlock()
	if obj, ok := t.objects[path]; ok {
		return obj, nil
	}
	conn, err := t.connect()
	if err != nil {
		return nil, err
	}
	obj := conn.Object(t.service, path)
	t.objects[path] = obj
	return obj, nil
}

// Call invokes iface.member on the object at path.
func (t *DBus) Call(path dbus.ObjectPath, iface, member string, args ...interface{}) ([]interface{}, error) {
	obj, err := t.object(path)
	if err != nil {
		return nil, &common.TransportError{Path: path, Interface: iface, Member: member, Err: err}
	}
	call := obj.Call(iface+`.`+member, 0, args...)
	if call.Err != nil {
		common.Log.Debugf("Call %s %s.%s failed: %v", path, iface, member, call.Err)
		return nil, &common.TransportError{Path: path, Interface: iface, Member: member, Err: call.Err}
	}
	return call.Body, nil
}

// GetProperty reads iface.name on the object at path.
func (t *DBus) GetProperty(path dbus.ObjectPath, iface, name string) (interface{}, error) {
	obj, err := t.object(path)
	if err != nil {
		return nil, &common.TransportError{Path: path, Interface: iface, Member: name, Err: err}
	}
	v, err := obj.GetProperty(iface + `.` + name)
	if err != nil {
		common.Log.Debugf("Reading property %s %s.%s failed: %v", path, iface, name, err)
		return nil, &common.TransportError{Path: path, Interface: iface, Member: name, Err: err}
	}
	return v.Value(), nil
}

// Subscribe adds a match rule for iface.signal on path and registers
// handler. Handlers run on the transport's dispatch goroutine.
func (t *DBus) Subscribe(path dbus.ObjectPath, iface, signal string, handler SignalHandler) error {
	t.Lock()
	defer t.Unlock()
	conn, err := t.connect()
	if err != nil {
		return &common.TransportError{Path: path, Interface: iface, Member: signal, Err: err}
	}
	err = conn.AddMatchSignal(
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(iface),
		dbus.WithMatchMember(signal),
	)
	if err != nil {
		return &common.TransportError{Path: path, Interface: iface, Member: signal, Err: err}
	}
	key := signalKey{path: path, name: iface + `.` + signal}
	t.handlers[key] = append(t.handlers[key], handler)
	if t.signals == nil {
		t.signals = make(chan *dbus.Signal, 16)
		conn.Signal(t.signals)
		go t.dispatcher(t.signals)
	}
	return nil
}

func (t *DBus) dispatcher(signals <-chan *dbus.Signal) {
	for sig := range signals {
		if sig == nil {
			continue
		}
		t.Lock()
		handlers := append([]SignalHandler(nil), t.handlers[signalKey{path: sig.Path, name: sig.Name}]...)
		t.Unlock()
		if len(handlers) == 0 {
			common.Log.Debugf("Ignoring signal %s from %s", sig.Name, sig.Path)
			continue
		}
		for _, h := range handlers {
			h(sig.Body)
		}
	}
	common.Log.Debugf("Quitting signal dispatcher")
}

// Close closes the bus connection. Further calls fail with common.ErrClosed.
func (t *DBus) Close() error {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return common.ErrClosed
	}
	t.closed = true
	if t.conn == nil {
		return nil
	}
	if t.signals != nil {
		t.conn.RemoveSignal(t.signals)
		close(t.signals)
	}
	return t.conn.Close()
}

// String describes the transport for logs.
func (t *DBus) String() string {
	return strings.Join([]string{string(t.bus), t.service}, `:`)
}
