// Package transport defines the IPC transport the dialects are written
// against, and implements it on top of D-Bus.
package transport

import (
	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
)

const (
	// IntrospectableInterface is the standard D-Bus introspection interface
	IntrospectableInterface = `org.freedesktop.DBus.Introspectable`
	// IntrospectMethod returns the XML description of an object
	IntrospectMethod = `Introspect`
)

// SignalHandler receives the body of a subscribed signal.
type SignalHandler func(body []interface{})

// Transport is a blocking RPC style connection to one daemon. Every method
// performs at most one round-trip; timeouts are owned by the implementation.
// Failures are returned as *common.TransportError.
type Transport interface {
	// Call invokes iface.member on the object at path and returns the reply
	// body.
	Call(path dbus.ObjectPath, iface, member string, args ...interface{}) ([]interface{}, error)
	// GetProperty reads iface.name on the object at path.
	GetProperty(path dbus.ObjectPath, iface, name string) (interface{}, error)
	// Subscribe registers handler for iface.signal emitted by the object at
	// path. Delivery order and multiplicity are those of the bus.
	Subscribe(path dbus.ObjectPath, iface, signal string, handler SignalHandler) error
	// Close releases the connection.
	Close() error
}

// Store decodes a reply body into dest, one destination per body value. A
// mismatch in count or type is returned as a *common.DecodeError.
func Store(member string, body []interface{}, dest ...interface{}) error {
	if len(body) != len(dest) {
		return common.NewDecodeError(member, `expected %d values, got %d`, len(dest), len(body))
	}
	if err := dbus.Store(body, dest...); err != nil {
		return common.NewDecodeError(member, `%v`, err)
	}
	return nil
}

// StoreValue decodes a single property value into dest.
func StoreValue(member string, value interface{}, dest interface{}) error {
	if v, ok := value.(dbus.Variant); ok {
		value = v.Value()
	}
	return Store(member, []interface{}{value}, dest)
}

// CallStore calls iface.member and decodes the reply into dest.
func CallStore(t Transport, path dbus.ObjectPath, iface, member string, dest ...interface{}) error {
	body, err := t.Call(path, iface, member)
	if err != nil {
		return err
	}
	return Store(member, body, dest...)
}

// PropertyStore reads iface.name and decodes it into dest.
func PropertyStore(t Transport, path dbus.ObjectPath, iface, name string, dest interface{}) error {
	value, err := t.GetProperty(path, iface, name)
	if err != nil {
		return err
	}
	return StoreValue(name, value, dest)
}
