// Package probe answers "does this remote object have interface X with member
// Y" questions, which both dialects use to decide what a device supports.
package probe

import (
	"encoding/xml"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/transport"
)

type key struct {
	iface  string
	member string
}

// Probe memoizes capability lookups for one remote object. The object is
// introspected at most once; answers are cached for the lifetime of the
// Probe, since the daemon's surface is fixed once a device is enumerated.
//
// A Probe is not safe for concurrent use.
type Probe struct {
	transport transport.Transport
	path      dbus.ObjectPath
	members   map[string]map[string]struct{}
	cache     map[key]bool
}

// New returns a Probe for the object at path.
func New(t transport.Transport, path dbus.ObjectPath) *Probe {
	return &Probe{
		transport: t,
		path:      path,
		cache:     make(map[key]bool),
	}
}

// Path returns the probed object path.
func (p *Probe) Path() dbus.ObjectPath {
	return p.path
}

// Has reports whether iface exists on the object and, if member is not
// empty, whether it has a method, property or signal of that name. A failed
// introspection is returned as an error and is not cached.
func (p *Probe) Has(iface, member string) (bool, error) {
	k := key{iface: iface, member: member}
	if ok, cached := p.cache[k]; cached {
		return ok, nil
	}
	if err := p.load(); err != nil {
		return false, err
	}
	members, ok := p.members[iface]
	if ok && member != `` {
		_, ok = members[member]
	}
	p.cache[k] = ok
	return ok, nil
}

// Supports is Has without the error, for callers that need a plain answer.
// The caller must have called Load and seen it succeed; from then on every
// answer comes from the introspection data and cannot fail. Calling it before
// that is a bug: the introspection error is logged and reported as absent.
func (p *Probe) Supports(iface, member string) bool {
	ok, err := p.Has(iface, member)
	if err != nil {
		common.Log.Errorf("Probing %s %s.%s before a successful Load: %v", p.path, iface, member, err)
		return false
	}
	return ok
}

// Load introspects the object if that has not happened yet.
func (p *Probe) Load() error {
	return p.load()
}

func (p *Probe) load() error {
	if p.members != nil {
		return nil
	}
	body, err := p.transport.Call(p.path, transport.IntrospectableInterface, transport.IntrospectMethod)
	if err != nil {
		return err
	}
	var data string
	if err := transport.Store(transport.IntrospectMethod, body, &data); err != nil {
		return err
	}
	var node introspect.Node
	if err := xml.Unmarshal([]byte(data), &node); err != nil {
		return common.NewDecodeError(transport.IntrospectMethod, `invalid introspection data: %v`, err)
	}

	members := make(map[string]map[string]struct{}, len(node.Interfaces))
	for _, iface := range node.Interfaces {
		m := make(map[string]struct{}, len(iface.Methods)+len(iface.Properties)+len(iface.Signals))
		for _, method := range iface.Methods {
			m[method.Name] = struct{}{}
		}
		for _, prop := range iface.Properties {
			m[prop.Name] = struct{}{}
		}
		for _, sig := range iface.Signals {
			m[sig.Name] = struct{}{}
		}
		members[iface.Name] = m
	}
	common.Log.Debugf("Introspected %s: %d interfaces", p.path, len(members))
	p.members = members
	return nil
}
