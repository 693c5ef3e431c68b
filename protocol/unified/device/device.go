// Package device implements devices and lighting zones of razer_test, which
// exposes one Device and one Led interface and reports capabilities as
// properties.
//
// This package is not designed to be accessed by end users, all interaction
// should occur via the Manager in the razer package.
package device

import (
	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/transport"
)

const (
	DeviceInterface = `io.github.openrazer1.Device`
	LedInterface    = `io.github.openrazer1.Led`
)

// Device is a razer_test device.
type Device struct {
	path      dbus.ObjectPath
	transport transport.Transport
	caps      common.CapabilitySet
	fx        common.CapabilitySet
	leds      []common.Led
}

// New reads the capability properties of the device at path and binds its
// zones.
func New(t transport.Transport, path dbus.ObjectPath) (*Device, error) {
	d := &Device{
		path:      path,
		transport: t,
	}

	var features, fx []string
	if err := transport.PropertyStore(t, path, DeviceInterface, `SupportedFeatures`, &features); err != nil {
		return nil, err
	}
	if err := transport.PropertyStore(t, path, DeviceInterface, `SupportedFx`, &fx); err != nil {
		return nil, err
	}
	d.caps = common.NewCapabilitySet(features...)
	d.fx = common.NewCapabilitySet(fx...)

	var ledPaths []dbus.ObjectPath
	if err := transport.PropertyStore(t, path, DeviceInterface, `Leds`, &ledPaths); err != nil {
		return nil, err
	}
	for _, p := range ledPaths {
		d.leds = append(d.leds, NewLed(d, p))
	}
	common.Log.Debugf("New device %v: features %v, fx %v, %d leds", path, d.caps.Tokens(), d.fx.Tokens(), len(d.leds))
	return d, nil
}

func (d *Device) ObjectPath() dbus.ObjectPath {
	return d.path
}

func (d *Device) Dialect() common.Dialect {
	return common.DialectUnified
}

func (d *Device) Capabilities() common.CapabilitySet {
	return d.caps
}

func (d *Device) HasFeature(token string) bool {
	return d.caps.Has(token)
}

func (d *Device) Leds() []common.Led {
	return d.leds
}

func (d *Device) Name() (string, error) {
	var name string
	err := transport.PropertyStore(d.transport, d.path, DeviceInterface, `Name`, &name)
	return name, err
}

func (d *Device) Type() (string, error) {
	var typ string
	err := transport.PropertyStore(d.transport, d.path, DeviceInterface, `Type`, &typ)
	return typ, err
}

func (d *Device) FirmwareVersion() (string, error) {
	return d.callString(`getFirmwareVersion`)
}

func (d *Device) Serial() (string, error) {
	return d.callString(`getSerial`)
}

func (d *Device) VidPid() (common.USBID, error) {
	var id common.USBID
	err := transport.CallStore(d.transport, d.path, DeviceInterface, `getVidPid`, &id)
	return id, err
}

func (d *Device) KeyboardLayout() (string, error) {
	if !d.HasFeature(common.CapabilityKbdLayout) {
		return ``, common.ErrUnsupported
	}
	return d.callString(`getKeyboardLayout`)
}

func (d *Device) DPI() (common.DPI, error) {
	var dpi common.DPI
	if !d.HasFeature(common.CapabilityDPI) {
		return dpi, common.ErrUnsupported
	}
	err := transport.CallStore(d.transport, d.path, DeviceInterface, `getDPI`, &dpi)
	return dpi, err
}

func (d *Device) SetDPI(dpi common.DPI) error {
	if !d.HasFeature(common.CapabilityDPI) {
		return common.ErrUnsupported
	}
	return callBool(d.transport, d.path, DeviceInterface, `setDPI`, dpi)
}

func (d *Device) MaxDPI() (uint16, error) {
	var max uint16
	if !d.HasFeature(common.CapabilityDPI) {
		return max, common.ErrUnsupported
	}
	err := transport.CallStore(d.transport, d.path, DeviceInterface, `getMaxDPI`, &max)
	return max, err
}

func (d *Device) DPIStages() ([]common.DPI, error) {
	if !d.HasFeature(common.CapabilityDPIStages) {
		return nil, common.ErrUnsupported
	}
	var stages []common.DPI
	err := transport.CallStore(d.transport, d.path, DeviceInterface, `getDPIStages`, &stages)
	return stages, err
}

func (d *Device) SetDPIStages(stages []common.DPI) error {
	if !d.HasFeature(common.CapabilityDPIStages) {
		return common.ErrUnsupported
	}
	return callBool(d.transport, d.path, DeviceInterface, `setDPIStages`, stages)
}

func (d *Device) PollRate() (uint16, error) {
	var rate uint16
	if !d.HasFeature(common.CapabilityPollRate) {
		return rate, common.ErrUnsupported
	}
	err := transport.CallStore(d.transport, d.path, DeviceInterface, `getPollRate`, &rate)
	return rate, err
}

func (d *Device) SetPollRate(rate uint16) error {
	if !d.HasFeature(common.CapabilityPollRate) {
		return common.ErrUnsupported
	}
	return callBool(d.transport, d.path, DeviceInterface, `setPollRate`, rate)
}

func (d *Device) callString(member string) (string, error) {
	var s string
	err := transport.CallStore(d.transport, d.path, DeviceInterface, member, &s)
	return s, err
}

// callBool performs a call whose reply is the daemon's success flag.
func callBool(t transport.Transport, path dbus.ObjectPath, iface, member string, args ...interface{}) error {
	body, err := t.Call(path, iface, member, args...)
	if err != nil {
		return err
	}
	var ok bool
	if err := transport.Store(member, body, &ok); err != nil {
		return err
	}
	if !ok {
		common.Log.Debugf("Daemon rejected %s on %v", member, path)
		return common.ErrRejected
	}
	return nil
}
