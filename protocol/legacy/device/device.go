// Package device implements devices and lighting zones of openrazer-daemon,
// which exposes one D-Bus interface per feature and lighting location.
//
// This package is not designed to be accessed by end users, all interaction
// should occur via the Manager in the razer package.
package device

import (
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/protocol/probe"
	"github.com/z3ntu/libqopenrazer/transport"
)

const (
	// PathPrefix is prepended to a serial number to form a device path
	PathPrefix = `/org/razer/device/`

	MiscInterface       = `razer.device.misc`
	DPIInterface        = `razer.device.dpi`
	LightingPrefix      = `razer.device.lighting.`
	ChromaInterface     = `razer.device.lighting.chroma`
	BrightnessInterface = `razer.device.lighting.brightness`
	Bw2013Interface     = `razer.device.lighting.bw2013`

	// ChromaLocation is the primary lighting location. Its methods carry no
	// location prefix and its brightness lives on BrightnessInterface.
	ChromaLocation = `Chroma`
)

type lightingLocation struct {
	name string
	id   common.LedID
}

var lightingLocations = []lightingLocation{
	{name: ChromaLocation, id: common.LedUnspecified},
	{name: `Logo`, id: common.LedLogo},
	{name: `Scroll`, id: common.LedScrollWheel},
	{name: `Backlight`, id: common.LedBacklight},
	{name: `Left`, id: common.LedLeftSide},
	{name: `Right`, id: common.LedRightSide},
}

// PathForSerial returns the object path of the device with serial.
func PathForSerial(serial string) dbus.ObjectPath {
	return dbus.ObjectPath(PathPrefix + serial)
}

// Device is an openrazer-daemon device.
type Device struct {
	path      dbus.ObjectPath
	transport transport.Transport
	probe     *probe.Probe
	caps      common.CapabilitySet
	leds      []common.Led
}

// New introspects the device at path and builds its zones. An introspection
// failure is returned rather than treated as "no capabilities".
func New(t transport.Transport, path dbus.ObjectPath) (*Device, error) {
	d := &Device{
		path:      path,
		transport: t,
		probe:     probe.New(t, path),
	}
	if err := d.probe.Load(); err != nil {
		return nil, err
	}
	if err := d.setupCapabilities(); err != nil {
		return nil, err
	}
	if err := d.setupLeds(); err != nil {
		return nil, err
	}
	common.Log.Debugf("New device %v: features %v, %d leds", path, d.caps.Tokens(), len(d.leds))
	return d, nil
}

func (d *Device) setupCapabilities() error {
	features := []struct {
		token  string
		iface  string
		member string
	}{
		{common.CapabilityDPI, DPIInterface, `setDPI`},
		{common.CapabilityDPIStages, DPIInterface, `setDPIStages`},
		{common.CapabilityPollRate, MiscInterface, `setPollRate`},
		{common.CapabilityKbdLayout, MiscInterface, `getKeyboardLayout`},
	}
	var tokens []string
	for _, f := range features {
		ok, err := d.probe.Has(f.iface, f.member)
		if err != nil {
			return err
		}
		if ok {
			tokens = append(tokens, f.token)
		}
	}
	d.caps = common.NewCapabilitySet(tokens...)
	return nil
}

func (d *Device) setupLeds() error {
	for _, loc := range lightingLocations {
		ok, err := d.probe.Has(LightingPrefix+strings.ToLower(loc.name), ``)
		if err != nil {
			return err
		}
		// Monochrome devices only have the bw2013 interface but still get a
		// primary zone.
		if !ok && loc.name == ChromaLocation {
			if ok, err = d.probe.Has(Bw2013Interface, ``); err != nil {
				return err
			}
		}
		if !ok {
			continue
		}
		led, err := NewLed(d, loc.name, loc.id)
		if err != nil {
			return err
		}
		d.leds = append(d.leds, led)
	}
	return nil
}

func (d *Device) ObjectPath() dbus.ObjectPath {
	return d.path
}

func (d *Device) Dialect() common.Dialect {
	return common.DialectLegacy
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
	return d.callString(MiscInterface, `getDeviceName`)
}

func (d *Device) Type() (string, error) {
	return d.callString(MiscInterface, `getDeviceType`)
}

func (d *Device) FirmwareVersion() (string, error) {
	return d.callString(MiscInterface, `getFirmware`)
}

func (d *Device) Serial() (string, error) {
	return d.callString(MiscInterface, `getSerial`)
}

func (d *Device) VidPid() (common.USBID, error) {
	var ids []int32
	if err := transport.CallStore(d.transport, d.path, MiscInterface, `getVidPid`, &ids); err != nil {
		return common.USBID{}, err
	}
	if len(ids) != 2 {
		return common.USBID{}, common.NewDecodeError(`getVidPid`, `expected 2 values, got %d`, len(ids))
	}
	vid, err := toUint16(`getVidPid`, ids[0])
	if err != nil {
		return common.USBID{}, err
	}
	pid, err := toUint16(`getVidPid`, ids[1])
	if err != nil {
		return common.USBID{}, err
	}
	return common.USBID{Vendor: vid, Product: pid}, nil
}

func (d *Device) KeyboardLayout() (string, error) {
	if !d.HasFeature(common.CapabilityKbdLayout) {
		return ``, common.ErrUnsupported
	}
	return d.callString(MiscInterface, `getKeyboardLayout`)
}

func (d *Device) DPI() (common.DPI, error) {
	if !d.HasFeature(common.CapabilityDPI) {
		return common.DPI{}, common.ErrUnsupported
	}
	var values []int32
	if err := transport.CallStore(d.transport, d.path, DPIInterface, `getDPI`, &values); err != nil {
		return common.DPI{}, err
	}
	// Single axis devices report one value
	switch len(values) {
	case 1:
		values = append(values, values[0])
	case 2:
	default:
		return common.DPI{}, common.NewDecodeError(`getDPI`, `expected 1 or 2 values, got %d`, len(values))
	}
	x, err := toUint16(`getDPI`, values[0])
	if err != nil {
		return common.DPI{}, err
	}
	y, err := toUint16(`getDPI`, values[1])
	if err != nil {
		return common.DPI{}, err
	}
	return common.DPI{X: x, Y: y}, nil
}

func (d *Device) SetDPI(dpi common.DPI) error {
	if !d.HasFeature(common.CapabilityDPI) {
		return common.ErrUnsupported
	}
	_, err := d.transport.Call(d.path, DPIInterface, `setDPI`, dpi.X, dpi.Y)
	return err
}

func (d *Device) MaxDPI() (uint16, error) {
	if !d.HasFeature(common.CapabilityDPI) {
		return 0, common.ErrUnsupported
	}
	var max int32
	if err := transport.CallStore(d.transport, d.path, DPIInterface, `maxDPI`, &max); err != nil {
		return 0, err
	}
	return toUint16(`maxDPI`, max)
}

func (d *Device) DPIStages() ([]common.DPI, error) {
	if !d.HasFeature(common.CapabilityDPIStages) {
		return nil, common.ErrUnsupported
	}
	_, stages, err := d.dpiStages()
	return stages, err
}

func (d *Device) dpiStages() (uint8, []common.DPI, error) {
	var (
		active uint8
		stages []common.DPI
	)
	if err := transport.CallStore(d.transport, d.path, DPIInterface, `getDPIStages`, &active, &stages); err != nil {
		return 0, nil, err
	}
	return active, stages, nil
}

// SetDPIStages replaces the stage list. The active stage (1-based) reported
// by the device is kept, clamped to the new list; stage 1 is used when the
// device reports none.
func (d *Device) SetDPIStages(stages []common.DPI) error {
	if !d.HasFeature(common.CapabilityDPIStages) {
		return common.ErrUnsupported
	}
	active, _, err := d.dpiStages()
	if err != nil {
		return err
	}
	switch {
	case active < 1:
		active = 1
	case int(active) > len(stages) && len(stages) > 0:
		active = uint8(len(stages))
	}
	_, err = d.transport.Call(d.path, DPIInterface, `setDPIStages`, active, stages)
	return err
}

func (d *Device) PollRate() (uint16, error) {
	if !d.HasFeature(common.CapabilityPollRate) {
		return 0, common.ErrUnsupported
	}
	var rate int32
	if err := transport.CallStore(d.transport, d.path, MiscInterface, `getPollRate`, &rate); err != nil {
		return 0, err
	}
	return toUint16(`getPollRate`, rate)
}

func (d *Device) SetPollRate(rate uint16) error {
	if !d.HasFeature(common.CapabilityPollRate) {
		return common.ErrUnsupported
	}
	_, err := d.transport.Call(d.path, MiscInterface, `setPollRate`, rate)
	return err
}

func (d *Device) callString(iface, member string) (string, error) {
	var s string
	if err := transport.CallStore(d.transport, d.path, iface, member, &s); err != nil {
		return ``, err
	}
	return s, nil
}

func toUint16(member string, v int32) (uint16, error) {
	if v < 0 || v > 0xffff {
		return 0, common.NewDecodeError(member, `value %d out of range`, v)
	}
	return uint16(v), nil
}
