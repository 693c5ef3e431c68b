package device

import (
	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/transport"
)

// Led is a razer_test lighting zone. Supported effects are the device's
// SupportedFx property.
type Led struct {
	device *Device
	path   dbus.ObjectPath
	caps   common.CapabilitySet
}

// NewLed binds the zone at path to device.
func NewLed(device *Device, path dbus.ObjectPath) *Led {
	return &Led{
		device: device,
		path:   path,
		caps:   device.fx,
	}
}

func (l *Led) ObjectPath() dbus.ObjectPath {
	return l.path
}

func (l *Led) Dialect() common.Dialect {
	return common.DialectUnified
}

func (l *Led) LedID() (common.LedID, error) {
	var id uint8
	err := transport.PropertyStore(l.device.transport, l.path, LedInterface, `LedId`, &id)
	return common.LedID(id), err
}

func (l *Led) Capabilities() common.CapabilitySet {
	return l.caps
}

func (l *Led) HasFx(token string) bool {
	return l.caps.Has(token)
}

func (l *Led) HasEffect(effect common.Effect) bool {
	return l.caps.HasEffect(effect)
}

func (l *Led) CurrentEffect() (common.Effect, error) {
	var value uint8
	if err := transport.PropertyStore(l.device.transport, l.path, LedInterface, `CurrentEffect`, &value); err != nil {
		return common.EffectOff, err
	}
	effect := common.Effect(value)
	if !effect.Valid() {
		return common.EffectOff, common.NewDecodeError(`CurrentEffect`, `unknown effect %d`, value)
	}
	return effect, nil
}

// CurrentColors pads a shorter color list with black.
func (l *Led) CurrentColors() ([3]common.RGB, error) {
	var (
		colors [3]common.RGB
		values []common.RGB
	)
	if err := transport.PropertyStore(l.device.transport, l.path, LedInterface, `CurrentColors`, &values); err != nil {
		return colors, err
	}
	if len(values) > len(colors) {
		return colors, common.NewDecodeError(`CurrentColors`, `expected at most %d colors, got %d`, len(colors), len(values))
	}
	copy(colors[:], values)
	return colors, nil
}

// WaveDirection is not provided by razer_test.
func (l *Led) WaveDirection() (common.WaveDirection, error) {
	return 0, common.ErrUnsupported
}

func (l *Led) SetOff() error {
	return l.call(`setOff`)
}

func (l *Led) SetOn() error {
	return l.call(`setOn`)
}

func (l *Led) SetStatic(color common.RGB) error {
	return l.call(`setStatic`, color)
}

func (l *Led) SetBreathing(color common.RGB) error {
	return l.call(`setBreathing`, color)
}

func (l *Led) SetBreathingDual(color, color2 common.RGB) error {
	return l.call(`setBreathingDual`, color, color2)
}

func (l *Led) SetBreathingRandom() error {
	return l.call(`setBreathingRandom`)
}

func (l *Led) SetBlinking(color common.RGB) error {
	return l.call(`setBlinking`, color)
}

func (l *Led) SetSpectrum() error {
	return l.call(`setSpectrum`)
}

func (l *Led) SetWave(direction common.WaveDirection) error {
	return l.call(`setWave`, uint8(direction))
}

// SetReactive sends the speed before the color, as razer_test expects.
func (l *Led) SetReactive(color common.RGB, speed common.ReactiveSpeed) error {
	return l.call(`setReactive`, uint8(speed), color)
}

func (l *Led) SetBrightness(brightness uint8) error {
	return l.call(`setBrightness`, brightness)
}

func (l *Led) Brightness() (uint8, error) {
	var value uint8
	err := transport.CallStore(l.device.transport, l.path, LedInterface, `getBrightness`, &value)
	return value, err
}

func (l *Led) call(member string, args ...interface{}) error {
	return callBool(l.device.transport, l.path, LedInterface, member, args...)
}
