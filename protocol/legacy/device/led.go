package device

import (
	"math"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/transport"
)

// effectStates maps the textual effect names reported by get<Location>Effect.
var effectStates = map[string]common.Effect{
	`none`:         common.EffectOff,
	`static`:       common.EffectStatic,
	`blinking`:     common.EffectBlinking,
	`pulsate`:      common.EffectBreathing,
	`breathSingle`: common.EffectBreathing,
	`breathDual`:   common.EffectBreathingDual,
	`breathRandom`: common.EffectBreathingRandom,
	`spectrum`:     common.EffectSpectrum,
	`wave`:         common.EffectWave,
	`reactive`:     common.EffectReactive,
}

// effectColorsLen is the size of the get<Location>EffectColors payload, three
// RGB triples.
const effectColorsLen = 9

// Led is a lighting location of an openrazer-daemon device. Method names are
// built as set<Location><Effect>, except for the Chroma location which has no
// location part.
type Led struct {
	device   *Device
	ledID    common.LedID
	location string
	method   string
	iface    string
	caps     common.CapabilitySet
}

// NewLed builds the zone for location on device and detects its supported
// effects.
func NewLed(device *Device, location string, ledID common.LedID) (*Led, error) {
	l := &Led{
		device:   device,
		ledID:    ledID,
		location: location,
	}
	if location == ChromaLocation {
		l.iface = ChromaInterface
	} else {
		l.method = location
		l.iface = LightingPrefix + strings.ToLower(location)
	}
	if err := l.setupCapabilities(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Led) setupCapabilities() error {
	var (
		tokens []string
		found  bool
	)
	// Everything below is answered from the device's introspection data.
	if err := l.device.probe.Load(); err != nil {
		return err
	}
	has := l.has

	for _, e := range common.Effects() {
		fragment := e.LegacyFragment()
		if fragment == `` {
			continue
		}
		if has(l.iface, `set`+l.method+fragment) {
			tokens = append(tokens, e.Token())
			found = true
		}
	}

	if !found && has(l.iface, `set`+l.method+`Active`) {
		tokens = append(tokens, common.EffectOff.Token(), common.EffectOn.Token())
	}

	// No-color static/breathing variants
	if has(Bw2013Interface, `setStatic`) {
		tokens = append(tokens, common.EffectStatic.Token())
	}
	if has(Bw2013Interface, `setPulsate`) {
		tokens = append(tokens, common.EffectBreathing.Token())
	}

	if l.location == ChromaLocation {
		if has(BrightnessInterface, `setBrightness`) {
			tokens = append(tokens, common.CapabilityBrightness)
		}
	} else if has(l.iface, `set`+l.method+`Brightness`) {
		tokens = append(tokens, common.CapabilityBrightness)
	}

	l.caps = common.NewCapabilitySet(tokens...)
	common.Log.Debugf("Led %s on %v supports %v", l.location, l.device.path, l.caps.Tokens())
	return nil
}

func (l *Led) ObjectPath() dbus.ObjectPath {
	return l.device.path
}

func (l *Led) Dialect() common.Dialect {
	return common.DialectLegacy
}

// Location returns the lighting location name, e.g. `Logo`.
func (l *Led) Location() string {
	return l.location
}

func (l *Led) LedID() (common.LedID, error) {
	return l.ledID, nil
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
	switch {
	case l.has(l.iface, `get`+l.method+`Effect`):
		member := `get` + l.method + `Effect`
		var state string
		if err := transport.CallStore(l.device.transport, l.device.path, l.iface, member, &state); err != nil {
			return common.EffectOff, err
		}
		effect, ok := effectStates[state]
		if !ok {
			return common.EffectOff, common.NewDecodeError(member, `unknown effect %q`, state)
		}
		return effect, nil
	case l.has(l.iface, `get`+l.method+`Active`):
		var active bool
		if err := transport.CallStore(l.device.transport, l.device.path, l.iface, `get`+l.method+`Active`, &active); err != nil {
			return common.EffectOff, err
		}
		if active {
			return common.EffectOn, nil
		}
		return common.EffectOff, nil
	default:
		common.Log.Warnf("Led %s on %v reports no effect state, returning off", l.location, l.device.path)
		return common.EffectOff, nil
	}
}

func (l *Led) CurrentColors() ([3]common.RGB, error) {
	var colors [3]common.RGB
	member := `get` + l.method + `EffectColors`
	// Devices with only get/set Active have no effect colors
	if !l.has(l.iface, member) {
		common.Log.Debugf("Led %s on %v has no effect colors, returning black", l.location, l.device.path)
		return colors, nil
	}
	var data []byte
	if err := transport.CallStore(l.device.transport, l.device.path, l.iface, member, &data); err != nil {
		return colors, err
	}
	if len(data) < effectColorsLen {
		return colors, common.NewDecodeError(member, `expected %d bytes, got %d`, effectColorsLen, len(data))
	}
	for i := range colors {
		colors[i] = common.RGB{R: data[i*3], G: data[i*3+1], B: data[i*3+2]}
	}
	return colors, nil
}

func (l *Led) WaveDirection() (common.WaveDirection, error) {
	member := `get` + l.method + `WaveDir`
	var dir int32
	if err := transport.CallStore(l.device.transport, l.device.path, l.iface, member, &dir); err != nil {
		return 0, err
	}
	switch dir {
	case 1:
		return common.WaveLeftToRight, nil
	case 2:
		return common.WaveRightToLeft, nil
	default:
		return 0, common.NewDecodeError(member, `failed to convert %d to a wave direction`, dir)
	}
}

func (l *Led) SetOff() error {
	if l.has(l.iface, `set`+l.method+`Active`) {
		return l.call(l.iface, `set`+l.method+`Active`, false)
	}
	return l.call(l.iface, `set`+l.method+`None`)
}

func (l *Led) SetOn() error {
	return l.call(l.iface, `set`+l.method+`Active`, true)
}

func (l *Led) SetStatic(color common.RGB) error {
	if l.has(Bw2013Interface, `setStatic`) {
		return l.call(Bw2013Interface, `setStatic`)
	}
	return l.call(l.iface, `set`+l.method+`Static`, flatten(color)...)
}

func (l *Led) SetBreathing(color common.RGB) error {
	if l.has(Bw2013Interface, `setPulsate`) {
		return l.call(Bw2013Interface, `setPulsate`)
	}
	return l.call(l.iface, `set`+l.method+`BreathSingle`, flatten(color)...)
}

func (l *Led) SetBreathingDual(color, color2 common.RGB) error {
	return l.call(l.iface, `set`+l.method+`BreathDual`, append(flatten(color), flatten(color2)...)...)
}

func (l *Led) SetBreathingRandom() error {
	return l.call(l.iface, `set`+l.method+`BreathRandom`)
}

func (l *Led) SetBlinking(color common.RGB) error {
	return l.call(l.iface, `set`+l.method+`Blinking`, flatten(color)...)
}

func (l *Led) SetSpectrum() error {
	return l.call(l.iface, `set`+l.method+`Spectrum`)
}

func (l *Led) SetWave(direction common.WaveDirection) error {
	return l.call(l.iface, `set`+l.method+`Wave`, int32(direction))
}

func (l *Led) SetReactive(color common.RGB, speed common.ReactiveSpeed) error {
	return l.call(l.iface, `set`+l.method+`Reactive`, append(flatten(color), uint8(speed))...)
}

// SetBrightness scales brightness to the daemon's 0-100 range.
func (l *Led) SetBrightness(brightness uint8) error {
	value := ToPercent(brightness)
	if l.location == ChromaLocation {
		return l.call(BrightnessInterface, `setBrightness`, value)
	}
	return l.call(l.iface, `set`+l.method+`Brightness`, value)
}

// Brightness scales the daemon's 0-100 brightness to 0-255.
func (l *Led) Brightness() (uint8, error) {
	iface, member := l.iface, `get`+l.method+`Brightness`
	if l.location == ChromaLocation {
		iface, member = BrightnessInterface, `getBrightness`
	}
	var value float64
	if err := transport.CallStore(l.device.transport, l.device.path, iface, member, &value); err != nil {
		return 0, err
	}
	if value < 0 || value > 100 || math.IsNaN(value) {
		return 0, common.NewDecodeError(member, `brightness %v out of range`, value)
	}
	return FromPercent(value), nil
}

func (l *Led) has(iface, member string) bool {
	return l.device.probe.Supports(iface, member)
}

func (l *Led) call(iface, member string, args ...interface{}) error {
	_, err := l.device.transport.Call(l.device.path, iface, member, args...)
	return err
}

// ToPercent converts a 0-255 brightness to the daemon's 0-100 scale.
func ToPercent(brightness uint8) float64 {
	return math.Round(float64(brightness) / 255 * 100)
}

// FromPercent converts a 0-100 brightness to 0-255. Values outside 0-100 are
// clamped.
func FromPercent(value float64) uint8 {
	v := math.Round(value / 100 * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func flatten(c common.RGB) []interface{} {
	return []interface{}{c.R, c.G, c.B}
}
