package common

import "github.com/godbus/dbus/v5"

// Led represents one independently controllable lighting zone on a device.
//
// A Led is bound to one Device and computes its capabilities once, when it is
// constructed. Instances are not safe for concurrent use.
type Led interface {
	// ObjectPath returns the remote object the zone is bound to
	ObjectPath() dbus.ObjectPath
	// Dialect returns the daemon interface this zone talks to
	Dialect() Dialect
	// LedID returns the zone identifier
	LedID() (LedID, error)
	// Capabilities returns the zone's immutable capability set
	Capabilities() CapabilitySet

	// HasFx reports whether the zone supports the effect or feature named by
	// token (e.g. `breathing_dual`, `brightness`). Unknown tokens report
	// false.
	HasFx(token string) bool
	// HasEffect reports whether the zone supports the effect
	HasEffect(effect Effect) bool

	// CurrentEffect returns the active effect
	CurrentEffect() (Effect, error)
	// CurrentColors returns the colors of the active effect. Unused slots
	// are black.
	CurrentColors() ([3]RGB, error)
	// WaveDirection returns the direction of the wave effect
	WaveDirection() (WaveDirection, error)
	// Brightness returns the zone brightness, 0-255
	Brightness() (uint8, error)

	SetOff() error
	SetOn() error
	SetStatic(color RGB) error
	SetBreathing(color RGB) error
	SetBreathingDual(color, color2 RGB) error
	SetBreathingRandom() error
	SetBlinking(color RGB) error
	SetSpectrum() error
	SetWave(direction WaveDirection) error
	SetReactive(color RGB, speed ReactiveSpeed) error
	// SetBrightness sets the zone brightness, 0-255
	SetBrightness(brightness uint8) error
}

// Device represents a peripheral known to the daemon.
//
// The daemon's view of the physical device is not tracked: after the device
// is unplugged calls fail with a TransportError and the caller should drop
// the Device.
type Device interface {
	// ObjectPath returns the remote object the device is bound to
	ObjectPath() dbus.ObjectPath
	// Dialect returns the daemon interface this device talks to
	Dialect() Dialect
	// Capabilities returns the device-level capability set, separate from
	// the capabilities of any zone
	Capabilities() CapabilitySet
	// HasFeature reports whether the device supports the feature token, one
	// of the Capability* constants
	HasFeature(token string) bool
	// Leds returns the lighting zones of the device
	Leds() []Led

	Name() (string, error)
	Type() (string, error)
	FirmwareVersion() (string, error)
	Serial() (string, error)
	VidPid() (USBID, error)

	// KeyboardLayout requires CapabilityKbdLayout
	KeyboardLayout() (string, error)
	// DPI requires CapabilityDPI
	DPI() (DPI, error)
	SetDPI(dpi DPI) error
	MaxDPI() (uint16, error)
	// DPIStages requires CapabilityDPIStages
	DPIStages() ([]DPI, error)
	SetDPIStages(stages []DPI) error
	// PollRate requires CapabilityPollRate
	PollRate() (uint16, error)
	SetPollRate(rate uint16) error
}
