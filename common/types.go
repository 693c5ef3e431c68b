package common

import "fmt"

// Dialect identifies which daemon interface an object talks to. Exactly two
// dialects exist and the choice is fixed when the Manager is created.
type Dialect uint8

const (
	// DialectLegacy is the per-feature `razer.device.*` interface of
	// openrazer-daemon.
	DialectLegacy Dialect = iota + 1
	// DialectUnified is the property based `io.github.openrazer1.*`
	// interface of razer_test.
	DialectUnified
)

func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return `openrazer`
	case DialectUnified:
		return `razer_test`
	default:
		return `unknown`
	}
}

// WaveDirection is the direction of the wave effect.
type WaveDirection uint8

const (
	WaveLeftToRight WaveDirection = 1
	WaveRightToLeft WaveDirection = 2
)

func (w WaveDirection) String() string {
	switch w {
	case WaveLeftToRight:
		return `left to right`
	case WaveRightToLeft:
		return `right to left`
	default:
		return fmt.Sprintf(`WaveDirection(%d)`, uint8(w))
	}
}

// ReactiveSpeed controls the timing of the reactive effect. It is passed to
// the daemon unchanged.
type ReactiveSpeed uint8

const (
	ReactiveShort    ReactiveSpeed = 1
	ReactiveMedium   ReactiveSpeed = 2
	ReactiveLong     ReactiveSpeed = 3
	ReactiveVeryLong ReactiveSpeed = 4
)

// DPI is a (x, y) sensitivity pair.
type DPI struct {
	X uint16
	Y uint16
}

// USBID is the USB vendor and product id of a device.
type USBID struct {
	Vendor  uint16
	Product uint16
}

func (u USBID) String() string {
	return fmt.Sprintf(`%04x:%04x`, u.Vendor, u.Product)
}

// LedID identifies a lighting zone on a device. Values match the LED ids of
// the unified daemon.
type LedID uint8

const (
	LedUnspecified    LedID = 0x00
	LedScrollWheel    LedID = 0x01
	LedBattery        LedID = 0x03
	LedLogo           LedID = 0x04
	LedBacklight      LedID = 0x05
	LedMacroRecording LedID = 0x07
	LedGameMode       LedID = 0x08
	LedKeymapRed      LedID = 0x0C
	LedKeymapGreen    LedID = 0x0D
	LedKeymapBlue     LedID = 0x0E
	LedRightSide      LedID = 0x10
	LedLeftSide       LedID = 0x11
)

var ledNames = map[LedID]string{
	LedUnspecified:    `Unspecified`,
	LedScrollWheel:    `Scroll Wheel`,
	LedBattery:        `Battery`,
	LedLogo:           `Logo`,
	LedBacklight:      `Backlight`,
	LedMacroRecording: `Macro Recording`,
	LedGameMode:       `Game Mode`,
	LedKeymapRed:      `Keymap Red`,
	LedKeymapGreen:    `Keymap Green`,
	LedKeymapBlue:     `Keymap Blue`,
	LedRightSide:      `Right Side`,
	LedLeftSide:       `Left Side`,
}

func (l LedID) String() string {
	if name, ok := ledNames[l]; ok {
		return name
	}
	return fmt.Sprintf(`LedID(%#02x)`, uint8(l))
}

// DaemonStatus is a best-effort classification of the daemon's service unit.
type DaemonStatus uint8

const (
	DaemonStatusUnknown DaemonStatus = iota
	DaemonStatusEnabled
	DaemonStatusDisabled
	DaemonStatusNotInstalled
	DaemonStatusNoSystemd
)

func (s DaemonStatus) String() string {
	switch s {
	case DaemonStatusEnabled:
		return `enabled`
	case DaemonStatusDisabled:
		return `disabled`
	case DaemonStatusNotInstalled:
		return `not installed`
	case DaemonStatusNoSystemd:
		return `no systemd`
	default:
		return `unknown`
	}
}
