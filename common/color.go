package common

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// RGB is a color as sent to and received from the daemon, one byte per
// channel. Field order matches the unified daemon's `(yyy)` struct.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Black is the zero color, used to pad unused color slots.
var Black = RGB{}

func (c RGB) String() string {
	return fmt.Sprintf(`#%02x%02x%02x`, c.R, c.G, c.B)
}

// ParseRGB parses `#rrggbb` or `rrggbb`.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return c, errors.Errorf(`invalid color %q, expected rrggbb`, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c, errors.Wrapf(err, `invalid color %q`, s)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}
