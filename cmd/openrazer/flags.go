package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/z3ntu/libqopenrazer/common"
)

var (
	_ pflag.Value = (*colorValue)(nil)
	_ pflag.Value = (*dpiValue)(nil)
)

// colorValue is a `#rrggbb` flag.
type colorValue common.RGB

func (v *colorValue) String() string {
	return common.RGB(*v).String()
}

func (v *colorValue) Set(s string) error {
	c, err := common.ParseRGB(s)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}

func (v *colorValue) Type() string {
	return `color`
}

// dpiValue accepts `800` for both axes or `800x600`.
type dpiValue common.DPI

func (v *dpiValue) String() string {
	return strconv.Itoa(int(v.X)) + `x` + strconv.Itoa(int(v.Y))
}

func (v *dpiValue) Set(s string) error {
	parts := strings.SplitN(s, `x`, 2)
	x, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return errors.Wrapf(err, `invalid dpi %q`, s)
	}
	y := x
	if len(parts) == 2 {
		if y, err = strconv.ParseUint(parts[1], 10, 16); err != nil {
			return errors.Wrapf(err, `invalid dpi %q`, s)
		}
	}
	v.X, v.Y = uint16(x), uint16(y)
	return nil
}

func (v *dpiValue) Type() string {
	return `dpi`
}
