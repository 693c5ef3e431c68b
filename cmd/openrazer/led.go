package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/z3ntu/libqopenrazer/common"
)

var (
	flagZone      int
	flagColor     = colorValue{G: 0xff}
	flagColor2    = colorValue{B: 0xff}
	flagDirection uint8
	flagSpeed     uint8

	cmdLed = &cobra.Command{
		Use:               `led`,
		Short:             `lighting related commands`,
		PersistentPreRun:  setupDaemon,
		PersistentPostRun: closeManager,
		Run:               usage,
	}

	cmdLedEffect = &cobra.Command{
		Use:   `effect <path|serial> <effect>`,
		Short: `set an effect, one of: [off,on,static,breathing,breathing_dual,breathing_random,blinking,spectrum,wave,reactive]`,
		Args:  cobra.ExactArgs(2),
		Run:   ledEffect,
	}

	cmdLedBrightness = &cobra.Command{
		Use:   `brightness <path|serial> [0-255]`,
		Short: `show or set the brightness`,
		Args:  cobra.RangeArgs(1, 2),
		Run:   ledBrightness,
	}

	cmdLedColors = &cobra.Command{
		Use:   `colors <path|serial>`,
		Short: `show the current effect and colors`,
		Args:  cobra.ExactArgs(1),
		Run:   ledColors,
	}
)

func init() {
	cmdLed.PersistentFlags().IntVarP(&flagZone, `zone`, `z`, -1, `index of the led to use, all supporting leds when negative`)

	cmdLedEffect.Flags().VarP(&flagColor, `color`, `c`, `primary effect color`)
	cmdLedEffect.Flags().Var(&flagColor2, `color2`, `secondary color for breathing_dual`)
	cmdLedEffect.Flags().Uint8Var(&flagDirection, `direction`, uint8(common.WaveLeftToRight), `wave direction, 1 left to right, 2 right to left`)
	cmdLedEffect.Flags().Uint8Var(&flagSpeed, `speed`, uint8(common.ReactiveMedium), `reactive speed, 1-4`)

	cmdLed.AddCommand(cmdLedEffect)
	cmdLed.AddCommand(cmdLedBrightness)
	cmdLed.AddCommand(cmdLedColors)
}

// selectLeds returns the --zone led, or every led when no zone was given.
func selectLeds(dev common.Device) []common.Led {
	leds := dev.Leds()
	if flagZone < 0 {
		return leds
	}
	if flagZone >= len(leds) {
		logger.WithField(`zone`, flagZone).Fatalf("Device has %d leds", len(leds))
	}
	return leds[flagZone : flagZone+1]
}

func applyEffect(led common.Led, effect common.Effect) error {
	color, color2 := common.RGB(flagColor), common.RGB(flagColor2)
	switch effect {
	case common.EffectOff:
		return led.SetOff()
	case common.EffectOn:
		return led.SetOn()
	case common.EffectStatic:
		return led.SetStatic(color)
	case common.EffectBreathing:
		return led.SetBreathing(color)
	case common.EffectBreathingDual:
		return led.SetBreathingDual(color, color2)
	case common.EffectBreathingRandom:
		return led.SetBreathingRandom()
	case common.EffectBlinking:
		return led.SetBlinking(color)
	case common.EffectSpectrum:
		return led.SetSpectrum()
	case common.EffectWave:
		return led.SetWave(common.WaveDirection(flagDirection))
	case common.EffectReactive:
		return led.SetReactive(color, common.ReactiveSpeed(flagSpeed))
	default:
		return common.ErrUnsupported
	}
}

func ledEffect(c *cobra.Command, args []string) {
	effect, ok := common.EffectFromToken(args[1])
	if !ok {
		logger.WithField(`effect`, args[1]).Fatalln(`Unknown effect`)
	}
	applied := 0
	for i, led := range selectLeds(resolveDevice(args[0])) {
		if !led.HasEffect(effect) {
			logger.WithField(`zone`, i).Debugf("Led does not support %s", effect)
			continue
		}
		if err := applyEffect(led, effect); err != nil {
			logger.WithError(err).WithField(`zone`, i).Errorln(`Could not set effect`)
			continue
		}
		applied++
	}
	if applied == 0 {
		logger.WithField(`effect`, effect.Token()).Fatalln(`No led supports the effect`)
	}
}

func ledBrightness(c *cobra.Command, args []string) {
	var (
		set   bool
		value uint64
		err   error
	)
	if len(args) == 2 {
		if value, err = strconv.ParseUint(args[1], 10, 8); err != nil {
			logger.WithError(err).Fatalln(`Invalid brightness`)
		}
		set = true
	}
	for i, led := range selectLeds(resolveDevice(args[0])) {
		if !led.HasFx(common.CapabilityBrightness) {
			continue
		}
		if set {
			if err := led.SetBrightness(uint8(value)); err != nil {
				logger.WithError(err).WithField(`zone`, i).Errorln(`Could not set brightness`)
			}
			continue
		}
		b, err := led.Brightness()
		if err != nil {
			logger.WithError(err).WithField(`zone`, i).Errorln(`Could not read brightness`)
			continue
		}
		fmt.Printf("Led %d: %d\n", i, b)
	}
}

func ledColors(c *cobra.Command, args []string) {
	for i, led := range selectLeds(resolveDevice(args[0])) {
		effect, err := led.CurrentEffect()
		if err != nil {
			logger.WithError(err).WithField(`zone`, i).Errorln(`Could not read effect`)
			continue
		}
		colors, err := led.CurrentColors()
		if err != nil {
			logger.WithError(err).WithField(`zone`, i).Errorln(`Could not read colors`)
			continue
		}
		fmt.Printf("Led %d: %s %s %s %s\n", i, effect, colors[0], colors[1], colors[2])
		if effect == common.EffectWave {
			if dir, err := led.WaveDirection(); err == nil {
				fmt.Printf("Led %d: wave %s\n", i, dir)
			}
		}
	}
}
