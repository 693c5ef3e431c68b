package main

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/z3ntu/libqopenrazer/common"
)

var (
	flagDPI      dpiValue
	flagPollRate uint16

	cmdDevices = &cobra.Command{
		Use:               `devices`,
		Short:             `list devices known to the daemon`,
		PersistentPreRun:  setupDaemon,
		PersistentPostRun: closeManager,
		Run:               listDevices,
	}

	cmdDevice = &cobra.Command{
		Use:               `device`,
		Short:             `device related commands`,
		PersistentPreRun:  setupDaemon,
		PersistentPostRun: closeManager,
		Run:               usage,
	}

	cmdDeviceInfo = &cobra.Command{
		Use:   `info <path|serial>`,
		Short: `show details and capabilities of a device`,
		Args:  cobra.ExactArgs(1),
		Run:   deviceInfo,
	}

	cmdDeviceDPI = &cobra.Command{
		Use:   `dpi <path|serial>`,
		Short: `show or set (--set) the DPI of a device`,
		Args:  cobra.ExactArgs(1),
		Run:   deviceDPI,
	}

	cmdDevicePollRate = &cobra.Command{
		Use:   `poll-rate <path|serial>`,
		Short: `show or set (--set) the poll rate of a device`,
		Args:  cobra.ExactArgs(1),
		Run:   devicePollRate,
	}
)

func init() {
	cmdDeviceDPI.Flags().Var(&flagDPI, `set`, `DPI to set, e.g. 800 or 800x600`)
	cmdDevicePollRate.Flags().Uint16Var(&flagPollRate, `set`, 0, `poll rate to set in Hz`)

	cmdDevice.AddCommand(cmdDeviceInfo)
	cmdDevice.AddCommand(cmdDeviceDPI)
	cmdDevice.AddCommand(cmdDevicePollRate)
}

type deviceSummary struct {
	path   dbus.ObjectPath
	name   string
	typ    string
	serial string
	leds   int
}

// loadSummaries creates one Device per path concurrently, the result keeps
// the daemon's order.
func loadSummaries(paths []dbus.ObjectPath) ([]deviceSummary, error) {
	summaries := make([]deviceSummary, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			dev, err := manager.Device(path)
			if err != nil {
				return err
			}
			s := deviceSummary{path: path, leds: len(dev.Leds())}
			if s.name, err = dev.Name(); err != nil {
				return errors.Wrapf(err, `reading name of %s`, path)
			}
			if s.typ, err = dev.Type(); err != nil {
				return errors.Wrapf(err, `reading type of %s`, path)
			}
			if s.serial, err = dev.Serial(); err != nil {
				return errors.Wrapf(err, `reading serial of %s`, path)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func listDevices(c *cobra.Command, args []string) {
	paths, err := manager.Devices()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not list devices`)
	}
	if len(paths) == 0 {
		logger.Infoln(`No devices found`)
		return
	}
	summaries, err := loadSummaries(paths)
	if err != nil {
		logger.WithError(err).Fatalln(`Could not load devices`)
	}
	fmt.Printf("%-14s %-10s %-5s %-40s %s\n", `SERIAL`, `TYPE`, `LEDS`, `NAME`, `PATH`)
	for _, s := range summaries {
		fmt.Printf("%-14s %-10s %-5d %-40s %s\n", s.serial, s.typ, s.leds, s.name, s.path)
	}
}

// resolveDevice accepts an object path or a serial number.
func resolveDevice(arg string) common.Device {
	if strings.HasPrefix(arg, `/`) {
		dev, err := manager.Device(dbus.ObjectPath(arg))
		if err != nil {
			logger.WithError(err).Fatalln(`Could not open device`)
		}
		return dev
	}

	paths, err := manager.Devices()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not list devices`)
	}
	for _, path := range paths {
		dev, err := manager.Device(path)
		if err != nil {
			logger.WithError(err).WithField(`path`, path).Warnln(`Skipping device`)
			continue
		}
		serial, err := dev.Serial()
		if err != nil {
			logger.WithError(err).WithField(`path`, path).Warnln(`Skipping device`)
			continue
		}
		if serial == arg {
			return dev
		}
	}
	logger.WithField(`serial`, arg).Fatalln(`No such device`)
	return nil
}

func deviceInfo(c *cobra.Command, args []string) {
	dev := resolveDevice(args[0])

	name, err := dev.Name()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not read device name`)
	}
	fmt.Printf("Name:      %s\n", name)
	fmt.Printf("Path:      %s\n", dev.ObjectPath())
	if typ, err := dev.Type(); err == nil {
		fmt.Printf("Type:      %s\n", typ)
	}
	if serial, err := dev.Serial(); err == nil {
		fmt.Printf("Serial:    %s\n", serial)
	}
	if fw, err := dev.FirmwareVersion(); err == nil {
		fmt.Printf("Firmware:  %s\n", fw)
	}
	if id, err := dev.VidPid(); err == nil {
		fmt.Printf("USB ID:    %s\n", id)
	}
	if layout, err := dev.KeyboardLayout(); err == nil {
		fmt.Printf("Layout:    %s\n", layout)
	}
	fmt.Printf("Features:  %s\n", strings.Join(dev.Capabilities().Tokens(), `, `))

	for i, led := range dev.Leds() {
		id, err := led.LedID()
		if err != nil {
			logger.WithError(err).Debugln(`Could not read led id`)
		}
		effect, err := led.CurrentEffect()
		if err != nil {
			logger.WithError(err).Debugln(`Could not read current effect`)
		}
		fmt.Printf("Led %d:     %s, %s, supports %s\n", i, id, effect, strings.Join(led.Capabilities().Tokens(), `, `))
	}
}

func deviceDPI(c *cobra.Command, args []string) {
	dev := resolveDevice(args[0])
	if c.Flags().Changed(`set`) {
		if err := dev.SetDPI(common.DPI(flagDPI)); err != nil {
			logger.WithError(err).Fatalln(`Could not set DPI`)
		}
		return
	}
	dpi, err := dev.DPI()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not read DPI`)
	}
	fmt.Printf("DPI:       %dx%d\n", dpi.X, dpi.Y)
	if max, err := dev.MaxDPI(); err == nil {
		fmt.Printf("Max DPI:   %d\n", max)
	}
	if stages, err := dev.DPIStages(); err == nil {
		for i, s := range stages {
			fmt.Printf("Stage %d:   %dx%d\n", i+1, s.X, s.Y)
		}
	}
}

func devicePollRate(c *cobra.Command, args []string) {
	dev := resolveDevice(args[0])
	if c.Flags().Changed(`set`) {
		if err := dev.SetPollRate(flagPollRate); err != nil {
			logger.WithError(err).Fatalln(`Could not set poll rate`)
		}
		return
	}
	rate, err := dev.PollRate()
	if err != nil {
		logger.WithError(err).Fatalln(`Could not read poll rate`)
	}
	fmt.Printf("Poll rate: %d Hz\n", rate)
}
