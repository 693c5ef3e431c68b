package protocol_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/mocks"
	. "github.com/z3ntu/libqopenrazer/protocol"
	"github.com/z3ntu/libqopenrazer/transport"
)

var noArgs []interface{}

// emit invokes the handler passed to Subscribe, as the bus would.
func emit(args mock.Arguments) {
	args.Get(3).(transport.SignalHandler)(nil)
}

var _ = Describe("Legacy", func() {
	var (
		t *mocks.Transport
		p *Legacy
	)

	BeforeEach(func() {
		t = new(mocks.Transport)
		p = &Legacy{Transport: t}
	})

	It("should implement Protocol", func() {
		var proto Protocol = p
		Expect(proto.Dialect()).To(Equal(common.DialectLegacy))
		Expect(proto.ServiceUnit()).To(Equal(`openrazer-daemon.service`))
		Expect(proto.DaemonBinary()).To(Equal(`/usr/bin/openrazer-daemon`))
	})

	It("should read the daemon version", func() {
		t.On(`Call`, LegacyDaemonPath, LegacyDaemonInterface, `version`, noArgs).Return([]interface{}{`2.6.0`}, nil)
		Expect(p.Version()).To(Equal(`2.6.0`))
	})

	It("should map serials to device paths", func() {
		t.On(`Call`, LegacyDaemonPath, LegacyDevicesInterface, `getDevices`, noArgs).
			Return([]interface{}{[]string{`XX0000000001`, `PM1234567890`}}, nil)
		Expect(p.Devices()).To(Equal([]dbus.ObjectPath{`/org/razer/device/XX0000000001`, `/org/razer/device/PM1234567890`}))
	})

	It("should return an empty list without devices", func() {
		t.On(`Call`, LegacyDaemonPath, LegacyDevicesInterface, `getDevices`, noArgs).Return([]interface{}{[]string{}}, nil)
		paths, err := p.Devices()
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(BeEmpty())
	})

	It("should return a transport error when the daemon is gone", func() {
		failure := &common.TransportError{Path: LegacyDaemonPath, Interface: LegacyDaemonInterface, Member: `version`, Err: errors.New(`name has no owner`)}
		t.On(`Call`, LegacyDaemonPath, LegacyDaemonInterface, `version`, noArgs).Return(nil, failure)
		_, err := p.Version()
		Expect(common.IsTransportError(err)).To(BeTrue())
	})

	It("should build devices through introspection", func() {
		path := dbus.ObjectPath(`/org/razer/device/XX0000000001`)
		t.On(`Call`, path, transport.IntrospectableInterface, transport.IntrospectMethod, noArgs).
			Return([]interface{}{`<node><interface name="razer.device.lighting.chroma"><method name="setStatic"></method></interface></node>`}, nil)
		dev, err := p.Device(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.ObjectPath()).To(Equal(path))
		Expect(dev.Dialect()).To(Equal(common.DialectLegacy))
		Expect(dev.Leds()).To(HaveLen(1))
	})

	Describe("device signals", func() {
		var handlers map[string]transport.SignalHandler

		// capture records the handler registered for each signal.
		capture := func(args mock.Arguments) {
			handlers[args.String(2)] = args.Get(3).(transport.SignalHandler)
		}

		BeforeEach(func() {
			handlers = make(map[string]transport.SignalHandler)
		})

		It("should report both device signals", func() {
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_added`, mock.Anything).Return(nil).Run(capture)
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_removed`, mock.Anything).Return(nil).Run(capture)
			var signals []string
			Expect(p.SubscribeDevicesChanged(func(signal string) {
				signals = append(signals, signal)
			})).To(Succeed())
			handlers[`device_added`](nil)
			handlers[`device_removed`](nil)
			Expect(signals).To(Equal([]string{`device_added`, `device_removed`}))
		})

		It("should stop at the first failed subscription", func() {
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_added`, mock.Anything).Return(common.ErrClosed)
			Expect(p.SubscribeDevicesChanged(func(string) {})).To(MatchError(common.ErrClosed))
			t.AssertNumberOfCalls(GinkgoT(), `Subscribe`, 1)
		})

		It("should register device_added once when a retry follows a failed device_removed", func() {
			failure := errors.New(`org.freedesktop.DBus.Error.LimitsExceeded`)
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_added`, mock.Anything).Return(nil).Run(capture)
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_removed`, mock.Anything).Return(failure).Once()
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_removed`, mock.Anything).Return(nil).Run(capture).Once()

			var signals []string
			handler := func(signal string) {
				signals = append(signals, signal)
			}
			Expect(p.SubscribeDevicesChanged(handler)).To(MatchError(failure))
			Expect(p.SubscribeDevicesChanged(handler)).To(Succeed())

			t.AssertNumberOfCalls(GinkgoT(), `Subscribe`, 3)
			handlers[`device_added`](nil)
			handlers[`device_removed`](nil)
			Expect(signals).To(Equal([]string{`device_added`, `device_removed`}))
		})

		It("should fan one registration out to every handler", func() {
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_added`, mock.Anything).Return(nil).Run(capture)
			t.On(`Subscribe`, LegacyDaemonPath, LegacyDevicesInterface, `device_removed`, mock.Anything).Return(nil).Run(capture)
			var first, second []string
			Expect(p.SubscribeDevicesChanged(func(signal string) { first = append(first, signal) })).To(Succeed())
			Expect(p.SubscribeDevicesChanged(func(signal string) { second = append(second, signal) })).To(Succeed())

			t.AssertNumberOfCalls(GinkgoT(), `Subscribe`, 2)
			handlers[`device_removed`](nil)
			Expect(first).To(Equal([]string{`device_removed`}))
			Expect(second).To(Equal([]string{`device_removed`}))
		})
	})

	It("should close the transport", func() {
		t.On(`Close`).Return(nil)
		Expect(p.Close()).To(Succeed())
		t.AssertExpectations(GinkgoT())
	})
})

var _ = Describe("Unified", func() {
	var (
		t *mocks.Transport
		p *Unified
	)

	BeforeEach(func() {
		t = new(mocks.Transport)
		p = &Unified{Transport: t}
	})

	It("should implement Protocol", func() {
		var proto Protocol = p
		Expect(proto.Dialect()).To(Equal(common.DialectUnified))
		Expect(proto.ServiceUnit()).To(Equal(`razer_test.service`))
		Expect(proto.DaemonBinary()).To(Equal(`/usr/bin/razer_test`))
	})

	It("should read the manager properties", func() {
		paths := []dbus.ObjectPath{`/io/github/openrazer1/devices/BY1234567890`}
		t.On(`GetProperty`, UnifiedManagerPath, UnifiedManagerInterface, `Version`).Return(dbus.MakeVariant(`0.1.0`), nil)
		t.On(`GetProperty`, UnifiedManagerPath, UnifiedManagerInterface, `Devices`).Return(dbus.MakeVariant(paths), nil)
		Expect(p.Version()).To(Equal(`0.1.0`))
		Expect(p.Devices()).To(Equal(paths))
	})

	It("should return a decode error for a mistyped property", func() {
		t.On(`GetProperty`, UnifiedManagerPath, UnifiedManagerInterface, `Devices`).Return(dbus.MakeVariant(true), nil)
		_, err := p.Devices()
		Expect(common.IsDecodeError(err)).To(BeTrue())
	})

	It("should report devicesChanged", func() {
		t.On(`Subscribe`, UnifiedManagerPath, UnifiedManagerInterface, `devicesChanged`, mock.Anything).Return(nil).Run(emit)
		var signals []string
		Expect(p.SubscribeDevicesChanged(func(signal string) {
			signals = append(signals, signal)
		})).To(Succeed())
		Expect(signals).To(Equal([]string{`devicesChanged`}))
	})
})
