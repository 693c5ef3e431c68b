package device_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/godbus/dbus/v5"

	"github.com/z3ntu/libqopenrazer/common"
	"github.com/z3ntu/libqopenrazer/mocks"
	. "github.com/z3ntu/libqopenrazer/protocol/unified/device"
)

var noArgs []interface{}

const (
	devicePath = dbus.ObjectPath(`/io/github/openrazer1/devices/BY1234567890`)
	logoPath   = dbus.ObjectPath(`/io/github/openrazer1/devices/BY1234567890/led/4`)
	wheelPath  = dbus.ObjectPath(`/io/github/openrazer1/devices/BY1234567890/led/1`)
)

func expectDevice(t *mocks.Transport, features, fx []string) {
	t.On(`GetProperty`, devicePath, DeviceInterface, `SupportedFeatures`).Return(dbus.MakeVariant(features), nil)
	t.On(`GetProperty`, devicePath, DeviceInterface, `SupportedFx`).Return(dbus.MakeVariant(fx), nil)
	t.On(`GetProperty`, devicePath, DeviceInterface, `Leds`).Return(dbus.MakeVariant([]dbus.ObjectPath{logoPath, wheelPath}), nil)
}

var _ = Describe("Device", func() {
	var (
		t   *mocks.Transport
		dev *Device
	)

	BeforeEach(func() {
		var err error
		t = new(mocks.Transport)
		expectDevice(t, []string{`dpi`, `poll_rate`}, []string{`off`, `static`, `breathing`})
		dev, err = New(t, devicePath)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should read capabilities from properties", func() {
		Expect(dev.Dialect()).To(Equal(common.DialectUnified))
		Expect(dev.Capabilities().Tokens()).To(Equal([]string{`dpi`, `poll_rate`}))
		Expect(dev.HasFeature(`dpi_stages`)).To(BeFalse())
		Expect(dev.Leds()).To(HaveLen(2))
		Expect(dev.Leds()[0].ObjectPath()).To(Equal(logoPath))
		Expect(dev.Leds()[1].HasEffect(common.EffectBreathing)).To(BeTrue())
		Expect(dev.Leds()[1].HasEffect(common.EffectSpectrum)).To(BeFalse())
		t.AssertNumberOfCalls(GinkgoT(), `Call`, 0)
	})

	It("should return property failures", func() {
		t = new(mocks.Transport)
		failure := &common.TransportError{Path: devicePath, Interface: DeviceInterface, Member: `SupportedFeatures`, Err: errors.New(`unknown object`)}
		t.On(`GetProperty`, devicePath, DeviceInterface, `SupportedFeatures`).Return(nil, failure)
		_, err := New(t, devicePath)
		Expect(common.IsTransportError(err)).To(BeTrue())
	})

	It("should read the name and type properties", func() {
		t.On(`GetProperty`, devicePath, DeviceInterface, `Name`).Return(dbus.MakeVariant(`Razer BlackWidow Chroma`), nil)
		t.On(`GetProperty`, devicePath, DeviceInterface, `Type`).Return(dbus.MakeVariant(`keyboard`), nil)
		Expect(dev.Name()).To(Equal(`Razer BlackWidow Chroma`))
		Expect(dev.Type()).To(Equal(`keyboard`))
	})

	It("should call the identity methods", func() {
		t.On(`Call`, devicePath, DeviceInterface, `getFirmwareVersion`, noArgs).Return([]interface{}{`v2.1`}, nil)
		t.On(`Call`, devicePath, DeviceInterface, `getSerial`, noArgs).Return([]interface{}{`BY1234567890`}, nil)
		t.On(`Call`, devicePath, DeviceInterface, `getVidPid`, noArgs).Return([]interface{}{common.USBID{Vendor: 0x1532, Product: 0x0203}}, nil)
		Expect(dev.FirmwareVersion()).To(Equal(`v2.1`))
		Expect(dev.Serial()).To(Equal(`BY1234567890`))
		Expect(dev.VidPid()).To(Equal(common.USBID{Vendor: 0x1532, Product: 0x0203}))
	})

	It("should gate optional features", func() {
		_, err := dev.KeyboardLayout()
		Expect(err).To(MatchError(common.ErrUnsupported))
		Expect(dev.SetDPIStages([]common.DPI{{X: 800, Y: 800}})).To(MatchError(common.ErrUnsupported))
		t.AssertNumberOfCalls(GinkgoT(), `Call`, 0)
	})

	It("should read and write the DPI", func() {
		t.On(`Call`, devicePath, DeviceInterface, `getDPI`, noArgs).Return([]interface{}{common.DPI{X: 1000, Y: 1200}}, nil)
		t.On(`Call`, devicePath, DeviceInterface, `getMaxDPI`, noArgs).Return([]interface{}{uint16(16000)}, nil)
		t.On(`Call`, devicePath, DeviceInterface, `setDPI`, []interface{}{common.DPI{X: 800, Y: 800}}).Return([]interface{}{true}, nil)
		Expect(dev.DPI()).To(Equal(common.DPI{X: 1000, Y: 1200}))
		Expect(dev.MaxDPI()).To(Equal(uint16(16000)))
		Expect(dev.SetDPI(common.DPI{X: 800, Y: 800})).To(Succeed())
	})

	It("should report a rejected request", func() {
		t.On(`Call`, devicePath, DeviceInterface, `setPollRate`, []interface{}{uint16(2000)}).Return([]interface{}{false}, nil)
		Expect(dev.SetPollRate(2000)).To(MatchError(common.ErrRejected))
	})

	It("should decode a malformed success flag", func() {
		t.On(`Call`, devicePath, DeviceInterface, `setPollRate`, []interface{}{uint16(500)}).Return(nil, nil)
		err := dev.SetPollRate(500)
		Expect(common.IsDecodeError(err)).To(BeTrue())
	})
})
