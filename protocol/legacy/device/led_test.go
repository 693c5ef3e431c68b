package device_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"

	"github.com/z3ntu/libqopenrazer/common"
	. "github.com/z3ntu/libqopenrazer/protocol/legacy/device"
	"github.com/z3ntu/libqopenrazer/mocks"
)

var _ = Describe("Led", func() {
	var (
		path = PathForSerial(`XX0000000001`)
		t    *mocks.Transport
		dev  *Device
		led  common.Led
	)

	newLed := func(layout ifaces) {
		var err error
		t = new(mocks.Transport)
		expectIntrospect(t, path, layout)
		dev, err = New(t, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(dev.Leds()).To(HaveLen(1))
		led = dev.Leds()[0]
	}

	Describe("capability detection", func() {
		It("should support the effects whose setters exist", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`, `setBreathSingle`}})
			Expect(led.Capabilities().Tokens()).To(ConsistOf(`static`, `breathing`))
			Expect(led.HasEffect(common.EffectStatic)).To(BeTrue())
			Expect(led.HasEffect(common.EffectBreathing)).To(BeTrue())
			Expect(led.HasEffect(common.EffectOff)).To(BeFalse())
			Expect(led.HasFx(`brightness`)).To(BeFalse())
		})

		It("should agree between effects and their tokens", func() {
			newLed(ifaces{ChromaInterface: {`setNone`, `setStatic`, `setWave`, `setBreathDual`, `setReactive`}})
			for _, e := range common.Effects() {
				Expect(led.HasFx(e.Token())).To(Equal(led.HasEffect(e)), e.Label())
			}
			Expect(led.HasFx(`ripple`)).To(BeFalse())
		})

		It("should synthesize off and on for an Active only zone", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`, `getLogoActive`}})
			for _, e := range common.Effects() {
				expected := e == common.EffectOff || e == common.EffectOn
				Expect(led.HasEffect(e)).To(Equal(expected), e.Label())
			}
		})

		It("should not synthesize off and on when an effect matched", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`, `setLogoStatic`}})
			Expect(led.Capabilities().Tokens()).To(ConsistOf(`static`))
		})

		It("should add static and breathing for monochrome devices", func() {
			newLed(ifaces{Bw2013Interface: {`setStatic`, `setPulsate`}})
			Expect(led.Capabilities().Tokens()).To(ConsistOf(`static`, `breathing`))
			id, err := led.LedID()
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(common.LedUnspecified))
		})

		It("should probe the brightness interface for the chroma zone", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`}, BrightnessInterface: {`setBrightness`, `getBrightness`}})
			Expect(led.HasFx(`brightness`)).To(BeTrue())
		})

		It("should probe the zone interface for brightness of other zones", func() {
			newLed(ifaces{`razer.device.lighting.scroll`: {`setScrollStatic`, `setScrollBrightness`}, BrightnessInterface: {`setBrightness`}})
			Expect(led.HasFx(`brightness`)).To(BeTrue())
			Expect(led.(*Led).Location()).To(Equal(`Scroll`))
			id, _ := led.LedID()
			Expect(id).To(Equal(common.LedScrollWheel))
		})
	})

	Describe("setting effects", func() {
		var red = common.RGB{R: 255}

		It("should call the none method when there is no Active setter", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`, `setBreathSingle`}})
			t.On(`Call`, path, ChromaInterface, `setNone`, noArgs).Return(nil, nil).Once()
			Expect(led.SetOff()).To(Succeed())
			t.AssertCalled(GinkgoT(), `Call`, path, ChromaInterface, `setNone`, noArgs)
		})

		It("should return transport errors from the none method", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`, `setBreathSingle`}})
			failure := &common.TransportError{Path: path, Interface: ChromaInterface, Member: `setNone`, Err: errors.New(`no reply`)}
			t.On(`Call`, path, ChromaInterface, `setNone`, noArgs).Return(nil, failure)
			err := led.SetOff()
			Expect(err).To(HaveOccurred())
			Expect(common.IsTransportError(err)).To(BeTrue())
		})

		It("should prefer the Active setter for off", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoActive`, []interface{}{false}).Return(nil, nil)
			Expect(led.SetOff()).To(Succeed())
		})

		It("should use the Active setter for on", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoActive`, []interface{}{true}).Return(nil, nil)
			Expect(led.SetOn()).To(Succeed())
		})

		It("should flatten colors into byte arguments", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`, `setBreathDual`, `setReactive`}})
			t.On(`Call`, path, ChromaInterface, `setStatic`, []interface{}{uint8(255), uint8(0), uint8(0)}).Return(nil, nil)
			t.On(`Call`, path, ChromaInterface, `setBreathDual`, []interface{}{uint8(255), uint8(0), uint8(0), uint8(1), uint8(2), uint8(3)}).Return(nil, nil)
			t.On(`Call`, path, ChromaInterface, `setReactive`, []interface{}{uint8(255), uint8(0), uint8(0), uint8(2)}).Return(nil, nil)
			Expect(led.SetStatic(red)).To(Succeed())
			Expect(led.SetBreathingDual(red, common.RGB{R: 1, G: 2, B: 3})).To(Succeed())
			Expect(led.SetReactive(red, common.ReactiveMedium)).To(Succeed())
		})

		It("should prefix methods with the lighting location", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoSpectrum`, `setLogoBlinking`, `setLogoBreathRandom`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoSpectrum`, noArgs).Return(nil, nil)
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoBlinking`, []interface{}{uint8(255), uint8(0), uint8(0)}).Return(nil, nil)
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoBreathRandom`, noArgs).Return(nil, nil)
			Expect(led.SetSpectrum()).To(Succeed())
			Expect(led.SetBlinking(red)).To(Succeed())
			Expect(led.SetBreathingRandom()).To(Succeed())
		})

		It("should encode the wave direction as an integer", func() {
			newLed(ifaces{ChromaInterface: {`setWave`}})
			t.On(`Call`, path, ChromaInterface, `setWave`, []interface{}{int32(2)}).Return(nil, nil)
			Expect(led.SetWave(common.WaveRightToLeft)).To(Succeed())
		})

		It("should ignore the color on monochrome devices", func() {
			newLed(ifaces{Bw2013Interface: {`setStatic`, `setPulsate`}, ChromaInterface: {`setStatic`, `setBreathSingle`}})
			t.On(`Call`, path, Bw2013Interface, `setStatic`, noArgs).Return(nil, nil)
			t.On(`Call`, path, Bw2013Interface, `setPulsate`, noArgs).Return(nil, nil)
			Expect(led.SetStatic(red)).To(Succeed())
			Expect(led.SetBreathing(red)).To(Succeed())
			t.AssertNotCalled(GinkgoT(), `Call`, path, ChromaInterface, `setStatic`, mock.Anything)
			t.AssertNotCalled(GinkgoT(), `Call`, path, ChromaInterface, `setBreathSingle`, mock.Anything)
		})
	})

	Describe("reading the current effect", func() {
		It("should map the textual effect", func() {
			newLed(ifaces{ChromaInterface: {`getEffect`, `setActive`, `getActive`}})
			t.On(`Call`, path, ChromaInterface, `getEffect`, noArgs).Return([]interface{}{`breathDual`}, nil).Once()
			Expect(led.CurrentEffect()).To(Equal(common.EffectBreathingDual))
			t.On(`Call`, path, ChromaInterface, `getEffect`, noArgs).Return([]interface{}{`pulsate`}, nil).Once()
			Expect(led.CurrentEffect()).To(Equal(common.EffectBreathing))
		})

		It("should reject unknown effect names", func() {
			newLed(ifaces{ChromaInterface: {`getEffect`}})
			t.On(`Call`, path, ChromaInterface, `getEffect`, noArgs).Return([]interface{}{`ripple`}, nil)
			_, err := led.CurrentEffect()
			Expect(common.IsDecodeError(err)).To(BeTrue())
		})

		It("should fall back to the Active getter", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`, `getLogoActive`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `getLogoActive`, noArgs).Return([]interface{}{true}, nil).Once()
			Expect(led.CurrentEffect()).To(Equal(common.EffectOn))
			t.On(`Call`, path, `razer.device.lighting.logo`, `getLogoActive`, noArgs).Return([]interface{}{false}, nil).Once()
			Expect(led.CurrentEffect()).To(Equal(common.EffectOff))
		})

		It("should return off without a remote call when no getter exists", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`}})
			Expect(led.CurrentEffect()).To(Equal(common.EffectOff))
			t.AssertNumberOfCalls(GinkgoT(), `Call`, 1)
		})
	})

	Describe("reading the current colors", func() {
		It("should return black without a remote call when effect colors are absent", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoActive`, `getLogoActive`}})
			colors, err := led.CurrentColors()
			Expect(err).NotTo(HaveOccurred())
			Expect(colors).To(HaveLen(3))
			for _, c := range colors {
				Expect(c).To(Equal(common.Black))
			}
			t.AssertNumberOfCalls(GinkgoT(), `Call`, 1)
		})

		It("should decode three triples", func() {
			newLed(ifaces{ChromaInterface: {`getEffectColors`}})
			t.On(`Call`, path, ChromaInterface, `getEffectColors`, noArgs).
				Return([]interface{}{[]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}}, nil)
			Expect(led.CurrentColors()).To(Equal([3]common.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}}))
		})

		It("should reject a short payload", func() {
			newLed(ifaces{ChromaInterface: {`getEffectColors`}})
			t.On(`Call`, path, ChromaInterface, `getEffectColors`, noArgs).
				Return([]interface{}{[]byte{1, 2, 3, 4, 5, 6, 7, 8}}, nil)
			_, err := led.CurrentColors()
			Expect(common.IsDecodeError(err)).To(BeTrue())
		})
	})

	Describe("reading the wave direction", func() {
		BeforeEach(func() {
			newLed(ifaces{ChromaInterface: {`setWave`, `getWaveDir`}})
		})

		It("should map 1 and 2", func() {
			t.On(`Call`, path, ChromaInterface, `getWaveDir`, noArgs).Return([]interface{}{int32(1)}, nil).Once()
			Expect(led.WaveDirection()).To(Equal(common.WaveLeftToRight))
			t.On(`Call`, path, ChromaInterface, `getWaveDir`, noArgs).Return([]interface{}{int32(2)}, nil).Once()
			Expect(led.WaveDirection()).To(Equal(common.WaveRightToLeft))
		})

		It("should reject any other value", func() {
			for _, v := range []int32{0, 3, -1, 255} {
				t.On(`Call`, path, ChromaInterface, `getWaveDir`, noArgs).Return([]interface{}{v}, nil).Once()
				_, err := led.WaveDirection()
				Expect(common.IsDecodeError(err)).To(BeTrue(), `value %d`, v)
			}
		})
	})

	Describe("brightness", func() {
		It("should map the ends of the range exactly", func() {
			Expect(ToPercent(0)).To(Equal(0.0))
			Expect(ToPercent(255)).To(Equal(100.0))
			Expect(FromPercent(0)).To(Equal(uint8(0)))
			Expect(FromPercent(100)).To(Equal(uint8(255)))
		})

		It("should not drift by more than one through the percent scale", func() {
			for b := 0; b <= 255; b++ {
				once := FromPercent(ToPercent(uint8(b)))
				twice := FromPercent(ToPercent(once))
				Expect(int(once)-b).To(BeNumerically("~", 0, 1), `brightness %d`, b)
				Expect(twice).To(Equal(once), `brightness %d`, b)
			}
		})

		It("should use the brightness interface for the chroma zone", func() {
			newLed(ifaces{ChromaInterface: {`setStatic`}, BrightnessInterface: {`setBrightness`, `getBrightness`}})
			t.On(`Call`, path, BrightnessInterface, `setBrightness`, []interface{}{100.0}).Return(nil, nil)
			t.On(`Call`, path, BrightnessInterface, `getBrightness`, noArgs).Return([]interface{}{100.0}, nil)
			Expect(led.SetBrightness(255)).To(Succeed())
			Expect(led.Brightness()).To(Equal(uint8(255)))
		})

		It("should use the zone interface for other zones", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`setLogoBrightness`, `getLogoBrightness`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `setLogoBrightness`, []interface{}{50.0}).Return(nil, nil)
			t.On(`Call`, path, `razer.device.lighting.logo`, `getLogoBrightness`, noArgs).Return([]interface{}{0.0}, nil)
			Expect(led.SetBrightness(128)).To(Succeed())
			Expect(led.Brightness()).To(Equal(uint8(0)))
		})

		It("should reject out of range values", func() {
			newLed(ifaces{`razer.device.lighting.logo`: {`getLogoBrightness`}})
			t.On(`Call`, path, `razer.device.lighting.logo`, `getLogoBrightness`, noArgs).Return([]interface{}{150.0}, nil)
			_, err := led.Brightness()
			Expect(common.IsDecodeError(err)).To(BeTrue())
		})
	})

	It("should bind to the device path", func() {
		newLed(ifaces{ChromaInterface: {`setStatic`}})
		Expect(led.ObjectPath()).To(Equal(dbus.ObjectPath(`/org/razer/device/XX0000000001`)))
		Expect(led.Dialect()).To(Equal(common.DialectLegacy))
	})
})
