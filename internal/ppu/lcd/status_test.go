package lcd_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/thelolagemann/golcd/internal/ppu/lcd"
)

var _ = Describe("Status", func() {
	It("only replaces the upper 5 bits on write", func() {
		s := lcd.Status(0).WithMode(lcd.VRAM)
		s = s.Write(0xFF)
		Expect(uint8(s)).To(BeEquivalentTo(0xFB))
		Expect(s.Mode()).To(Equal(lcd.VRAM))
		Expect(s.Coincidence()).To(BeFalse())

		s = s.Write(0x00)
		Expect(uint8(s)).To(BeEquivalentTo(0x03))
	})

	It("keeps the interrupt enables when the mode changes", func() {
		s := lcd.Status(0).Write(0x48).WithMode(lcd.VBlank)
		Expect(s.Mode()).To(Equal(lcd.VBlank))
		Expect(s.CoincidenceInterrupt()).To(BeTrue())
		Expect(s.HBlankInterrupt()).To(BeTrue())
		Expect(s.OAMInterrupt()).To(BeFalse())
		Expect(s.VBlankInterrupt()).To(BeFalse())
	})

	It("decodes every mode from bits 1-0", func() {
		for _, m := range []lcd.Mode{lcd.HBlank, lcd.VBlank, lcd.OAM, lcd.VRAM} {
			Expect(lcd.Status(0xF8).WithMode(m).Mode()).To(Equal(m))
		}
	})

	It("clears the coincidence flag when the mode is replaced", func() {
		s := lcd.Status(0x07).WithMode(lcd.OAM)
		Expect(s.Coincidence()).To(BeFalse())
		Expect(s.Mode()).To(Equal(lcd.OAM))
	})
})
