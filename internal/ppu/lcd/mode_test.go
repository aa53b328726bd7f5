package lcd_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/thelolagemann/golcd/internal/ppu/lcd"
)

var _ = Describe("Classify", func() {
	DescribeTable("visible lines",
		func(lx uint16, want lcd.Mode) {
			for _, ly := range []uint8{0, 1, 72, 143} {
				mode, err := lcd.Classify(ly, lx)
				Expect(err).ToNot(HaveOccurred())
				Expect(mode).To(Equal(want), "line %d dot %d", ly, lx)
			}
		},
		Entry("first dot", uint16(0), lcd.OAM),
		Entry("last OAM dot", uint16(77), lcd.OAM),
		Entry("first VRAM dot", uint16(78), lcd.VRAM),
		Entry("last VRAM dot", uint16(247), lcd.VRAM),
		Entry("first HBlank dot", uint16(248), lcd.HBlank),
		Entry("end of line", uint16(456), lcd.HBlank),
	)

	It("pins lines 144-153 to VBlank regardless of the dot", func() {
		for ly := uint8(144); ly <= 153; ly++ {
			for _, lx := range []uint16{0, 77, 78, 247, 248, 456} {
				mode, err := lcd.Classify(ly, lx)
				Expect(err).ToNot(HaveOccurred())
				Expect(mode).To(Equal(lcd.VBlank))
			}
		}
	})

	It("visits the fetch modes in order across a line", func() {
		var seen []lcd.Mode
		for lx := uint16(0); lx < lcd.LineDots; lx++ {
			mode, err := lcd.Classify(10, lx)
			Expect(err).ToNot(HaveOccurred())
			if len(seen) == 0 || seen[len(seen)-1] != mode {
				seen = append(seen, mode)
			}
		}
		Expect(seen).To(Equal([]lcd.Mode{lcd.OAM, lcd.VRAM, lcd.HBlank}))
	})

	It("rejects a dot beyond the end of a visible line", func() {
		_, err := lcd.Classify(0, lcd.LineDots+1)
		Expect(err).To(MatchError(lcd.ErrDotOutOfRange))
	})

	It("encodes modes as their STAT values", func() {
		Expect(uint8(lcd.HBlank)).To(BeEquivalentTo(0))
		Expect(uint8(lcd.VBlank)).To(BeEquivalentTo(1))
		Expect(uint8(lcd.OAM)).To(BeEquivalentTo(2))
		Expect(uint8(lcd.VRAM)).To(BeEquivalentTo(3))
		Expect(lcd.VRAM.String()).To(Equal("VRAM"))
		Expect(lcd.Mode(7).String()).To(Equal("Mode(7)"))
	})
})
