package lcd_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/thelolagemann/golcd/internal/ppu/lcd"
)

var _ = Describe("Control", func() {
	It("decodes the default boot value", func() {
		c := lcd.Control(0x91)
		Expect(c.Enabled()).To(BeTrue())
		Expect(c.BackgroundEnabled()).To(BeTrue())
		Expect(c.WindowEnabled()).To(BeFalse())
		Expect(c.SpriteEnabled()).To(BeFalse())
		Expect(c.TileDataAddress()).To(BeEquivalentTo(0x8000))
		Expect(c.UsingSignedTileData()).To(BeFalse())
		Expect(c.BackgroundTileMapAddress()).To(BeEquivalentTo(0x9800))
		Expect(c.WindowTileMapAddress()).To(BeEquivalentTo(0x9800))
		Expect(c.SpriteSize()).To(BeEquivalentTo(8))
	})

	It("selects the upper maps and tall objects", func() {
		c := lcd.Control(0xFF)
		Expect(c.BackgroundTileMapAddress()).To(BeEquivalentTo(0x9C00))
		Expect(c.WindowTileMapAddress()).To(BeEquivalentTo(0x9C00))
		Expect(c.SpriteSize()).To(BeEquivalentTo(16))
	})

	DescribeTable("describes its features",
		func(value uint8, want string) {
			Expect(lcd.Control(value).String()).To(Equal(want))
		},
		Entry("screen off", uint8(0x7F), "screen off"),
		Entry("background off", uint8(0x80), "background and window off"),
		Entry("boot value", uint8(0x91), "background on using map 9800-9BFF, window off, tile data 8000-8FFF, OBJ off"),
		Entry("everything on", uint8(0xFF), "background on using map 9C00-9FFF, window on using map 9C00-9FFF, tile data 8000-8FFF, 8x16 OBJ on"),
		Entry("signed tile data", uint8(0xA3), "background on using map 9800-9BFF, window on using map 9800-9BFF, tile data 8800-97FF, 8x8 OBJ on"),
	)
})
