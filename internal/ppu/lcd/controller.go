package lcd

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/golcd/internal/types"
)

// Control is the value of the LCD control register. It is
// responsible for controlling various aspects of the LCD, such
// as enabling the background and window display.
//
// Its value is stored in the LCDC register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Control uint8

// Enabled reports whether the LCD is enabled.
func (c Control) Enabled() bool {
	return types.Test(uint8(c), 7)
}

// WindowTileMapAddress returns the start address of the window
// tile map, 0x9C00 when bit 6 is set, otherwise 0x9800.
func (c Control) WindowTileMapAddress() uint16 {
	if types.Test(uint8(c), 6) {
		return 0x9C00
	}
	return 0x9800
}

// WindowEnabled reports whether the window layer is enabled.
func (c Control) WindowEnabled() bool {
	return types.Test(uint8(c), 5)
}

// TileDataAddress returns the start address of the background
// and window tile data, 0x8000 when bit 4 is set, otherwise the
// signed area at 0x8800.
func (c Control) TileDataAddress() uint16 {
	if types.Test(uint8(c), 4) {
		return 0x8000
	}
	return 0x8800
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c Control) UsingSignedTileData() bool {
	return c.TileDataAddress() == 0x8800
}

// BackgroundTileMapAddress returns the start address of the
// background tile map, 0x9C00 when bit 3 is set, otherwise 0x9800.
func (c Control) BackgroundTileMapAddress() uint16 {
	if types.Test(uint8(c), 3) {
		return 0x9C00
	}
	return 0x9800
}

// SpriteSize returns the height of objects in pixels, 8 or 16.
func (c Control) SpriteSize() uint8 {
	if types.Test(uint8(c), 2) {
		return 16
	}
	return 8
}

// SpriteEnabled reports whether objects are displayed.
func (c Control) SpriteEnabled() bool {
	return types.Test(uint8(c), 1)
}

// BackgroundEnabled reports whether the background and window
// layers are displayed.
func (c Control) BackgroundEnabled() bool {
	return types.Test(uint8(c), 0)
}

// String describes the features selected by the control register.
func (c Control) String() string {
	if !c.Enabled() {
		return "screen off"
	}
	if !c.BackgroundEnabled() {
		return "background and window off"
	}

	parts := []string{fmt.Sprintf("background on using map %s", tileMapRange(c.BackgroundTileMapAddress()))}
	if c.WindowEnabled() {
		parts = append(parts, fmt.Sprintf("window on using map %s", tileMapRange(c.WindowTileMapAddress())))
	} else {
		parts = append(parts, "window off")
	}
	if c.UsingSignedTileData() {
		parts = append(parts, "tile data 8800-97FF")
	} else {
		parts = append(parts, "tile data 8000-8FFF")
	}
	if c.SpriteEnabled() {
		parts = append(parts, fmt.Sprintf("8x%d OBJ on", c.SpriteSize()))
	} else {
		parts = append(parts, "OBJ off")
	}

	return strings.Join(parts, ", ")
}

func tileMapRange(start uint16) string {
	return fmt.Sprintf("%04X-%04X", start, start+0x03FF)
}
