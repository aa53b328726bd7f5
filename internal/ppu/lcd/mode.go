package lcd

import (
	"errors"
	"fmt"
)

// Mode represents a mode of the LCD. Its value is the 2-bit
// encoding reported in bits 1-0 of the STAT register.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode, entered once the pixel
	// data for the line has been transferred. The CPU can access both
	// the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode, covering lines 144-153.
	// The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM scan mode, the first fetch phase of a line. The
	// CPU can access the display RAM but not OAM.
	OAM
	// VRAM is the pixel transfer mode, the second fetch phase of a
	// line. The CPU can access neither the display RAM nor OAM.
	VRAM
)

const (
	// VBlankLine is the first line of the vertical blanking period.
	VBlankLine = 144
	// PixelTransferDot is the first dot of a line spent in VRAM mode.
	PixelTransferDot = 78
	// ReadyDot is the first dot of a line spent in HBlank mode, at which
	// point the line's pixel data is ready for output.
	ReadyDot = 248
	// LineDots is the number of dots that make up a single line.
	LineDots = 456
)

// ErrDotOutOfRange is returned by Classify when the dot lies
// beyond the end of a line.
var ErrDotOutOfRange = errors.New("lcd: dot out of range")

// Classify returns the mode the LCD is in at the given line and dot.
//
//	ly >= 144          VBlank
//	lx in   0 ..  77   OAM
//	lx in  78 .. 247   VRAM
//	lx in 248 .. 456   HBlank
func Classify(ly uint8, lx uint16) (Mode, error) {
	switch {
	case ly >= VBlankLine:
		return VBlank, nil
	case lx < PixelTransferDot:
		return OAM, nil
	case lx < ReadyDot:
		return VRAM, nil
	case lx <= LineDots:
		return HBlank, nil
	}

	return 0, fmt.Errorf("%w: %d on line %d", ErrDotOutOfRange, lx, ly)
}

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}
