package ppu

import (
	"fmt"

	"github.com/thelolagemann/golcd/internal/interrupts"
	"github.com/thelolagemann/golcd/internal/ppu/lcd"
	"github.com/thelolagemann/golcd/internal/types"
	"github.com/thelolagemann/golcd/pkg/log"
)

const (
	// ScreenHeight is the number of visible lines.
	ScreenHeight = lcd.VBlankLine
	// LastLine is the last line of a frame, after which LY wraps to 0.
	LastLine = 153
	// LineDots is the number of dots in a single line.
	LineDots = lcd.LineDots
	// FrameDots is the number of dots in a full frame.
	FrameDots = LineDots * (LastLine + 1)
)

// PPU implements the timing and register core of the Game Boy's
// (P)ixel (P)rocessing (U)nit. It tracks which line and dot the
// LCD is on, derives the LCD mode from them, reports which lines
// become ready for rendering as time passes, and latches the
// VBlank and LCD interrupts for an external interrupt controller.
//
// A PPU is owned by a single driver loop and is not safe for
// concurrent use.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
type PPU struct {
	control lcd.Control // LCDC register
	status  lcd.Status  // STAT register

	scy, scx uint8 // Background viewport position
	wy, wx   uint8 // Window position

	ly        uint8 // Current line (0-153)
	lyCompare uint8 // LYC register value

	lx     uint // Current dot within line (0-456)
	lxSent bool // Whether the current line has been reported ready

	interrupts interrupts.Latch

	registers types.HardwareRegisters
	log       log.Logger

	storeRegisters bool // LYC, WY and WX store written values
}

// New creates and initializes a PPU with the display disabled.
func New(opts ...Opt) *PPU {
	p := &PPU{
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.registers = p.hardwareRegisters()

	return p
}

// Tick advances the PPU by the given number of dots, and returns
// the lines whose pixel data became ready during that time, in
// ascending order. A line is ready once its dot counter reaches
// lcd.ReadyDot, and is reported exactly once.
//
// A single call may span any number of lines, in which case every
// line passed is reported and interrupts are latched for each of
// them. Nothing happens while the display is disabled.
func (p *PPU) Tick(dots uint) ([]uint8, error) {
	if !p.control.Enabled() {
		return nil, nil
	}

	p.lx += dots
	if p.lx < lcd.ReadyDot {
		return nil, p.updateMode()
	}

	var lines []uint8
	if !p.lxSent {
		lines = append(lines, p.ly)
		p.lxSent = true
	}

	for p.lx >= LineDots {
		p.ly++
		if p.ly > LastLine {
			p.ly = 0
		}
		p.lx -= LineDots
		p.checkInterrupts()

		// the new line may already be past its ready point
		if p.lx >= lcd.ReadyDot {
			lines = append(lines, p.ly)
			p.lxSent = true
		} else {
			p.lxSent = false
		}
	}

	return lines, p.updateMode()
}

// checkInterrupts latches the interrupts raised by entering the
// current line.
func (p *PPU) checkInterrupts() {
	if p.ly == ScreenHeight {
		p.interrupts.Request(interrupts.VBlankFlag)
	}

	if p.status.CoincidenceInterrupt() {
		// the coincidence flag selects the polarity of the compare,
		// with it clear the interrupt fires while LY differs from LYC
		var match bool
		if p.status.Coincidence() {
			match = p.lyCompare == p.ly
		} else {
			match = p.lyCompare != p.ly
		}
		if match {
			p.interrupts.Request(interrupts.LCDFlag)
		}
	}
}

// updateMode sets the mode bits of the status register from the
// current line and dot.
func (p *PPU) updateMode() error {
	mode, err := lcd.Classify(p.ly, p.dot())
	if err != nil {
		p.log.Errorf("ppu: %v", err)
		return fmt.Errorf("%w: %w", ErrIllegalStateTransition, err)
	}
	p.status = p.status.WithMode(mode)
	return nil
}

// PollInterrupts returns the pending interrupts and clears them.
// Bit 0 is set for a VBlank interrupt, and bit 1 for an LCD
// interrupt, matching the layout of the IF register.
func (p *PPU) PollInterrupts() uint8 {
	return p.interrupts.PollAndClear()
}

// Mode returns the current mode reported by the status register.
func (p *PPU) Mode() lcd.Mode {
	return p.status.Mode()
}

// Line returns the current line.
func (p *PPU) Line() uint8 {
	return p.ly
}

// Dot returns the current dot within the line.
func (p *PPU) Dot() uint16 {
	return p.dot()
}

func (p *PPU) dot() uint16 {
	if p.lx > 0xFFFF {
		return 0xFFFF
	}
	return uint16(p.lx)
}

// Enabled reports whether the display is enabled.
func (p *PPU) Enabled() bool {
	return p.control.Enabled()
}
