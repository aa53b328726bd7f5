package ppu

import (
	"fmt"

	"github.com/thelolagemann/golcd/internal/ppu/lcd"
	"github.com/thelolagemann/golcd/internal/types"
)

// hardwareRegisters maps the LCD register block.
func (p *PPU) hardwareRegisters() types.HardwareRegisters {
	h := types.NewHardwareRegisters()

	h.Register(types.LCDC, p.writeControl, func() uint8 {
		return uint8(p.control)
	})
	h.Register(types.STAT, func(v uint8) error {
		p.status = p.status.Write(v)
		return nil
	}, func() uint8 {
		return uint8(p.status)
	})
	h.Register(types.SCY, func(v uint8) error {
		p.scy = v
		return nil
	}, func() uint8 {
		return p.scy
	})
	h.Register(types.SCX, func(v uint8) error {
		p.scx = v
		return nil
	}, func() uint8 {
		return p.scx
	})
	h.Register(types.LY, func(uint8) error {
		// LY is read only, writing to it resets the line counter
		p.ly = 0
		if p.control.Enabled() {
			return p.updateMode()
		}
		return nil
	}, func() uint8 {
		return p.ly
	})

	// LYC, WY and WX accept writes without storing them, unless
	// configured otherwise
	h.Register(types.LYC, p.storeOrDrop(&p.lyCompare), func() uint8 {
		return p.lyCompare
	})
	h.Register(types.WY, p.storeOrDrop(&p.wy), func() uint8 {
		return p.wy
	})
	h.Register(types.WX, p.storeOrDrop(&p.wx), func() uint8 {
		return p.wx
	})

	return h
}

func (p *PPU) storeOrDrop(reg *uint8) types.WriteFunc {
	if !p.storeRegisters {
		return types.NoWrite
	}
	return func(v uint8) error {
		*reg = v
		return nil
	}
}

// writeControl handles writes to LCDC. Turning the display on
// restarts timing from the first dot of line 0, and turning it
// off during VBlank is an illegal transition, in which case the
// write is rejected.
func (p *PPU) writeControl(v uint8) error {
	next := lcd.Control(v)

	switch {
	case !p.control.Enabled() && next.Enabled():
		p.ly = 0
		p.lx = 0
		p.lxSent = false
		if err := p.updateMode(); err != nil {
			return err
		}
	case p.control.Enabled() && !next.Enabled():
		if mode := p.status.Mode(); mode == lcd.VBlank {
			p.log.Errorf("ppu: display disabled during %s on line %d", mode, p.ly)
			return fmt.Errorf("%w: display disabled during %s (LY=%d)", ErrIllegalStateTransition, mode, p.ly)
		}
	}

	p.control = next
	p.log.Debugf("LCDC: %s", p.control)
	return nil
}

// Read returns the value of the register at the given address.
// ok is false if the address does not belong to the LCD.
func (p *PPU) Read(address uint16) (value uint8, ok bool) {
	return p.registers.Read(address)
}

// Write writes the value to the register at the given address.
// handled is false if the address does not belong to the LCD.
// A non-nil error is only returned for an illegal transition, in
// which case the write has no effect.
func (p *PPU) Write(address uint16, value uint8) (handled bool, err error) {
	return p.registers.Write(address, value)
}
