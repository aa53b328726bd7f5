package ppu

import "github.com/thelolagemann/golcd/pkg/log"

// Opt is a function that modifies a PPU instance.
type Opt func(p *PPU)

// WithLogger sets the logger used to report the decoded control
// register and illegal transitions.
func WithLogger(l log.Logger) Opt {
	return func(p *PPU) {
		p.log = l
	}
}

// WithStoredRegisters makes writes to LYC, WY and WX store the
// written value. By default these writes are accepted but dropped.
func WithStoredRegisters() Opt {
	return func(p *PPU) {
		p.storeRegisters = true
	}
}
