package ppu

import (
	"github.com/thelolagemann/golcd/internal/ppu/lcd"
	"github.com/thelolagemann/golcd/internal/types"
)

var _ types.Stater = (*PPU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - control (uint8)
//   - status (uint8)
//   - scy, scx (uint8)
//   - wy, wx (uint8)
//   - ly, lyCompare (uint8)
//   - lx (uint16)
//   - lxSent (bool)
//   - interrupts (interrupts.Latch)
func (p *PPU) Load(st *types.State) {
	p.control = lcd.Control(st.Read8())
	p.status = lcd.Status(st.Read8())
	p.scy = st.Read8()
	p.scx = st.Read8()
	p.wy = st.Read8()
	p.wx = st.Read8()
	p.ly = st.Read8()
	p.lyCompare = st.Read8()
	p.lx = uint(st.Read16())
	p.lxSent = st.ReadBool()
	p.interrupts.Load(st)
}

// Save implements the types.Stater interface. See Load for
// the order in which the values are saved.
func (p *PPU) Save(st *types.State) {
	st.Write8(uint8(p.control))
	st.Write8(uint8(p.status))
	st.Write8(p.scy)
	st.Write8(p.scx)
	st.Write8(p.wy)
	st.Write8(p.wx)
	st.Write8(p.ly)
	st.Write8(p.lyCompare)
	st.Write16(p.dot())
	st.WriteBool(p.lxSent)
	p.interrupts.Save(st)
}
