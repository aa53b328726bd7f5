package interrupts

import (
	"github.com/thelolagemann/golcd/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the LCD enters
	// VBlank mode (lcd.VBlank).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when its line compare condition is met.
	LCDFlag = types.Bit1

	pendingMask = VBlankFlag | LCDFlag
)

// Latch buffers requested interrupts until an external
// interrupt controller drains them with PollAndClear.
//
// Each flag is a one-shot latch rather than a counter:
// requesting a flag that is already pending has no further
// effect, so a consumer only needs to poll before the next
// occurrence of the same condition.
type Latch struct {
	pending uint8
}

// Request latches the given interrupt flags.
func (l *Latch) Request(flag uint8) {
	l.pending |= flag & pendingMask
}

// Pending returns the latched flags without clearing them.
func (l *Latch) Pending() uint8 {
	return l.pending
}

// PollAndClear returns the latched flags, with bit 0 set
// for a pending VBlank and bit 1 for a pending LCD interrupt,
// and clears them.
func (l *Latch) PollAndClear() uint8 {
	v := l.pending
	l.pending = 0
	return v
}

var _ types.Stater = (*Latch)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - pending (uint8)
func (l *Latch) Load(st *types.State) {
	l.pending = st.Read8() & pendingMask
}

// Save implements the types.Stater interface.
//
// The values are saved in the following order:
//   - pending (uint8)
func (l *Latch) Save(st *types.State) {
	st.Write8(l.pending)
}
