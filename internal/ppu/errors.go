package ppu

import "errors"

// ErrIllegalStateTransition is returned when the PPU is driven into
// a state the hardware can not recover from, such as disabling the
// display during VBlank. Callers should halt rather than continue.
var ErrIllegalStateTransition = errors.New("ppu: illegal state transition")
