package ppu

import (
	"hash"

	"github.com/cespare/xxhash"
)

// Trace records the lines reported ready by Tick, so that two
// timing runs can be compared by fingerprint regardless of how
// their dots were split across calls.
type Trace struct {
	lines  []uint8
	digest hash.Hash64
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace {
	return &Trace{digest: xxhash.New()}
}

// Record appends the lines returned by a single Tick.
func (t *Trace) Record(lines []uint8) {
	if len(lines) == 0 {
		return
	}
	t.lines = append(t.lines, lines...)
	_, _ = t.digest.Write(lines)
}

// Tick advances p by dots and records the lines it reports.
func (t *Trace) Tick(p *PPU, dots uint) ([]uint8, error) {
	lines, err := p.Tick(dots)
	if err != nil {
		return nil, err
	}
	t.Record(lines)
	return lines, nil
}

// Lines returns every line recorded so far.
func (t *Trace) Lines() []uint8 {
	return t.lines
}

// Sum64 returns the xxhash fingerprint of the recorded lines.
func (t *Trace) Sum64() uint64 {
	return t.digest.Sum64()
}

// Reset clears the trace.
func (t *Trace) Reset() {
	t.lines = t.lines[:0]
	t.digest.Reset()
}
