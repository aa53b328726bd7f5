package ppu

import (
	"reflect"
	"testing"

	"github.com/thelolagemann/golcd/internal/types"
)

func TestPPU_State(t *testing.T) {
	p := newEnabled(t, WithStoredRegisters())
	write(t, p, types.STAT, types.Bit6)
	write(t, p, types.SCY, 0x12)
	write(t, p, types.WX, 0x07)
	tick(t, p, LineDots*7+300)

	st := types.NewState()
	p.Save(st)

	restored := New(WithStoredRegisters())
	restored.Load(types.StateFromBytes(st.Bytes()))

	for _, address := range []uint16{types.LCDC, types.STAT, types.SCY, types.SCX, types.LY, types.LYC, types.WY, types.WX} {
		if want, got := read(t, p, address), read(t, restored, address); want != got {
			t.Errorf("%04X: expected %02X, got %02X", address, want, got)
		}
	}
	if p.Dot() != restored.Dot() {
		t.Fatalf("expected LX=%d, got %d", p.Dot(), restored.Dot())
	}

	// both continue identically, including the already reported line
	for _, dots := range []uint{0, 100, LineDots * 140, 57} {
		want, got := tick(t, p, dots), tick(t, restored, dots)
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("tick %d: expected %v, got %v", dots, want, got)
		}
		if want, got := p.PollInterrupts(), restored.PollInterrupts(); want != got {
			t.Fatalf("tick %d: expected interrupts %02b, got %02b", dots, want, got)
		}
	}
}
