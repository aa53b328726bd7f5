package lcd

import "github.com/thelolagemann/golcd/internal/types"

const (
	// statusWritable masks the bits of the status register that can
	// be written to by the CPU.
	statusWritable = 0xF8
	// statusHardware masks the bits owned by the hardware.
	statusHardware = 0x07
)

// Status represents the LCD status register. It contains information about the
// current state of the LCD controller. Its value is stored in the STAT register
// (0xFF41) as follows:
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag                        (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see Mode)  (Read Only)
type Status uint8

// Write returns the status after a CPU write of value. Only the
// upper 5 bits are replaced, so a write can never forge the mode
// or the coincidence flag.
func (s Status) Write(value uint8) Status {
	return Status(value&statusWritable | uint8(s)&statusHardware)
}

// WithMode returns the status with the hardware owned bits
// replaced by the given mode. The coincidence flag is cleared.
func (s Status) WithMode(m Mode) Status {
	return Status(uint8(s)&statusWritable | uint8(m)&0x03)
}

// Mode returns the mode encoded in bits 1-0.
func (s Status) Mode() Mode {
	return Mode(s & 0x03)
}

// Coincidence reports whether the coincidence flag (bit 2) is set.
func (s Status) Coincidence() bool {
	return s&types.Bit2 != 0
}

// CoincidenceInterrupt reports whether the LYC=LY interrupt
// (bit 6) is enabled.
func (s Status) CoincidenceInterrupt() bool {
	return s&types.Bit6 != 0
}

// OAMInterrupt reports whether the OAM interrupt (bit 5) is enabled.
func (s Status) OAMInterrupt() bool {
	return s&types.Bit5 != 0
}

// VBlankInterrupt reports whether the VBlank interrupt (bit 4) is enabled.
func (s Status) VBlankInterrupt() bool {
	return s&types.Bit4 != 0
}

// HBlankInterrupt reports whether the HBlank interrupt (bit 3) is enabled.
func (s Status) HBlankInterrupt() bool {
	return s&types.Bit3 != 0
}
