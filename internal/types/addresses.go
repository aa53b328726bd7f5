package types

// HardwareAddress represents the address of a hardware
// register. The LCD registers are mapped to a fixed block
// starting at 0xFF40.
type HardwareAddress = uint16

const (
	// LCDC is the address of the LCDC hardware register. The
	// LCDC hardware register controls the display enable and the
	// layers used when rendering.
	//
	//	Bit 7 - LCD Enable                     (0=Off, 1=On)
	//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window Display Enable          (0=Off, 1=On)
	//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. The upper
	// 5 bits select which conditions raise an LCD interrupt, the
	// lower 3 bits are owned by the hardware.
	//
	//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//	Bit 2 - Coincidence Flag                        (Read Only)
	//	Bit 1-0 - Mode Flag                             (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the SCY hardware register. The SCY
	// hardware register is used to scroll the background vertically.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register. The SCX
	// hardware register is used to scroll the background horizontally.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. The LY
	// hardware register holds the line currently being processed,
	// 0 through 153. It is read-only, writing to it resets it to 0.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LYC hardware register. The LYC
	// hardware register is compared against LY for the LCD interrupt.
	LYC HardwareAddress = 0xFF45
	// WY is the address of the WY hardware register, the Y position
	// of the window layer.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the WX hardware register, the X position
	// of the window layer (minus 7).
	WX HardwareAddress = 0xFF4B
)
