package types

// HardwareAddress represents the address of a hardware
// register. The hardware registers are mapped to memory
// addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented at a rate of 16384Hz, and
	// resets to 0 when written to.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2: Timer Enable
	//  Bit 1-0: Input Clock Select
	//           00: 4096 Hz  (1024 cycles per tick)
	//           01: 262144 Hz  (16 cycles per tick)
	//           10: 65536 Hz  (64 cycles per tick)
	//           11: 16384 Hz  (256 cycles per tick)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h) (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)  (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCDC hardware register, used to
	// control the LCD.
	//
	//  Bit 7: LCD Enable                     (0=Off, 1=On)
	//  Bit 6: Window Tile Map Select         (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Enable                  (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Select             (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Enable            (0=Off, 1=On)
	//  Bit 0: BG Enable                      (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. It reports
	// the mode the LCD is in, and is used to enable LCD interrupts.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//  Bit 5: Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//  Bit 4: Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 3: Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0: Mode Flag       (Mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the SCY hardware register, the vertical
	// scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the horizontal
	// scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register, the scanline
	// currently being drawn. Writing to it resets it to 0.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LYC hardware register. When LY and
	// LYC are equal the coincidence flag in STAT is set.
	LYC HardwareAddress = 0xFF45
	// DMA is the address of the DMA hardware register. Writing a
	// value to it copies 160 bytes from (value << 8) into the sprite
	// attribute table.
	DMA HardwareAddress = 0xFF46
	// BGP is the address of the BGP hardware register, the background
	// and window palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of the OBP0 hardware register, the first
	// sprite palette.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of the OBP1 hardware register, the second
	// sprite palette.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the WY hardware register, the Y position
	// of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the WX hardware register, the X position
	// of the window, offset by 7.
	WX HardwareAddress = 0xFF4B
	// IE is the address of the IE hardware register, the interrupt
	// enable mask.
	IE HardwareAddress = 0xFFFF
)

// OAM is the base address of the sprite attribute table
// (0xFE00 - 0xFE9F).
const OAM = 0xFE00
