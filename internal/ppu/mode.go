package ppu

// Mode represents a mode of the LCD.
type Mode = uint8

const (
	// ModeHBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	ModeHBlank Mode = iota
	// ModeVBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	ModeVBlank
	// ModeOAM is the sprite attribute search mode. The CPU can access the display RAM but not OAM.
	ModeOAM
	// ModeVRAM is the transfer mode. The CPU can access neither the display RAM nor OAM.
	ModeVRAM
)
