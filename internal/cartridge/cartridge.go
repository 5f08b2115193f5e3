// Package cartridge provides a thin data provider for game
// cartridges. The cartridge holds the raw ROM image and parses
// the header; all banking logic lives in the MMU, which supplies
// already bank-resolved addresses on read.
package cartridge

// Cartridge represents a game cartridge. It supplies raw bytes
// on read and carries the parsed header.
type Cartridge struct {
	rom    []byte
	header Header
}

// NewCartridge returns a new Cartridge from the given ROM image.
func NewCartridge(rom []byte) *Cartridge {
	if len(rom) < 0x150 {
		// too small to even hold a header, pad so that the
		// header parse and fixed-bank reads stay in bounds
		padded := make([]byte, 0x8000)
		copy(padded, rom)
		rom = padded
	}
	return &Cartridge{
		rom:    rom,
		header: parseHeader(rom[0x100:0x150]),
	}
}

// NewEmptyCartridge returns a cartridge with no game loaded.
func NewEmptyCartridge() *Cartridge {
	return NewCartridge(make([]byte, 0x8000))
}

// Read returns the byte at the given absolute, already
// bank-resolved, address of the ROM image. Reads beyond the end
// of the image return 0xFF, as an open bus would.
func (c *Cartridge) Read(address uint32) uint8 {
	if address >= uint32(len(c.rom)) {
		return 0xFF
	}
	return c.rom[address]
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}
