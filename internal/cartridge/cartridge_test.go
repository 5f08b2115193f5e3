package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func romWithHeader(title string, cartType, romSize, ramSize uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:], title)
	rom[0x147] = cartType
	rom[0x148] = romSize
	rom[0x149] = ramSize
	return rom
}

func TestHeader_Parse(t *testing.T) {
	cart := NewCartridge(romWithHeader("POCKET GAME", 0x03, 0x02, 0x02))

	h := cart.Header()
	assert.Equal(t, "POCKET GAME", h.Title)
	assert.Equal(t, uint8(0x03), h.CartridgeType)
	assert.Equal(t, uint(128*1024), h.ROMSize)
	assert.Equal(t, uint(8*1024), h.RAMSize)
	assert.Equal(t, "POCKET GAME", cart.Title())
}

func TestHeader_Banking(t *testing.T) {
	for cartType, want := range map[uint8]BankingVariant{
		0x00: BankingNone,
		0x01: BankingMBC1,
		0x02: BankingMBC1,
		0x03: BankingMBC1,
		0x05: BankingMBC2,
		0x06: BankingMBC2,
		0x13: BankingNone, // unsupported controllers degrade to plain ROM
	} {
		cart := NewCartridge(romWithHeader("T", cartType, 0, 0))
		assert.Equal(t, want, cart.Header().Banking())
	}
}

func TestCartridge_ReadOutOfBounds(t *testing.T) {
	cart := NewCartridge(romWithHeader("T", 0, 0, 0))

	assert.Equal(t, uint8(0xFF), cart.Read(0x8000))
	assert.Equal(t, uint8(0xFF), cart.Read(0xFFFFFF))
}

func TestCartridge_PadsTinyROM(t *testing.T) {
	cart := NewCartridge([]byte{0x00, 0x18, 0xFE})

	assert.Equal(t, uint8(0x18), cart.Read(1))
	assert.Equal(t, uint8(0x00), cart.Read(0x7FFF))
}

func TestCartridge_Empty(t *testing.T) {
	cart := NewEmptyCartridge()
	assert.Equal(t, BankingNone, cart.Header().Banking())
	assert.Equal(t, "", cart.Title())
}
