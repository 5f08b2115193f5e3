package cartridge

import "fmt"

// BankingVariant identifies the banking controller a cartridge
// expects. Exactly one variant is active for a loaded cartridge,
// determined once from the cartridge type byte of the header.
type BankingVariant uint8

const (
	// BankingNone is a plain 32kB ROM with no banking controller.
	BankingNone BankingVariant = iota
	// BankingMBC1 is the MBC1 banking controller.
	BankingMBC1
	// BankingMBC2 is the MBC2 banking controller.
	BankingMBC2
)

func (b BankingVariant) String() string {
	switch b {
	case BankingMBC1:
		return "MBC1"
	case BankingMBC2:
		return "MBC2"
	}
	return "ROM"
}

var (
	ramMap = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
	}
)

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. It contains information about the cartridge
// itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0147 - CartridgeType of the game, which determines the
	// banking controller variant.
	CartridgeType uint8

	ROMSize uint
	RAMSize uint
}

// parseHeader parses the header of the given ROM and returns a Header.
func parseHeader(header []byte) Header {
	if len(header) != 0x50 {
		panic(fmt.Sprintf("invalid header length: %d", len(header)))
	}

	h := Header{}
	h.Title = trimTitle(header[0x34:0x44])
	h.CartridgeType = header[0x47]
	h.ROMSize = uint(32*1024) << header[0x48]
	h.RAMSize = ramMap[header[0x49]]

	return h
}

// Banking returns the banking controller variant the cartridge
// type byte selects. Types 0x01-0x03 are MBC1 variants, types
// 0x05-0x06 are MBC2 variants, anything else is treated as a
// plain ROM.
func (h Header) Banking() BankingVariant {
	switch h.CartridgeType {
	case 0x01, 0x02, 0x03:
		return BankingMBC1
	case 0x05, 0x06:
		return BankingMBC2
	}
	return BankingNone
}

func (h Header) String() string {
	return fmt.Sprintf("%s (%s, %dkB ROM, %dkB RAM)", h.Title, h.Banking(), h.ROMSize/1024, h.RAMSize/1024)
}

func trimTitle(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return string(raw[:end])
}
