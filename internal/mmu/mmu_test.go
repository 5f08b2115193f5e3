package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// testROM builds a ROM image with the given cartridge type and ROM
// size code. Each 16kB bank is filled with its own bank number so
// that banked reads are easy to assert on.
func testROM(cartType uint8, banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < 0x4000; i++ {
			rom[bank*0x4000+i] = uint8(bank)
		}
	}
	copy(rom[0x134:], "TEST")
	rom[0x143] = 0 // overwrite the bank fill inside the header
	rom[0x147] = cartType
	return rom
}

func testMMU(cartType uint8, banks int) *MMU {
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	return NewMMU(cartridge.NewCartridge(testROM(cartType, banks)), pad, irq, log.NewNullLogger())
}

func TestMMU_ROMIsReadOnly(t *testing.T) {
	m := testMMU(0x00, 2)

	before := m.Read(0x1234)
	m.Write(0x1234, before+1)
	assert.Equal(t, before, m.Read(0x1234))
}

func TestMMU_EchoRAM(t *testing.T) {
	m := testMMU(0x00, 2)

	// writes to echo RAM land in work RAM too
	m.Write(0xE000, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(0xC000))
	assert.Equal(t, uint8(0xAB), m.Read(0xE000))

	m.Write(0xFDFF, 0xCD)
	assert.Equal(t, uint8(0xCD), m.Read(0xDDFF))

	// and work RAM writes are visible through echo RAM
	m.Write(0xC000, 0x34)
	assert.Equal(t, uint8(0x34), m.Read(0xE000))

	m.Write(0xDDFF, 0x5C)
	assert.Equal(t, uint8(0x5C), m.Read(0xFDFF))

	// work RAM above the mirrored range is not echoed
	m.Write(0xDE00, 0x77)
	assert.Equal(t, uint8(0x77), m.Read(0xDE00))
	assert.NotEqual(t, uint8(0x77), m.Read(0xFE00))
}

func TestMMU_RestrictedRegion(t *testing.T) {
	m := testMMU(0x00, 2)

	m.Write(0xFEA0, 0x42)
	assert.Equal(t, uint8(0x00), m.Read(0xFEA0))
}

func TestMMU_DividerResetOnWrite(t *testing.T) {
	m := testMMU(0x00, 2)

	m.SetIO(types.DIV, 0x55)
	m.Write(types.DIV, 0x12) // any value resets
	assert.Equal(t, uint8(0), m.Read(types.DIV))
}

func TestMMU_ScanlineResetOnWrite(t *testing.T) {
	m := testMMU(0x00, 2)

	m.SetIO(types.LY, 99)
	m.Write(types.LY, 42)
	assert.Equal(t, uint8(0), m.Read(types.LY))
}

type fakeTimer struct {
	reloads int
}

func (f *fakeTimer) SetClockFrequency() { f.reloads++ }

func TestMMU_TimerControlReload(t *testing.T) {
	m := testMMU(0x00, 2)
	ft := &fakeTimer{}
	m.AttachTimer(ft)

	m.Write(types.TAC, 0x05) // frequency 00 -> 01
	assert.Equal(t, 1, ft.reloads)

	m.Write(types.TAC, 0x01) // same frequency, enable bit changed only
	assert.Equal(t, 1, ft.reloads)

	m.Write(types.TAC, 0x02)
	assert.Equal(t, 2, ft.reloads)
}

func TestMMU_DMATransfer(t *testing.T) {
	m := testMMU(0x00, 2)

	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC000+i, uint8(i))
	}

	m.Write(types.DMA, 0xC0)
	for i := uint16(0); i < 0xA0; i++ {
		assert.Equal(t, uint8(i), m.Read(types.OAM+i))
	}
}

func TestMMU_InterruptRegisters(t *testing.T) {
	m := testMMU(0x00, 2)

	m.Write(types.IF, 0xFF)
	// only the low 5 bits are backed, the upper 3 read as set
	assert.Equal(t, uint8(0xFF), m.Read(types.IF))
	m.Write(types.IF, 0x00)
	assert.Equal(t, uint8(0xE0), m.Read(types.IF))

	m.Write(types.IE, 0x15)
	assert.Equal(t, uint8(0x15), m.Read(types.IE))
}

func TestMMU_MBC1ROMBanking(t *testing.T) {
	m := testMMU(0x01, 8)

	// bank 1 is mapped at power on
	assert.Equal(t, uint8(1), m.Read(0x4000))

	m.Write(0x2000, 0x03)
	assert.Equal(t, uint8(3), m.Read(0x4000))
	assert.Equal(t, uint8(3), m.ROMBank())

	// bank 0 can never be selected into the switchable slot
	m.Write(0x2000, 0x00)
	assert.Equal(t, uint8(1), m.ROMBank())
}

func TestMBC1_HighBankBits(t *testing.T) {
	m := testMMU(0x01, 2)

	m.Write(0x2000, 0x12)
	m.Write(0x4000, 0x20) // sets bits 5-7 in ROM banking mode
	assert.Equal(t, uint8(0x32), m.ROMBank())
}

func TestMBC1_RAMBanking(t *testing.T) {
	m := testMMU(0x03, 2)

	// RAM is disabled until 0xA is written to the enable region
	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0), m.Read(0xA000))

	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))

	// switch to RAM banking mode and select bank 1
	m.Write(0x6000, 0x01)
	m.Write(0x4000, 0x01)
	assert.Equal(t, uint8(1), m.RAMBank())
	assert.Equal(t, uint8(0), m.Read(0xA000))

	m.Write(0xA000, 0x24)
	assert.Equal(t, uint8(0x24), m.Read(0xA000))

	// back to bank 0
	m.Write(0x4000, 0x00)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))

	// returning to ROM banking mode forces RAM bank 0
	m.Write(0x4000, 0x01)
	m.Write(0x6000, 0x00)
	assert.Equal(t, uint8(0), m.RAMBank())

	// disabling RAM blocks writes again
	m.Write(0x0000, 0x00)
	m.Write(0xA000, 0x99)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))
}

func TestMBC2_ROMBanking(t *testing.T) {
	m := testMMU(0x05, 8)

	m.Write(0x2100, 0x03)
	assert.Equal(t, uint8(3), m.ROMBank())

	// only the low 4 bits select the bank
	m.Write(0x2100, 0xF5)
	assert.Equal(t, uint8(5), m.ROMBank())

	m.Write(0x2100, 0x00)
	assert.Equal(t, uint8(1), m.ROMBank())
}

func TestMBC2_RAMEnableAddressGate(t *testing.T) {
	m := testMMU(0x06, 2)

	// bit 8 of the address set: the write is ignored
	m.Write(0x0100, 0x0A)
	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0), m.Read(0xA000))

	// bit 8 clear: the write takes effect
	m.Write(0x0000, 0x0A)
	m.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xA000))
}

func TestMMU_Joypad(t *testing.T) {
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	m := NewMMU(cartridge.NewCartridge(testROM(0x00, 2)), pad, irq, log.NewNullLogger())

	// select the direction keys, nothing held: low nibble all high
	m.Write(types.P1, 0x20)
	assert.Equal(t, uint8(0x0F), m.Read(types.P1)&0x0F)

	pad.Press(joypad.ButtonRight)
	assert.Equal(t, uint8(0x0E), m.Read(types.P1)&0x0F)

	// action select does not see direction keys
	m.Write(types.P1, 0x10)
	assert.Equal(t, uint8(0x0F), m.Read(types.P1)&0x0F)

	pad.Press(joypad.ButtonA)
	assert.Equal(t, uint8(0x0E), m.Read(types.P1)&0x0F)
}
