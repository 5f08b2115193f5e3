package mmu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
)

// handleBanking reinterprets a write into the ROM-mapped range as
// a banking-control write. Four sub-ranges select RAM enabling,
// the low bits of the ROM bank, the high bits of the ROM bank or
// the RAM bank, and the banking mode.
func (m *MMU) handleBanking(address uint16, value uint8) {
	if m.banking == cartridge.BankingNone {
		m.Log.Debugf("mmu: banking write 0x%02X to 0x%04X ignored, no controller", value, address)
		return
	}

	switch {
	case address < 0x2000:
		m.enableRAMBank(address, value)
	case address < 0x4000:
		m.changeLoROMBank(value)
	case address < 0x6000:
		// dual purpose range, the mode flag decides whether it
		// selects the high ROM bank bits or the RAM bank
		if m.romBanking {
			m.changeHiROMBank(value)
		} else {
			m.changeRAMBank(value)
		}
	default:
		m.changeBankingMode(value)
	}
}

// enableRAMBank toggles external RAM. A lower nibble of 0xA
// enables, 0x0 disables. MBC2 additionally requires bit 8 of the
// address to be clear.
func (m *MMU) enableRAMBank(address uint16, value uint8) {
	if m.banking == cartridge.BankingMBC2 && address&0x100 != 0 {
		m.Log.Debugf("mmu: bit 8 of address 0x%04X set, RAM enable ignored", address)
		return
	}

	switch value & 0x0F {
	case 0x0A:
		m.ramEnabled = true
	case 0x00:
		m.ramEnabled = false
	}
}

// changeLoROMBank sets the low bits of the ROM bank index. MBC1
// replaces the low 5 bits, MBC2 the low 4. Bank 0 is permanently
// mapped at 0x0000, so a resulting index of 0 is corrected to 1.
func (m *MMU) changeLoROMBank(value uint8) {
	if m.banking == cartridge.BankingMBC2 {
		m.romBank = value & 0x0F
	} else {
		m.romBank = m.romBank&0xE0 | value&0x1F
	}
	if m.romBank == 0 {
		m.romBank++
	}
}

// changeHiROMBank sets the high 3 bits of the ROM bank index.
// Only MBC1 has enough banks to need them.
func (m *MMU) changeHiROMBank(value uint8) {
	if m.banking != cartridge.BankingMBC1 {
		return
	}

	m.romBank = m.romBank&0x1F | value&0xE0
	if m.romBank == 0 {
		m.romBank++
	}
}

// changeRAMBank selects the active external RAM bank (0-3).
func (m *MMU) changeRAMBank(value uint8) {
	if m.banking != cartridge.BankingMBC1 {
		return
	}

	m.ramBank = value & 0x03
}

// changeBankingMode selects what the dual purpose 0x4000-0x5FFF
// write range affects. Bit 0 clear selects ROM banking and forces
// the RAM bank back to 0, bit 0 set selects RAM banking.
func (m *MMU) changeBankingMode(value uint8) {
	if m.banking != cartridge.BankingMBC1 {
		return
	}

	if value&0x01 == 0 {
		m.romBanking = true
		m.ramBank = 0
	} else {
		m.romBanking = false
	}
}

// ROMBank returns the index of the currently mapped switchable
// ROM bank.
func (m *MMU) ROMBank() uint8 {
	return m.romBank
}

// RAMBank returns the index of the currently mapped external RAM
// bank.
func (m *MMU) RAMBank() uint8 {
	return m.ramBank
}
