// Package mmu provides the memory management unit. The MMU owns
// the full 64kB address space and dispatches reads and writes to
// the specialised regions: cartridge ROM banks, external RAM
// banks, echo RAM, the sprite attribute table and the I/O
// registers. Writes into ROM-mapped ranges never reach the
// backing memory; they are reinterpreted as banking-control
// writes.
package mmu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// TimerControl is the narrow surface the MMU uses to notify the
// timer that the frequency selector of the control register has
// changed and its reload count must be re-derived.
type TimerControl interface {
	SetClockFrequency()
}

// MMU is the memory management unit. It handles all memory reads
// and writes to the 64kB address space:
//
//	0x0000 - 0x3FFF  ROM bank 0 (fixed)
//	0x4000 - 0x7FFF  switchable ROM bank
//	0x8000 - 0x9FFF  video RAM
//	0xA000 - 0xBFFF  switchable external RAM bank
//	0xC000 - 0xDFFF  work RAM
//	0xE000 - 0xFDFF  echo of 0xC000 - 0xDDFF
//	0xFE00 - 0xFE9F  sprite attribute table (OAM)
//	0xFEA0 - 0xFEFF  not usable
//	0xFF00 - 0xFF7F  I/O registers
//	0xFF80 - 0xFFFE  high RAM
//	0xFFFF           interrupt enable register
type MMU struct {
	memory [0x10000]uint8

	// Cart supplies raw cartridge bytes for the ROM regions; the
	// MMU hands it absolute, already bank-resolved addresses.
	Cart *cartridge.Cartridge

	banking    cartridge.BankingVariant
	romBank    uint8
	ramBanks   [0x8000]uint8
	ramBank    uint8
	ramEnabled bool
	romBanking bool

	irq   *interrupts.Service
	pad   *joypad.State
	timer TimerControl

	Log log.Logger
}

// NewMMU returns a new MMU with the given cartridge mapped in and
// the hardware-documented power-on register values applied.
func NewMMU(cart *cartridge.Cartridge, pad *joypad.State, irq *interrupts.Service, l log.Logger) *MMU {
	m := &MMU{
		Cart:       cart,
		banking:    cart.Header().Banking(),
		romBank:    1,
		romBanking: true,
		irq:        irq,
		pad:        pad,
		Log:        l,
	}

	// map the fixed region of the cartridge
	for i := uint32(0); i < 0x8000; i++ {
		m.memory[i] = cart.Read(i)
	}

	m.powerOn()

	return m
}

// AttachTimer attaches the timer so that writes to the control
// register can reload its counter.
func (m *MMU) AttachTimer(t TimerControl) {
	m.timer = t
}

// powerOn applies the register values the hardware documents for
// the post boot state.
func (m *MMU) powerOn() {
	for addr, value := range map[uint16]uint8{
		0xFF10: 0x80, 0xFF11: 0xBF, 0xFF12: 0xF3, 0xFF14: 0xBF,
		0xFF16: 0x3F, 0xFF19: 0xBF, 0xFF1A: 0x7F, 0xFF1B: 0xFF,
		0xFF1C: 0x9F, 0xFF1E: 0xBF, 0xFF20: 0xFF, 0xFF23: 0xBF,
		0xFF24: 0x77, 0xFF25: 0xF3, 0xFF26: 0xF1,
		types.LCDC: 0x91, types.BGP: 0xFC,
		types.OBP0: 0xFF, types.OBP1: 0xFF,
	} {
		m.memory[addr] = value
	}
}

// Read returns the value at the given address, resolving the
// joypad register, the switchable ROM and RAM banks and the
// interrupt registers.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address == types.P1:
		return m.readJoypad()
	case address >= 0x4000 && address <= 0x7FFF:
		return m.Cart.Read(uint32(address-0x4000) + uint32(m.romBank)*0x4000)
	case address >= 0xA000 && address <= 0xBFFF:
		return m.ramBanks[uint32(address-0xA000)+uint32(m.ramBank)*0x2000]
	case address == types.IF:
		return m.irq.Flag | 0xE0 // upper 3 bits are always set
	case address == types.IE:
		return m.irq.Enable
	default:
		return m.memory[address]
	}
}

// Write writes the value to the given address, applying the side
// effects of the banking controller and the I/O registers.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000:
		// ROM is read only, writes drive the banking controller
		m.handleBanking(address, value)
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			m.ramBanks[uint32(address-0xA000)+uint32(m.ramBank)*0x2000] = value
		}
	case address == types.DIV:
		// any write resets the divider
		m.memory[types.DIV] = 0
	case address == types.TAC:
		m.writeTimerControl(value)
	case address == types.IF:
		m.irq.Flag = value & 0x1F
	case address == types.IE:
		m.irq.Enable = value
	case address == types.LY:
		// writing the scanline register restarts scanline counting
		m.memory[types.LY] = 0
	case address == types.DMA:
		m.doDMATransfer(value)
	case address >= 0xFEA0 && address < 0xFF00:
		m.Log.Debugf("mmu: write to restricted memory 0x%04X", address)
	case address >= 0xC000 && address < 0xDE00:
		// the mirrored part of work RAM lands in echo RAM too
		m.memory[address] = value
		m.memory[address+0x2000] = value
	case address >= 0xE000 && address < 0xFE00:
		// echo RAM writes land in work RAM too
		m.memory[address] = value
		m.memory[address-0x2000] = value
	default:
		m.memory[address] = value
	}
}

// IO returns the raw byte backing an I/O register, bypassing the
// read dispatch. It is the surface the timer and PPU use to
// advance their memory-mapped registers without triggering the
// reset-on-write semantics external writes have.
func (m *MMU) IO(address uint16) uint8 {
	return m.memory[address]
}

// SetIO sets the raw byte backing an I/O register, bypassing the
// write dispatch.
func (m *MMU) SetIO(address uint16, value uint8) {
	m.memory[address] = value
}

// writeTimerControl stores the control byte and, if the frequency
// selector changed, immediately reloads the timer counter.
func (m *MMU) writeTimerControl(value uint8) {
	current := m.memory[types.TAC] & 0x3
	m.memory[types.TAC] = value

	if value&0x3 != current && m.timer != nil {
		m.timer.SetClockFrequency()
	}
}

// doDMATransfer copies 160 bytes from the source page given by
// the written value into the sprite attribute table. The written
// byte is the source address divided by 0x100.
func (m *MMU) doDMATransfer(value uint8) {
	source := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.memory[types.OAM+i] = m.Read(source + i)
	}
}

// readJoypad composes the P1 register from the select bits the
// game wrote and the current button state. A cleared bit in the
// low nibble means the button is held.
func (m *MMU) readJoypad() uint8 {
	sel := m.memory[types.P1]

	d := uint8(0xC0) | sel&0x30
	if sel&types.Bit4 == 0 {
		d |= m.pad.Directions()
	}
	if sel&types.Bit5 == 0 {
		d |= m.pad.Actions()
	}
	d ^= 0x0F

	return d
}
