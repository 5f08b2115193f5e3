// Package interrupts provides the interrupt controller. It
// maintains the request and enable bitmasks together with the
// master enable flag, and resolves the highest priority pending
// interrupt to its vector.
package interrupts

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

const (
	// VBlankFlag is the V-Blank interrupt flag (bit 0), requested
	// every time the PPU enters V-Blank. Vector 0x40.
	VBlankFlag uint8 = types.Bit0
	// LCDFlag is the LCD status interrupt flag (bit 1), requested
	// by the STAT register when one of its enabled conditions is
	// met. Vector 0x48.
	LCDFlag uint8 = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested
	// when TIMA overflows. Vector 0x50.
	TimerFlag uint8 = types.Bit2
	// JoypadFlag is the Joypad interrupt flag (bit 4), requested
	// when a button is pressed. Vector 0x60. Bit 3 is
	// architecturally unused on this hardware.
	JoypadFlag uint8 = types.Bit4
)

// Service is the interrupt controller. When an interrupt is
// requested, the corresponding bit in the Flag register is set.
// When an interrupt is both requested and enabled, and IME is
// set, the CPU jumps to the interrupt vector and the request bit
// is cleared. The enable bit only gates servicing; it never
// clears a request.
type Service struct {
	// Flag is the interrupt request register (types.IF).
	Flag uint8
	// Enable is the interrupt enable register (types.IE).
	Enable uint8
	// IME is the master interrupt enable flag. It is not
	// memory-mapped; only the EI, DI and RETI instructions and
	// interrupt servicing itself touch it.
	IME bool
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if any interrupt is both requested
// and enabled, irrespective of IME.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag != 0
}

// Request requests the specified interrupt, by setting the
// corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the vector of the highest priority interrupt
// that is both requested and enabled, clearing its request bit,
// or 0 if there is none. Lower bit index means higher priority.
// At most one interrupt is resolved per call.
func (s *Service) Vector() uint16 {
	if s.Enable&s.Flag == 0 {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)

		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag &^= flag
			return uint16(0x0040 + uint16(i)*8)
		}
	}

	return 0
}
