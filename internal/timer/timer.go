// Package timer provides the timer subsystem: a free-running
// divider and a counter whose frequency is selected by the
// control register. The counter raises the timer interrupt when
// it overflows.
package timer

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
)

// frequencies holds the cycles-per-tick counts selected by the
// low 2 bits of the control register.
//
//	00: 4096 Hz   (1024 cycles)
//	01: 262144 Hz (16 cycles)
//	10: 65536 Hz  (64 cycles)
//	11: 16384 Hz  (256 cycles)
var frequencies = [4]int{1024, 16, 64, 256}

// dividerCycles is the cycle quantum after which the visible
// divider register increments.
const dividerCycles = 256

// IO is the narrow register surface the timer uses to advance its
// memory-mapped registers. Going through it, rather than the
// normal write dispatch, keeps the divider's reset-on-write
// semantics reserved for external writes.
type IO interface {
	IO(address uint16) uint8
	SetIO(address uint16, value uint8)
}

// Controller advances the divider and the timer counter by the
// cycles each CPU step consumed.
type Controller struct {
	b   IO
	irq *interrupts.Service

	dividerCounter int
	counter        int // cycles until the next counter increment
}

// NewController returns a new timer controller.
func NewController(b IO, irq *interrupts.Service) *Controller {
	return &Controller{
		b:       b,
		irq:     irq,
		counter: frequencies[0],
	}
}

// Advance advances the timer by the given number of cycles.
func (c *Controller) Advance(cycles int) {
	c.updateDivider(cycles)

	if !c.enabled() {
		return
	}

	c.counter -= cycles
	for c.counter <= 0 {
		c.counter += frequencies[c.b.IO(types.TAC)&0x3]

		if tima := c.b.IO(types.TIMA); tima == 0xFF {
			// overflow reloads from the modulator, not zero
			c.b.SetIO(types.TIMA, c.b.IO(types.TMA))
			c.irq.Request(interrupts.TimerFlag)
		} else {
			c.b.SetIO(types.TIMA, tima+1)
		}
	}
}

// SetClockFrequency reloads the counter from the frequency table.
// The MMU calls it when a control register write changes the
// frequency selector.
func (c *Controller) SetClockFrequency() {
	c.counter = frequencies[c.b.IO(types.TAC)&0x3]
}

// updateDivider accumulates cycles into the divider and bumps the
// visible register once per quantum. The remainder carries over
// so that advancing in arbitrary chunks is equivalent to
// advancing all at once.
func (c *Controller) updateDivider(cycles int) {
	c.dividerCounter += cycles
	for c.dividerCounter >= dividerCycles {
		c.dividerCounter -= dividerCycles
		c.b.SetIO(types.DIV, c.b.IO(types.DIV)+1)
	}
}

// enabled reports whether bit 2 of the control register is set.
func (c *Controller) enabled() bool {
	return c.b.IO(types.TAC)&types.Bit2 != 0
}
