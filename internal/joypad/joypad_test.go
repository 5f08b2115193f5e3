package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
)

func TestJoypad_PressRequestsInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	pad := New(irq)

	pad.Press(ButtonStart)
	assert.Equal(t, interrupts.JoypadFlag, irq.Flag)
}

func TestJoypad_Nibbles(t *testing.T) {
	pad := New(interrupts.NewService())

	pad.Press(ButtonA)
	pad.Press(ButtonStart)
	pad.Press(ButtonUp)

	assert.Equal(t, uint8(0b1001), pad.Actions())
	assert.Equal(t, uint8(0b0100), pad.Directions())

	pad.Release(ButtonA)
	assert.Equal(t, uint8(0b1000), pad.Actions())
	assert.Equal(t, uint8(0b0100), pad.Directions())
}

func TestJoypad_ReleaseWithoutPress(t *testing.T) {
	pad := New(interrupts.NewService())

	pad.Release(ButtonB)
	assert.Zero(t, pad.State)
}
