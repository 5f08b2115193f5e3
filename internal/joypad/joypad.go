// Package joypad provides the state of the eight buttons. The
// MMU composes the P1 register from this state and the select
// bits written by the game.
package joypad

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

// Button represents a physical button.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right direction key.
	ButtonRight
	// ButtonLeft is the Left direction key.
	ButtonLeft
	// ButtonUp is the Up direction key.
	ButtonUp
	// ButtonDown is the Down direction key.
	ButtonDown
)

// State holds the pressed state of the buttons. The lower 4 bits
// hold the action buttons and the upper 4 bits the direction
// keys; a set bit means the button is held.
type State struct {
	State Button

	irq *interrupts.Service
}

// New returns a new joypad state.
func New(irq *interrupts.Service) *State {
	return &State{
		irq: irq,
	}
}

// Press presses a button and requests the joypad interrupt.
func (s *State) Press(button Button) {
	s.State = utils.SetBit(s.State, button)
	s.irq.Request(interrupts.JoypadFlag)
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State = utils.ClearBit(s.State, button)
}

// Actions returns the action button nibble (A, B, Select, Start),
// a set bit meaning held.
func (s *State) Actions() uint8 {
	return s.State & 0x0F
}

// Directions returns the direction key nibble (Right, Left, Up,
// Down), a set bit meaning held.
func (s *State) Directions() uint8 {
	return s.State >> 4 & 0x0F
}
