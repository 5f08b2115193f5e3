package gameboy

import (
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// Opt applies a configuration option to a GameBoy.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its
// components.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Log = l
	}
}

// Debug enables debug logging.
func Debug() Opt {
	return func(gb *GameBoy) {
		if l, ok := gb.Log.(log.Leveler); ok {
			l.SetLevel(log.DebugLevel)
		}
	}
}
