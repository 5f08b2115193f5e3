// Package gameboy provides an emulated DMG, assembled from the
// CPU, MMU, timer, interrupt and graphics subsystems, and driven
// one frame at a time.
package gameboy

import (
	"time"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/cpu"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emu/dotmatrix/internal/timer"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

const (
	// FrameRate is the frame rate of the emulator.
	FrameRate = 60
	// FrameCycles is the number of cycles executed per frame.
	FrameCycles = cpu.ClockSpeed / FrameRate
)

// GameBoy represents an emulated DMG.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	Timer      *timer.Controller
	Interrupts *interrupts.Service
	Joypad     *joypad.State

	Log log.Logger
}

// Frame runs the emulation for one frame worth of cycles. Each
// iteration executes one instruction, advances the timer and the
// graphics pipeline by its cycle cost, and services at most one
// interrupt.
func (g *GameBoy) Frame() {
	cycles := 0
	for cycles < FrameCycles {
		c := g.CPU.Step()
		cycles += c

		g.Timer.Advance(c)
		g.PPU.Advance(c)
		g.CPU.HandleInterrupts()
	}
}

// Start runs the emulation at the hardware frame rate until stop
// is closed, sending a copy of the pixel buffer down fb after
// every frame and applying button events from pressed and
// released between frames.
func (g *GameBoy) Start(fb chan<- []byte, pressed, released <-chan joypad.Button, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case b := <-pressed:
			g.Joypad.Press(b)
		case b := <-released:
			g.Joypad.Release(b)
		case <-ticker.C:
			g.Frame()

			frame := make([]byte, ppu.FrameBufferSize)
			copy(frame, g.PPU.FrameBuffer())
			select {
			case fb <- frame:
			default:
				// drop the frame rather than stall the emulation
			}
		}
	}
}

// FrameBuffer returns the current contents of the pixel buffer.
func (g *GameBoy) FrameBuffer() []uint8 {
	return g.PPU.FrameBuffer()
}

// Press presses the given button.
func (g *GameBoy) Press(button joypad.Button) {
	g.Joypad.Press(button)
}

// Release releases the given button.
func (g *GameBoy) Release(button joypad.Button) {
	g.Joypad.Release(button)
}

// NewGameBoy returns a new GameBoy with the given ROM loaded.
func NewGameBoy(rom []byte, opts ...Opt) *GameBoy {
	g := &GameBoy{
		Log: log.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart := cartridge.NewCartridge(rom)
	g.Log.Infof("loaded cartridge: %s", cart.Header())

	g.Interrupts = interrupts.NewService()
	g.Joypad = joypad.New(g.Interrupts)
	g.MMU = mmu.NewMMU(cart, g.Joypad, g.Interrupts, g.Log)
	g.Timer = timer.NewController(g.MMU, g.Interrupts)
	g.MMU.AttachTimer(g.Timer)
	g.PPU = ppu.New(g.MMU, g.Interrupts)
	g.CPU = cpu.NewCPU(g.MMU, g.Interrupts, g.Log)

	return g
}
