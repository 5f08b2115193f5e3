package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrix-emu/dotmatrix/internal/cartridge"
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

func testPPU() (*PPU, *mmu.MMU, *interrupts.Service) {
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	b := mmu.NewMMU(cartridge.NewEmptyCartridge(), pad, irq, log.NewNullLogger())
	return New(b, irq), b, irq
}

func TestPPU_ScanlineAdvance(t *testing.T) {
	p, b, _ := testPPU()

	p.Advance(ScanlineCycles - 1)
	assert.Equal(t, uint8(0), b.IO(types.LY))

	p.Advance(1)
	assert.Equal(t, uint8(1), b.IO(types.LY))
}

func TestPPU_VBlankInterrupt(t *testing.T) {
	p, b, irq := testPPU()

	for line := 0; line < ScreenHeight; line++ {
		p.Advance(ScanlineCycles)
	}

	assert.Equal(t, uint8(ScreenHeight), b.IO(types.LY))
	assert.Equal(t, interrupts.VBlankFlag, irq.Flag&interrupts.VBlankFlag)
}

func TestPPU_ScanlineWraps(t *testing.T) {
	p, b, _ := testPPU()

	for line := 0; line <= 153; line++ {
		p.Advance(ScanlineCycles)
	}

	assert.Equal(t, uint8(0), b.IO(types.LY))
}

func TestPPU_DisabledHoldsScanline(t *testing.T) {
	p, b, irq := testPPU()
	b.SetIO(types.LCDC, 0x00)

	p.Advance(ScanlineCycles * 10)
	assert.Equal(t, uint8(0), b.IO(types.LY))
	assert.Zero(t, irq.Flag)

	// mode is pinned to V-Blank while the LCD is off
	assert.Equal(t, uint8(ModeVBlank), b.IO(types.STAT)&0x3)
}

func TestPPU_CoincidenceFlag(t *testing.T) {
	p, b, irq := testPPU()
	b.SetIO(types.LYC, 2)
	b.SetIO(types.STAT, types.Bit6) // coincidence interrupt enabled

	p.Advance(ScanlineCycles)
	assert.Zero(t, b.IO(types.STAT)&types.Bit2)

	p.Advance(ScanlineCycles)
	p.Advance(0) // re-derive status for the new scanline
	assert.NotZero(t, b.IO(types.STAT)&types.Bit2)
	assert.Equal(t, interrupts.LCDFlag, irq.Flag&interrupts.LCDFlag)
}

func TestPPU_ModeTransitions(t *testing.T) {
	p, b, _ := testPPU()

	// a fresh scanline starts in OAM search
	p.Advance(0)
	assert.Equal(t, uint8(ModeOAM), b.IO(types.STAT)&0x3)

	// once the OAM search budget has elapsed the transfer begins
	p.Advance(84)
	p.Advance(0)
	assert.Equal(t, uint8(ModeVRAM), b.IO(types.STAT)&0x3)

	// then the horizontal blank
	p.Advance(172)
	p.Advance(0)
	assert.Equal(t, uint8(ModeHBlank), b.IO(types.STAT)&0x3)
}

func TestPPU_BackgroundRendering(t *testing.T) {
	p, b, _ := testPPU()

	// tile 0, all lines: both bit planes set, colour index 3
	// everywhere. BGP maps index 3 to black at power on (0xFC).
	for i := uint16(0); i < 16; i++ {
		b.SetIO(0x8000+i, 0xFF)
	}

	p.Advance(ScanlineCycles) // renders the line the counter lands on

	fb := p.FrameBuffer()
	offset := 1 * ScreenWidth * 3
	assert.Equal(t, uint8(0x00), fb[offset])
	assert.Equal(t, uint8(0x00), fb[offset+1])
	assert.Equal(t, uint8(0x00), fb[offset+2])
}

func TestPPU_SpriteOffScreenDoesNotRender(t *testing.T) {
	p, b, _ := testPPU()
	b.SetIO(types.LCDC, 0x93) // LCD on, background and sprites on

	// sprite data: solid colour index 3
	for i := uint16(0); i < 16; i++ {
		b.SetIO(0x8010+i, 0xFF)
	}

	// sprite 0 at an off-screen X position
	b.SetIO(types.OAM, 16)    // Y = 0
	b.SetIO(types.OAM+1, 250) // X = 242, past the right edge
	b.SetIO(types.OAM+2, 1)   // tile 1
	b.SetIO(types.OAM+3, 0)

	p.Advance(ScanlineCycles)

	// the background renders but no sprite pixel may land anywhere
	fb := p.FrameBuffer()
	row := 1 * ScreenWidth * 3
	for x := 0; x < ScreenWidth; x++ {
		white := fb[row+x*3] == 0xFF && fb[row+x*3+1] == 0xFF && fb[row+x*3+2] == 0xFF
		assert.True(t, white, "pixel %d should be untouched background", x)
	}
}

func TestPPU_SpriteRendering(t *testing.T) {
	p, b, _ := testPPU()
	b.SetIO(types.LCDC, 0x93) // LCD on, background and sprites on
	b.SetIO(types.OBP0, 0xE4) // identity palette

	// tile 0 stays blank for the background, tile 1 is solid
	// colour index 3 for the sprite
	for i := uint16(0); i < 16; i++ {
		b.SetIO(0x8010+i, 0xFF)
	}

	b.SetIO(types.OAM, 16)  // Y = 0
	b.SetIO(types.OAM+1, 8) // X = 0
	b.SetIO(types.OAM+2, 1) // tile 1
	b.SetIO(types.OAM+3, 0)

	p.Advance(ScanlineCycles)

	fb := p.FrameBuffer()
	row := 1 * ScreenWidth * 3
	// colour index 3 through the identity palette is black
	assert.Equal(t, uint8(0x00), fb[row])
	assert.Equal(t, uint8(0xFF), fb[row+8*3], "pixel past the sprite is background")
}
