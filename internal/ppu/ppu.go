// Package ppu provides the graphics pipeline. It tracks the LCD
// mode with a cycle-based scanline counter, transitions through
// the four hardware modes per scanline, and renders background,
// window and sprites into a linear pixel buffer once per
// scanline boundary.
package ppu

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/interrupts"
	"github.com/dotmatrix-emu/dotmatrix/internal/mmu"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu/palette"
	"github.com/dotmatrix-emu/dotmatrix/internal/types"
	"github.com/dotmatrix-emu/dotmatrix/pkg/utils"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
	// FrameBufferSize is the size of the linear pixel buffer:
	// one byte per RGB channel per pixel, row-major.
	FrameBufferSize = ScreenWidth * ScreenHeight * 3

	// ScanlineCycles is the cycle budget of one scanline.
	ScanlineCycles = 456
	// maxScanline is the last scanline of the vertical blank
	// period, after which the scanline index wraps to 0.
	maxScanline = 153

	// mode2Bounds is the counter position below which the OAM
	// search mode ends (the first 80 cycles of the budget).
	mode2Bounds = ScanlineCycles - 80
	// mode3Bounds is the counter position below which the
	// transfer mode ends (the 172 cycles after OAM search).
	mode3Bounds = mode2Bounds - 172
)

// PPU is the graphics pipeline.
type PPU struct {
	b   *mmu.MMU
	irq *interrupts.Service

	// scanlineCounter counts down the cycles remaining in the
	// current scanline.
	scanlineCounter int

	fb [FrameBufferSize]uint8
}

// New returns a new PPU.
func New(b *mmu.MMU, irq *interrupts.Service) *PPU {
	return &PPU{
		b:               b,
		irq:             irq,
		scanlineCounter: ScanlineCycles,
	}
}

// FrameBuffer returns the linear pixel buffer. Values are
// restricted to the four shades of the active palette.
func (p *PPU) FrameBuffer() []uint8 {
	return p.fb[:]
}

// Advance advances the graphics pipeline by the given number of
// cycles.
func (p *PPU) Advance(cycles int) {
	p.setLCDStatus()

	if !p.lcdEnabled() {
		return
	}

	p.scanlineCounter -= cycles
	if p.scanlineCounter > 0 {
		return
	}
	p.scanlineCounter += ScanlineCycles

	// move on to the next scanline
	ly := p.b.IO(types.LY) + 1
	p.b.SetIO(types.LY, ly)

	switch {
	case ly == ScreenHeight:
		p.irq.Request(interrupts.VBlankFlag)
	case ly > maxScanline:
		p.b.SetIO(types.LY, 0)
	case ly < ScreenHeight:
		p.renderScanline()
	}
}

// setLCDStatus derives the mode bits of the status register from
// the scanline position, requests the LCD interrupt on enabled
// mode transitions, and maintains the coincidence flag.
func (p *PPU) setLCDStatus() {
	status := p.b.IO(types.STAT)

	if !p.lcdEnabled() {
		// pin the mode to V-Blank and restart scanline counting
		p.scanlineCounter = ScanlineCycles
		p.b.SetIO(types.LY, 0)
		p.b.SetIO(types.STAT, status&0xFC|ModeVBlank)
		return
	}

	ly := p.b.IO(types.LY)
	currentMode := status & 0x3

	var mode Mode
	var reqInt bool
	switch {
	case ly >= ScreenHeight:
		mode = ModeVBlank
		reqInt = status&types.Bit4 != 0
	case p.scanlineCounter >= mode2Bounds:
		mode = ModeOAM
		reqInt = status&types.Bit5 != 0
	case p.scanlineCounter >= mode3Bounds:
		mode = ModeVRAM
	default:
		mode = ModeHBlank
		reqInt = status&types.Bit3 != 0
	}

	// only an actual mode change raises the interrupt
	if reqInt && mode != currentMode {
		p.irq.Request(interrupts.LCDFlag)
	}

	if ly == p.b.IO(types.LYC) {
		status |= types.Bit2
		if status&types.Bit6 != 0 {
			p.irq.Request(interrupts.LCDFlag)
		}
	} else {
		status &^= types.Bit2
	}

	p.b.SetIO(types.STAT, status&0xFC|mode)
}

// lcdEnabled reports whether bit 7 of the control register is set.
func (p *PPU) lcdEnabled() bool {
	return p.b.IO(types.LCDC)&types.Bit7 != 0
}

// renderScanline renders the current scanline into the pixel
// buffer.
func (p *PPU) renderScanline() {
	control := p.b.IO(types.LCDC)

	if control&types.Bit0 != 0 {
		p.renderTiles(control)
	}
	if control&types.Bit1 != 0 {
		p.renderSprites(control)
	}
}

// renderTiles renders the background and window tiles of the
// current scanline.
func (p *PPU) renderTiles(control uint8) {
	ly := p.b.IO(types.LY)
	scrollY := p.b.IO(types.SCY)
	scrollX := p.b.IO(types.SCX)
	windowY := p.b.IO(types.WY)
	windowX := p.b.IO(types.WX) - 7

	// is the window visible on this scanline?
	usingWindow := control&types.Bit5 != 0 && windowY <= ly

	// which tile data region are we using?
	var tileData uint16 = 0x8800
	unsigned := false
	if control&types.Bit4 != 0 {
		tileData = 0x8000
		unsigned = true
	}

	// which tile map are we using?
	mapSelect := types.Bit3
	if usingWindow {
		mapSelect = types.Bit6
	}
	var tileMap uint16 = 0x9800
	if control&uint8(mapSelect) != 0 {
		tileMap = 0x9C00
	}

	// yPos is the row of the 256x256 background (or the window)
	// this scanline falls in
	var yPos uint8
	if usingWindow {
		yPos = ly - windowY
	} else {
		yPos = scrollY + ly
	}
	tileRow := uint16(yPos/8) * 32

	pal := palette.ByteToPalette(p.b.IO(types.BGP))

	for pixel := uint8(0); pixel < ScreenWidth; pixel++ {
		xPos := pixel + scrollX
		if usingWindow && pixel >= windowX {
			xPos = pixel - windowX
		}
		tileCol := uint16(xPos / 8)

		// resolve the tile index, signed or unsigned depending
		// on the addressing mode
		tileAddress := tileMap + tileRow + tileCol
		var tileLocation = tileData
		if unsigned {
			tileLocation += uint16(p.b.IO(tileAddress)) * 16
		} else {
			tileLocation += uint16(int16(int8(p.b.IO(tileAddress)))+128) * 16
		}

		// each line of the tile is two bytes of bit planes
		line := uint16(yPos%8) * 2
		data1 := p.b.IO(tileLocation + line)
		data2 := p.b.IO(tileLocation + line + 1)

		colourBit := 7 - xPos%8
		colourNum := utils.GetBit(data2, colourBit)<<1 | utils.GetBit(data1, colourBit)

		p.setPixel(int(pixel), int(ly), pal.GetColour(colourNum))
	}
}

// renderSprites renders the sprites overlapping the current
// scanline, honouring flips, palettes and background priority.
func (p *PPU) renderSprites(control uint8) {
	ly := int(p.b.IO(types.LY))

	ySize := 8
	if control&types.Bit2 != 0 {
		ySize = 16
	}

	for sprite := uint16(0); sprite < 40; sprite++ {
		index := sprite * 4
		yPos := int(p.b.IO(types.OAM+index)) - 16
		xPos := int(p.b.IO(types.OAM+index+1)) - 8
		tileLocation := p.b.IO(types.OAM + index + 2)
		attributes := p.b.IO(types.OAM + index + 3)

		if ly < yPos || ly >= yPos+ySize {
			continue
		}

		line := ly - yPos
		if utils.TestBit(attributes, 6) { // Y flip
			line = ySize - 1 - line
		}

		dataAddress := 0x8000 + uint16(tileLocation)*16 + uint16(line)*2
		data1 := p.b.IO(dataAddress)
		data2 := p.b.IO(dataAddress + 1)

		paletteAddress := types.OBP0
		if utils.TestBit(attributes, 4) {
			paletteAddress = types.OBP1
		}
		pal := palette.ByteToPalette(p.b.IO(paletteAddress))

		for tilePixel := 7; tilePixel >= 0; tilePixel-- {
			colourBit := uint8(tilePixel)
			if utils.TestBit(attributes, 5) { // X flip
				colourBit = 7 - colourBit
			}
			colourNum := utils.GetBit(data2, colourBit)<<1 | utils.GetBit(data1, colourBit)

			// colour 0 is transparent for sprites
			if colourNum == 0 {
				continue
			}

			pixel := xPos + 7 - tilePixel

			// behind-background sprites only show over shade 0
			if utils.TestBit(attributes, 7) && !p.isShadeZero(pixel, ly) {
				continue
			}

			p.setPixel(pixel, ly, pal.GetColour(colourNum))
		}
	}
}

// setPixel writes one pixel into the buffer. Out of range
// positions are silently dropped rather than wrapped.
func (p *PPU) setPixel(x, y int, colour [3]uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	offset := (y*ScreenWidth + x) * 3
	p.fb[offset] = colour[0]
	p.fb[offset+1] = colour[1]
	p.fb[offset+2] = colour[2]
}

// isShadeZero reports whether the pixel currently in the buffer
// holds the lightest shade of the active palette.
func (p *PPU) isShadeZero(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	offset := (y*ScreenWidth + x) * 3
	shade := palette.GetColour(0)
	return p.fb[offset] == shade[0] && p.fb[offset+1] == shade[1] && p.fb[offset+2] == shade[2]
}
