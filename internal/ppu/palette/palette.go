// Package palette provides the 4-shade palettes the renderer maps
// colour indices through.
package palette

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original hardware.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette represents a palette: an array of 4 RGB shades indexed
// by the 2-bit colour number of the tile data.
type Palette struct {
	Colors [4][3]uint8
}

// Current is the currently selected palette.
var Current = Greyscale

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// CyclePalette selects the next palette in the list.
func CyclePalette() {
	Current = (Current + 1) % len(Palettes)
}

// GetColour returns the colour for the given index in the Current
// palette.
func GetColour(index uint8) [3]uint8 {
	return Palettes[Current].Colors[index]
}

// ByteToPalette creates a palette from a palette register byte,
// using the Current palette for the shades. Each pair of bits of
// the register selects the shade for one colour index.
func ByteToPalette(b byte) Palette {
	var palette Palette
	palette.Colors[0] = Palettes[Current].Colors[b&0x03]
	palette.Colors[1] = Palettes[Current].Colors[(b>>2)&0x03]
	palette.Colors[2] = Palettes[Current].Colors[(b>>4)&0x03]
	palette.Colors[3] = Palettes[Current].Colors[(b>>6)&0x03]
	return palette
}

// GetColour returns the colour for the given index.
func (p Palette) GetColour(index uint8) [3]uint8 {
	return p.Colors[index]
}
