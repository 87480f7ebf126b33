package render

import "github.com/pkg/errors"

// ColorMode selects how live cells are colored.
type ColorMode int

const (
	// ColorCycle picks from the palette by screen region and generation, so
	// colors drift slowly across the board.
	ColorCycle ColorMode = iota
	// ColorAge picks from the palette by how long a cell has been alive.
	ColorAge
	// ColorSolid paints every live cell with the first palette entry.
	ColorSolid
)

func (m ColorMode) String() string {
	switch m {
	case ColorCycle:
		return "cycle"
	case ColorAge:
		return "age"
	case ColorSolid:
		return "solid"
	}
	return "unknown"
}

// ParseColorMode converts a mode name back to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "cycle":
		return ColorCycle, nil
	case "age":
		return ColorAge, nil
	case "solid":
		return ColorSolid, nil
	}
	return 0, errors.Errorf("unknown color mode %q", s)
}

const (
	// Black is the default dead-cell color.
	Black uint32 = 0x000000
	// Lavender is the single live color of the solid preset.
	Lavender uint32 = 0xe6e6fa
)

// FlowerPalette is the pastel set cycled by the showcase presets.
var FlowerPalette = []uint32{0xffd6ff, 0xe7c6ff, 0xc8b6ff, 0xb8c0ff, 0xbbd0ff}

// AgePalette runs from hot newborn cells to cool long-lived ones.
var AgePalette = []uint32{
	0xfff3b0, 0xffd166, 0xf4a261, 0xe76f51, 0xd1495b,
	0xb5179e, 0x7209b7, 0x560bad, 0x3a0ca3, 0x4361ee,
	0x4895ef, 0x4cc9f0,
}

// RGB splits a packed 0xRRGGBB value into its channels.
func RGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}
