package patterns

import "sort"

// Category groups patterns by their behavior under the Life rule.
type Category string

const (
	// Oscillator patterns return to their starting cells after a fixed period.
	Oscillator Category = "oscillator"
	// StillLife patterns never change.
	StillLife Category = "still-life"
	// Spaceship patterns repeat their shape displaced across the grid.
	Spaceship Category = "spaceship"
	// Gun patterns repeat while emitting spaceships.
	Gun Category = "gun"
	// Decorative patterns are shapes chosen for looks, not behavior.
	Decorative Category = "decorative"
	// Growth patterns are small seeds with long chaotic histories.
	Growth Category = "growth"
)

// Offset is a live cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named, immutable list of live-cell offsets.
type Pattern struct {
	Name     string
	Category Category
	cells    []Offset
}

// Cells returns a copy of the pattern's offsets.
func (p Pattern) Cells() []Offset {
	return append([]Offset(nil), p.cells...)
}

// Len returns the number of live cells in the pattern.
func (p Pattern) Len() int { return len(p.cells) }

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.cells {
		w = max(w, c.DX+1)
		h = max(h, c.DY+1)
	}
	return w, h
}

func pattern(name string, cat Category, xy ...int) Pattern {
	cells := make([]Offset, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		cells = append(cells, Offset{DX: xy[i], DY: xy[i+1]})
	}
	return Pattern{Name: name, Category: cat, cells: cells}
}

var catalog = buildCatalog()

func buildCatalog() map[string]Pattern {
	list := []Pattern{
		pattern("blinker", Oscillator, 0, 0, 1, 0, 2, 0),
		pattern("toad", Oscillator, 1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1),
		pattern("beacon", Oscillator, 0, 0, 1, 0, 0, 1, 3, 2, 2, 3, 3, 3),
		pattern("pulsar", Oscillator,
			2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10, 0,
			0, 2, 5, 2, 7, 2, 12, 2,
			0, 3, 5, 3, 7, 3, 12, 3,
			0, 4, 5, 4, 7, 4, 12, 4,
			2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10, 5,
			2, 7, 3, 7, 4, 7, 8, 7, 9, 7, 10, 7,
			0, 8, 5, 8, 7, 8, 12, 8,
			0, 9, 5, 9, 7, 9, 12, 9,
			0, 10, 5, 10, 7, 10, 12, 10,
			2, 12, 3, 12, 4, 12, 8, 12, 9, 12, 10, 12,
		),
		// The ten-cell row phase; it grows into the familiar ring and
		// returns here every 15 generations.
		pattern("pentadecathlon", Oscillator,
			0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9, 0,
		),

		pattern("block", StillLife, 0, 0, 0, 1, 1, 0, 1, 1),
		pattern("beehive", StillLife, 1, 0, 2, 0, 0, 1, 3, 1, 1, 2, 2, 2),
		pattern("loaf", StillLife, 1, 0, 2, 0, 0, 1, 3, 1, 1, 2, 3, 2, 2, 3),
		pattern("boat", StillLife, 0, 0, 1, 0, 0, 1, 2, 1, 1, 2),
		pattern("tub", StillLife, 1, 0, 0, 1, 2, 1, 1, 2),

		pattern("glider", Spaceship, 1, 0, 2, 1, 0, 2, 1, 2, 2, 2),
		pattern("lwss", Spaceship, 1, 0, 4, 0, 0, 1, 0, 2, 4, 2, 0, 3, 1, 3, 2, 3, 3, 3),
		pattern("mwss", Spaceship,
			3, 0, 1, 1, 5, 1, 0, 2, 0, 3, 5, 3,
			0, 4, 1, 4, 2, 4, 3, 4, 4, 4,
		),
		pattern("hwss", Spaceship,
			3, 0, 4, 0, 1, 1, 6, 1, 0, 2, 0, 3, 6, 3,
			0, 4, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4,
		),

		pattern("gosper-glider-gun", Gun,
			24, 0,
			22, 1, 24, 1,
			12, 2, 13, 2, 20, 2, 21, 2, 34, 2, 35, 2,
			11, 3, 15, 3, 20, 3, 21, 3, 34, 3, 35, 3,
			0, 4, 1, 4, 10, 4, 16, 4, 20, 4, 21, 4,
			0, 5, 1, 5, 10, 5, 14, 5, 16, 5, 17, 5, 22, 5, 24, 5,
			10, 6, 16, 6, 24, 6,
			11, 7, 15, 7,
			12, 8, 13, 8,
		),

		pattern("flower", Decorative,
			0, 0, 0, 4, 1, 1, 1, 3, 2, 2,
			3, 1, 3, 3, 4, 0, 4, 4,
			1, 2, 2, 1, 2, 3, 3, 2,
		),
		pattern("heart", Decorative,
			1, 0, 3, 0,
			0, 1, 1, 1, 2, 1, 3, 1, 4, 1,
			0, 2, 1, 2, 2, 2, 3, 2, 4, 2,
			1, 3, 2, 3, 3, 3,
			2, 4,
		),
		pattern("star", Decorative,
			2, 0,
			1, 1, 2, 1, 3, 1,
			0, 2, 1, 2, 2, 2, 3, 2, 4, 2,
			1, 3, 2, 3, 3, 3,
			2, 4,
		),

		pattern("r-pentomino", Growth, 1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
	}
	out := make(map[string]Pattern, len(list))
	for _, p := range list {
		out[p.Name] = p
	}
	return out
}

// Lookup returns the catalog pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names returns every catalog pattern name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the patterns in a category, sorted by name.
func ByCategory(cat Category) []Pattern {
	var out []Pattern
	for _, name := range Names() {
		if p := catalog[name]; p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}
