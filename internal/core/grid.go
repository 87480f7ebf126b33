package core

// MaxAge is the largest age an aged cell can reach; increments saturate here.
const MaxAge = ^uint8(0)

// Grid stores a toroidal 2D grid of byte-sized cell states in row-major order.
// A zero cell is dead; any other value is alive.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a dead grid with the given dimensions. Callers are
// expected to validate dimensions beforehand.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the raw state of the cell at the wrapped coordinates.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Spawn marks the cell at the wrapped coordinates alive. Cells that are
// already alive keep their state.
func (g *Grid) Spawn(x, y int) {
	x, y = g.Wrap(x, y)
	idx := y*g.W + x
	if g.data[idx] == 0 {
		g.data[idx] = 1
	}
}

// Set marks an in-bounds cell alive and reports whether it did. Out-of-range
// coordinates are ignored rather than wrapped.
func (g *Grid) Set(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	idx := y*g.W + x
	if g.data[idx] == 0 {
		g.data[idx] = 1
	}
	return true
}

// LiveNeighbors counts non-zero cells among the eight wrapped neighbors of
// (x, y).
func (g *Grid) LiveNeighbors(x, y int) int {
	w, h := g.W, g.H
	x, y = g.Wrap(x, y)
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			if g.data[row+nx] != 0 {
				neighbors++
			}
		}
	}
	return neighbors
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Swap installs next as the grid's cell data and returns the previous slice
// for reuse. next must hold W*H cells.
func (g *Grid) Swap(next []uint8) []uint8 {
	if len(next) != len(g.data) {
		return next
	}
	prev := g.data
	g.data = next
	return prev
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
