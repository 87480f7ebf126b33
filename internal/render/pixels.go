package render

// Frame is everything needed to paint one magnified image of the grid.
type Frame struct {
	Cells      []uint8
	W, H       int
	CellSize   int
	Generation int
	Mode       ColorMode
	Palette    []uint32
	Background uint32
}

// BufferLen returns the pixel count of the magnified canvas.
func BufferLen(w, h, cellSize int) int {
	return w * cellSize * h * cellSize
}

// Fill paints every cell of f into buf as a CellSize×CellSize block. buf must
// hold BufferLen(f.W, f.H, f.CellSize) pixels; shorter buffers are left
// untouched.
func Fill(buf []uint32, f Frame) {
	cs := f.CellSize
	if cs <= 0 || len(f.Cells) < f.W*f.H || len(buf) < BufferLen(f.W, f.H, cs) {
		return
	}
	stride := f.W * cs
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			col := cellColor(f, x, y, f.Cells[y*f.W+x])
			base := y*cs*stride + x*cs
			for dy := 0; dy < cs; dy++ {
				row := buf[base+dy*stride : base+dy*stride+cs]
				for dx := range row {
					row[dx] = col
				}
			}
		}
	}
}

func cellColor(f Frame, x, y int, state uint8) uint32 {
	if state == 0 {
		return f.Background
	}
	n := len(f.Palette)
	if n == 0 {
		return f.Background
	}
	switch f.Mode {
	case ColorAge:
		return f.Palette[int(state-1)%n]
	case ColorSolid:
		return f.Palette[0]
	default:
		return f.Palette[(x/20+y/20+f.Generation/10)%n]
	}
}

// ToRGBA converts packed 0xRRGGBB pixels into opaque RGBA bytes in dst,
// which must hold 4*len(src) bytes.
func ToRGBA(dst []byte, src []uint32) {
	if len(dst) < 4*len(src) {
		return
	}
	for i, c := range src {
		base := i * 4
		dst[base+0], dst[base+1], dst[base+2] = RGB(c)
		dst[base+3] = 0xff
	}
}
