//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a packed pixel buffer into an ebiten image each frame.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a canvas of w×h pixels.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads pixels and draws them at the origin of dst.
func (p *Painter) Blit(dst *ebiten.Image, pixels []uint32) {
	if len(pixels) != p.w*p.h {
		return
	}
	ToRGBA(p.buf, pixels)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, nil)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
