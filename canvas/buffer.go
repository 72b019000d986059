package canvas

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Buffer is an in-memory drivers.Displayer
type Buffer struct {
	w, h    int16
	pix     []color.RGBA
	flushes int
}

var _ drivers.Displayer = (*Buffer)(nil)

func NewBuffer(w, h int16) *Buffer {
	return &Buffer{w: w, h: h, pix: make([]color.RGBA, int(w)*int(h))}
}

func (b *Buffer) Size() (x, y int16) {
	return b.w, b.h
}

func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.pix[int(y)*int(b.w)+int(x)] = c
}

func (b *Buffer) Display() error {
	b.flushes++
	return nil
}

// At returns the pixel last set at x, y
func (b *Buffer) At(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.RGBA{}
	}
	return b.pix[int(y)*int(b.w)+int(x)]
}

// Flushes counts calls to Display.
func (b *Buffer) Flushes() int {
	return b.flushes
}
