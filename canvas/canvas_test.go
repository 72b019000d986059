package canvas

import (
	"image"
	"image/color"
	"testing"

	"gotest.tools/assert"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func newTestCanvas(t *testing.T, w, h int16) (*Canvas, *Buffer) {
	buf := NewBuffer(w, h)
	c, err := New(buf)
	assert.NilError(t, err)
	c.Clear(black)
	return c, buf
}

func lit(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				n++
			}
		}
	}
	return n
}

func TestBuffer(t *testing.T) {
	buf := NewBuffer(4, 3)
	w, h := buf.Size()
	assert.Equal(t, w, int16(4))
	assert.Equal(t, h, int16(3))

	buf.SetPixel(1, 2, white)
	assert.Equal(t, buf.At(1, 2), white)
	assert.Equal(t, buf.At(2, 1), color.RGBA{})

	// out of range is ignored
	buf.SetPixel(4, 0, white)
	buf.SetPixel(-1, 0, white)
	assert.Equal(t, buf.At(4, 0), color.RGBA{})

	assert.NilError(t, buf.Display())
	assert.Equal(t, buf.Flushes(), 1)
}

func TestNewBadSize(t *testing.T) {
	_, err := New(NewBuffer(0, 10))
	assert.ErrorContains(t, err, "bad display size")
}

func TestFillRectDisplay(t *testing.T) {
	c, buf := newTestCanvas(t, 10, 8)
	assert.Equal(t, c.Bounds(), image.Rect(0, 0, 10, 8))

	c.FillRect(image.Rect(2, 2, 4, 4), white)
	// nothing reaches the display until Display
	assert.Equal(t, buf.At(2, 2), color.RGBA{})

	assert.NilError(t, c.Display())
	assert.Equal(t, buf.Flushes(), 1)
	assert.Equal(t, buf.At(2, 2), white)
	assert.Equal(t, buf.At(3, 3), white)
	assert.Equal(t, buf.At(4, 4), black)
	assert.Equal(t, buf.At(1, 2), black)

	// clipped at the edges
	c.FillRect(image.Rect(8, 6, 20, 20), white)
	assert.Equal(t, lit(c.Image(), c.Bounds()), 4+4)
}

func TestDrawLine(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20)

	c.DrawLine(image.Pt(2, 5), image.Pt(12, 5), white)
	assert.Equal(t, lit(c.Image(), c.Bounds()), 11)

	c.Clear(black)
	c.DrawLine(image.Pt(10, 10), image.Pt(0, 0), white)
	assert.Equal(t, lit(c.Image(), c.Bounds()), 11)
	for i := 0; i <= 10; i++ {
		assert.Equal(t, c.Image().RGBAAt(i, i), white)
	}

	c.Clear(black)
	c.DrawLine(image.Pt(3, 3), image.Pt(3, 3), white)
	assert.Equal(t, lit(c.Image(), c.Bounds()), 1)
}

func TestFillCircle(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20)

	c.FillCircle(image.Pt(10, 10), 1, white)
	img := c.Image()
	assert.Equal(t, lit(img, c.Bounds()), 5)
	assert.Equal(t, img.RGBAAt(10, 10), white)
	assert.Equal(t, img.RGBAAt(11, 10), white)
	assert.Equal(t, img.RGBAAt(10, 9), white)
	assert.Equal(t, img.RGBAAt(11, 11), black)

	c.Clear(black)
	c.FillCircle(image.Pt(10, 10), 4, white)
	assert.Equal(t, img.RGBAAt(14, 10), white)
	assert.Equal(t, img.RGBAAt(10, 14), white)
	assert.Equal(t, img.RGBAAt(6, 10), white)
	assert.Equal(t, img.RGBAAt(15, 10), black)
	assert.Equal(t, img.RGBAAt(14, 14), black)

	// clipped at the edge
	c.Clear(black)
	c.FillCircle(image.Pt(0, 0), 2, white)
	assert.Equal(t, img.RGBAAt(0, 0), white)
	assert.Equal(t, img.RGBAAt(2, 0), white)
}

func TestCanvasIsDisplayer(t *testing.T) {
	c, _ := newTestCanvas(t, 12, 7)
	w, h := c.Size()
	assert.Equal(t, w, int16(12))
	assert.Equal(t, h, int16(7))

	c.SetPixel(3, 4, white)
	assert.Equal(t, c.Image().RGBAAt(3, 4), white)
	// off the frame is dropped
	c.SetPixel(12, 0, white)
	c.SetPixel(-1, 2, white)
	assert.Equal(t, lit(c.Image(), c.Bounds()), 1)
}

func TestDrawText(t *testing.T) {
	c, _ := newTestCanvas(t, 144, 168)
	r := image.Rect(0, 62, 144, 92)

	assert.NilError(t, c.DrawText(r, "12:34:56", FontBold24, AlignCenter, white, black))

	img := c.Image()
	assert.Assert(t, lit(img, r) > 0)
	// clipped to its box
	assert.Equal(t, lit(img, image.Rect(0, 0, 144, 62)), 0)
	assert.Equal(t, lit(img, image.Rect(0, 92, 144, 168)), 0)

	// centered, so both margins are dark
	assert.Equal(t, lit(img, image.Rect(0, 62, 10, 92)), 0)
	assert.Equal(t, lit(img, image.Rect(134, 62, 144, 92)), 0)
}

func TestDrawTextReplaces(t *testing.T) {
	c, _ := newTestCanvas(t, 144, 40)
	r := image.Rect(0, 0, 144, 30)

	assert.NilError(t, c.DrawText(r, "88:88:88", FontBold24, AlignLeft, white, black))
	wide := lit(c.Image(), r)
	assert.NilError(t, c.DrawText(r, "1", FontBold24, AlignLeft, white, black))
	assert.Assert(t, lit(c.Image(), r) < wide)
}

func TestDrawTextUnknownFont(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20)
	err := c.DrawText(c.Bounds(), "x", FontKey(42), AlignLeft, white, black)
	assert.ErrorContains(t, err, "unknown font INVALID")
}

func TestDrawImage(t *testing.T) {
	c, _ := newTestCanvas(t, 20, 20)

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, white)
	src.SetRGBA(1, 1, white)

	c.DrawImage(image.Rect(10, 10, 14, 14), src)
	img := c.Image()
	assert.Equal(t, lit(img, c.Bounds()), 8)
	assert.Equal(t, img.RGBAAt(10, 10), white)
	assert.Equal(t, img.RGBAAt(13, 13), white)
	assert.Equal(t, img.RGBAAt(12, 10).R, uint8(0))
}
