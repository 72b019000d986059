// Package canvas draws simple shapes, text and bitmaps into an RGBA frame
// and pushes the finished frame to a drivers.Displayer.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var _ drivers.Displayer = (*Canvas)(nil)

type Canvas struct {
	dst   drivers.Displayer
	img   *image.RGBA
	faces map[FontKey]font.Face
}

func New(dst drivers.Displayer) (*Canvas, error) {
	w, h := dst.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bad display size %dx%d", w, h)
	}

	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}

	return &Canvas{
		dst:   dst,
		img:   image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
		faces: faces,
	}, nil
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Image exposes the frame being drawn, mostly for tests.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size, SetPixel and Display make the canvas a drivers.Displayer of its own,
// so tinydraw can draw into the frame.
func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

// Display copies the frame to the display and asks it to show it.
func (c *Canvas) Display() error {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.dst.SetPixel(int16(x), int16(y), c.img.RGBAAt(x, y))
		}
	}
	return c.dst.Display()
}

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

func (c *Canvas) Clear(col color.Color) {
	c.FillRect(c.img.Bounds(), col)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	// only fails on an empty rect
	_ = tinydraw.FilledRectangle(c, int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), toRGBA(col))
}

func (c *Canvas) FillCircle(center image.Point, radius int, col color.Color) {
	tinydraw.FilledCircle(c, int16(center.X), int16(center.Y), int16(radius), toRGBA(col))
}

// DrawLine draws both end points.
func (c *Canvas) DrawLine(p0, p1 image.Point, col color.Color) {
	tinydraw.Line(c, int16(p0.X), int16(p0.Y), int16(p1.X), int16(p1.Y), toRGBA(col))
}

// DrawText fills r with bg and writes s on the first line of r, clipped to r.
func (c *Canvas) DrawText(r image.Rectangle, s string, key FontKey, align Alignment, fg, bg color.Color) error {
	face, ok := c.faces[key]
	if !ok {
		return fmt.Errorf("unknown font %s", key)
	}

	c.FillRect(r, bg)

	clip, ok := c.img.SubImage(r.Intersect(c.img.Bounds())).(*image.RGBA)
	if !ok || clip.Bounds().Empty() {
		return nil
	}

	width := font.MeasureString(face, s).Ceil()
	x := r.Min.X
	switch align {
	case AlignCenter:
		x += (r.Dx() - width) / 2
	case AlignRight:
		x += r.Dx() - width
	}

	d := font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, r.Min.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return nil
}

// DrawImage scales img into r.
func (c *Canvas) DrawImage(r image.Rectangle, img image.Image) {
	draw.NearestNeighbor.Scale(c.img, r, img, img.Bounds(), draw.Src, nil)
}
