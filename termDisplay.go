package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/nsf/termbox-go"

	"dscheirer.com/basicface/canvas"
)

// termDisplay simulates the watch screen in a terminal, two pixels per cell
type termDisplay struct {
	buf  *canvas.Buffer
	cvs  *canvas.Canvas
	icon image.Image
}

func (td *termDisplay) OpenDisplay(settings configSettings) error {
	w, h := settings.GetInt(sWidth), settings.GetInt(sHeight)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad display size %dx%d", w, h)
	}

	var err error
	td.buf = canvas.NewBuffer(int16(w), int16(h))
	if td.cvs, err = canvas.New(td.buf); err != nil {
		return err
	}
	if td.icon, err = loadChargingIcon(); err != nil {
		return err
	}

	return termOpen()
}

func (td *termDisplay) Bounds() image.Rectangle {
	return td.cvs.Bounds()
}

func lit(c color.RGBA) bool {
	// luma, close enough for a monochrome face
	return int(c.R)*299+int(c.G)*587+int(c.B)*114 >= 128*1000
}

func cellColor(on bool) termbox.Attribute {
	if on {
		return termbox.ColorWhite
	}
	return termbox.ColorBlack
}

func (td *termDisplay) Render(f *frame) error {
	if err := drawFrame(td.cvs, f, td.icon); err != nil {
		return err
	}

	w, h := td.buf.Size()
	for y := int16(0); y < h; y += 2 {
		for x := int16(0); x < w; x++ {
			top := lit(td.buf.At(x, y))
			bottom := lit(td.buf.At(x, y+1))
			termbox.SetCell(int(x), int(y/2), '▀', cellColor(top), cellColor(bottom))
		}
	}
	return termbox.Flush()
}

func (td *termDisplay) CloseDisplay() {
	termClose()
}
