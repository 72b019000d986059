package main

import (
	"image"
	"image/color"

	"dscheirer.com/basicface/canvas"
)

var (
	colorWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// drawFrame paints the background shapes first, then the text layers on top
func drawFrame(c *canvas.Canvas, fr *frame, icon image.Image) error {
	c.Clear(colorBlack)

	if fr.charging && icon != nil {
		c.DrawImage(fr.iconRect, icon)
	}

	for _, r := range fr.bars {
		c.FillRect(r, colorWhite)
	}
	for _, d := range fr.dots {
		c.FillCircle(d.center, d.radius, colorWhite)
	}
	for _, h := range fr.hands {
		c.DrawLine(h.from, h.to, colorWhite)
	}

	for _, t := range fr.texts {
		if err := c.DrawText(t.frame, t.text, t.font, canvas.AlignCenter, colorWhite, colorBlack); err != nil {
			return err
		}
	}

	return c.Display()
}
