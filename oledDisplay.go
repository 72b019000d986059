package main

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"dscheirer.com/basicface/canvas"
)

// the parts of ssd1306.Dev we use
type oledDevice interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}

// oledPanel holds a face sized frame and shrinks it onto the panel on Display
type oledPanel struct {
	dev   oledDevice
	frame *image.RGBA
	out   *image1bit.VerticalLSB
	fit   image.Rectangle
}

// fitRect is the largest rect with src's aspect ratio, centered in dst
func fitRect(dst, src image.Rectangle) image.Rectangle {
	w, h := dst.Dx(), src.Dy()*dst.Dx()/src.Dx()
	if h > dst.Dy() {
		w, h = src.Dx()*dst.Dy()/src.Dy(), dst.Dy()
	}
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func newOLEDPanel(dev oledDevice, w, h int) *oledPanel {
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	out := image1bit.NewVerticalLSB(dev.Bounds())
	return &oledPanel{
		dev:   dev,
		frame: frame,
		out:   out,
		fit:   fitRect(out.Bounds(), frame.Bounds()),
	}
}

func (p *oledPanel) Size() (x, y int16) {
	b := p.frame.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (p *oledPanel) SetPixel(x, y int16, c color.RGBA) {
	p.frame.SetRGBA(int(x), int(y), c)
}

func (p *oledPanel) Display() error {
	draw.Draw(p.out, p.out.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(p.out, p.fit, p.frame, p.frame.Bounds(), draw.Src, nil)
	return p.dev.Draw(p.dev.Bounds(), p.out, image.Point{})
}

// oledDisplay drives an SSD1306 on I2C, the face is scaled to fit
type oledDisplay struct {
	bus   i2c.BusCloser
	dev   oledDevice
	panel *oledPanel
	cvs   *canvas.Canvas
	icon  image.Image
}

func (od *oledDisplay) OpenDisplay(settings configSettings) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("could not init I2C host: %w", err)
	}

	bus, err := i2creg.Open(settings.GetString(sOLEDBus))
	if err != nil {
		return fmt.Errorf("could not open I2C bus: %w", err)
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		bus.Close()
		return fmt.Errorf("no OLED detected: %w", err)
	}
	od.bus = bus

	return od.attach(dev, settings)
}

func (od *oledDisplay) attach(dev oledDevice, settings configSettings) error {
	w, h := settings.GetInt(sWidth), settings.GetInt(sHeight)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad display size %dx%d", w, h)
	}

	var err error
	od.dev = dev
	od.panel = newOLEDPanel(dev, w, h)
	if od.cvs, err = canvas.New(od.panel); err != nil {
		return err
	}
	if od.icon, err = loadChargingIcon(); err != nil {
		return err
	}
	return nil
}

func (od *oledDisplay) Bounds() image.Rectangle {
	return od.cvs.Bounds()
}

func (od *oledDisplay) Render(f *frame) error {
	return drawFrame(od.cvs, f, od.icon)
}

func (od *oledDisplay) CloseDisplay() {
	if od.dev != nil {
		od.dev.Halt()
	}
	if od.bus != nil {
		od.bus.Close()
	}
}
