package main

import (
	"image"
	"testing"

	"gotest.tools/assert"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type testOLED struct {
	bounds image.Rectangle
	drawn  image.Image
	draws  int
	halted bool
}

func (o *testOLED) Bounds() image.Rectangle {
	return o.bounds
}

func (o *testOLED) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	o.drawn = src
	o.draws++
	return nil
}

func (o *testOLED) Halt() error {
	o.halted = true
	return nil
}

func TestFitRect(t *testing.T) {
	panel := image.Rect(0, 0, 128, 64)

	// the tall watch face fits the height
	assert.Equal(t, fitRect(panel, image.Rect(0, 0, 144, 168)), image.Rect(37, 0, 91, 64))
	// a wide one fits the width
	assert.Equal(t, fitRect(panel, image.Rect(0, 0, 256, 64)), image.Rect(0, 16, 128, 48))
	assert.Equal(t, fitRect(panel, image.Rect(0, 0, 128, 64)), panel)
}

func TestOLEDRender(t *testing.T) {
	oled := &testOLED{bounds: image.Rect(0, 0, 128, 64)}
	od := &oledDisplay{}
	assert.NilError(t, od.attach(oled, testSettings.clone()))

	// the face keeps its own size
	assert.Equal(t, od.Bounds(), image.Rect(0, 0, 144, 168))

	// all white, so only the fitted area lights up
	b := od.Bounds()
	fr := frame{bounds: b, bars: []image.Rectangle{b}}
	assert.NilError(t, od.Render(&fr))
	assert.Equal(t, oled.draws, 1)

	img := oled.drawn
	assert.Equal(t, img.Bounds(), oled.bounds)
	assert.Assert(t, img.At(64, 32) == image1bit.On)
	assert.Assert(t, img.At(40, 10) == image1bit.On)
	assert.Assert(t, img.At(0, 0) == image1bit.Off)
	assert.Assert(t, img.At(127, 63) == image1bit.Off)

	// an empty frame clears it again
	fr = frame{bounds: b}
	assert.NilError(t, od.Render(&fr))
	assert.Equal(t, oled.draws, 2)
	assert.Assert(t, oled.drawn.At(64, 32) == image1bit.Off)

	od.CloseDisplay()
	assert.Assert(t, oled.halted)
}

func TestOLEDBadSize(t *testing.T) {
	settings := testSettings.clone()
	settings.settings[sWidth] = 0
	od := &oledDisplay{}
	assert.ErrorContains(t, od.attach(&testOLED{bounds: image.Rect(0, 0, 128, 64)}, settings), "bad display size")
}
