package main

import (
	"image"
	"testing"
	"time"

	"gotest.tools/assert"
)

var watchBounds = image.Rect(0, 0, 144, 168)

func TestAnalogMarks(t *testing.T) {
	shapes := analogFace(watchBounds, testStart)

	assert.Equal(t, len(shapes.marks), 12)
	for _, m := range shapes.marks {
		assert.Equal(t, m.radius, hourMarkRadius)
	}

	// 12, 3, 6 and 9 o'clock
	assert.Equal(t, shapes.marks[0].center, image.Pt(72, 20))
	assert.Equal(t, shapes.marks[3].center, image.Pt(136, 84))
	assert.Equal(t, shapes.marks[6].center, image.Pt(72, 148))
	assert.Equal(t, shapes.marks[9].center, image.Pt(8, 84))

	assert.Equal(t, shapes.center, dot{center: image.Pt(72, 84), radius: centerRadius})
}

func TestAnalogHands(t *testing.T) {
	center := image.Pt(72, 84)

	threeOClock := time.Date(2024, time.March, 5, 15, 0, 0, 0, time.UTC)
	shapes := analogFace(watchBounds, threeOClock)
	assert.Equal(t, shapes.hourHand, handLine{from: center, to: image.Pt(104, 84)})
	assert.Equal(t, shapes.minuteHand, handLine{from: center, to: image.Pt(72, 28)})

	halfPast := time.Date(2024, time.March, 5, 6, 30, 0, 0, time.UTC)
	shapes = analogFace(watchBounds, halfPast)
	assert.Equal(t, shapes.minuteHand.to, image.Pt(72, 140))

	quarterTo := time.Date(2024, time.March, 5, 6, 45, 0, 0, time.UTC)
	shapes = analogFace(watchBounds, quarterTo)
	assert.Equal(t, shapes.minuteHand.to, image.Pt(16, 84))
}

func TestHandTurns(t *testing.T) {
	// the hour hand moves with the minutes
	assert.Equal(t, hourTurn(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)), 0.0)
	assert.Equal(t, hourTurn(time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)), 0.0)
	assert.Equal(t, hourTurn(time.Date(2024, time.March, 5, 3, 0, 0, 0, time.UTC)), 0.25)
	assert.Equal(t, hourTurn(time.Date(2024, time.March, 5, 4, 30, 0, 0, time.UTC)), 270.0/720)

	// seconds are ignored
	assert.Equal(t, minuteTurn(time.Date(2024, time.March, 5, 4, 30, 59, 0, time.UTC)), 0.5)
}

func TestAnalogOffsetBounds(t *testing.T) {
	b := image.Rect(10, 20, 154, 188)
	shapes := analogFace(b, testStart)
	assert.Equal(t, shapes.center.center, image.Pt(82, 104))
	assert.Equal(t, shapes.marks[0].center, image.Pt(82, 40))
}
