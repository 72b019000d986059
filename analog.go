package main

import (
	"image"
	"math"
	"time"
)

type dot struct {
	center image.Point
	radius int
}

type handLine struct {
	from, to image.Point
}

type analogShapes struct {
	marks      []dot
	center     dot
	hourHand   handLine
	minuteHand handLine
}

const (
	hourMarkRadius = 4
	centerRadius   = 1
)

// turn is a fraction of a full revolution, clockwise from 12 o'clock
func polarToX(turn float64, r int) int {
	return int(float64(r) * math.Sin(2*math.Pi*turn))
}

func polarToY(turn float64, r int) int {
	return int(float64(r) * -math.Cos(2*math.Pi*turn))
}

func faceCenter(bounds image.Rectangle) image.Point {
	return image.Pt(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2)
}

func polarPoint(bounds image.Rectangle, turn float64, r int) image.Point {
	return faceCenter(bounds).Add(image.Pt(polarToX(turn, r), polarToY(turn, r)))
}

func hourTurn(t time.Time) float64 {
	return float64((t.Hour()%12)*60+t.Minute()) / (12 * 60)
}

func minuteTurn(t time.Time) float64 {
	return float64(t.Minute()) / 60
}

func analogFace(bounds image.Rectangle, now time.Time) analogShapes {
	w := bounds.Dx()
	center := faceCenter(bounds)

	var shapes analogShapes

	markR := w/2 - 8
	for i := 0; i < 12; i++ {
		shapes.marks = append(shapes.marks, dot{
			center: polarPoint(bounds, float64(i)/12, markR),
			radius: hourMarkRadius,
		})
	}
	shapes.center = dot{center: center, radius: centerRadius}

	shapes.hourHand = handLine{from: center, to: polarPoint(bounds, hourTurn(now), w/4-4)}
	shapes.minuteHand = handLine{from: center, to: polarPoint(bounds, minuteTurn(now), w/2-16)}

	return shapes
}
