package main

import (
	"image"
	"time"

	"dscheirer.com/basicface/canvas"
)

// charging icon size, anchored to the top right corner
const (
	iconWidth  = 42
	iconHeight = 28
)

type textLayer struct {
	frame  image.Rectangle
	text   string
	font   canvas.FontKey
	hidden bool
}

// frame is everything needed to paint one redraw
type frame struct {
	bounds   image.Rectangle
	view     viewID
	charging bool
	iconRect image.Rectangle
	bars     []image.Rectangle
	dots     []dot
	hands    []handLine
	texts    []textLayer
}

// text of the visible layer at the given rect, or "" if there is none
func (f *frame) textAt(r image.Rectangle) string {
	for _, t := range f.texts {
		if t.frame == r {
			return t.text
		}
	}
	return ""
}

type face struct {
	rt       runtimeConfig
	bounds   image.Rectangle
	views    viewRing
	timer    stopwatch
	charging bool
	lastTick time.Time

	timeLayer  *textLayer
	dateLayer  *textLayer
	timerLayer *textLayer
}

func timeLayerRect(b image.Rectangle) image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y+62, b.Max.X, b.Min.Y+62+30)
}

func dateLayerRect(b image.Rectangle) image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y+94, b.Max.X, b.Min.Y+94+18)
}

func timerLayerRect(b image.Rectangle) image.Rectangle {
	return image.Rect(b.Min.X, b.Min.Y+72, b.Max.X, b.Min.Y+72+30)
}

func chargingIconRect(b image.Rectangle) image.Rectangle {
	return image.Rect(b.Max.X-iconWidth, b.Min.Y, b.Max.X, b.Min.Y+iconHeight)
}

// the two separator bars around the digital time and date
func mainClockBars(b image.Rectangle) []image.Rectangle {
	return []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y+54, b.Max.X, b.Min.Y+54+2),
		image.Rect(b.Min.X, b.Min.Y+118, b.Max.X, b.Min.Y+118+2),
	}
}

func newFace(rt runtimeConfig, bounds image.Rectangle) *face {
	return &face{
		rt:         rt,
		bounds:     bounds,
		views:      viewRing{cur: viewMain},
		timeLayer:  &textLayer{frame: timeLayerRect(bounds), text: timePlaceholder, font: canvas.FontBold24},
		dateLayer:  &textLayer{frame: dateLayerRect(bounds), text: datePlaceholder, font: canvas.FontRegular14},
		timerLayer: &textLayer{frame: timerLayerRect(bounds), text: timerZero, font: canvas.FontBold24, hidden: true},
	}
}

func (f *face) view() viewID {
	return f.views.cur
}

func (f *face) layers() []*textLayer {
	return []*textLayer{f.timeLayer, f.dateLayer, f.timerLayer}
}

func (f *face) viewLayers(v viewID) []*textLayer {
	switch v {
	case viewMain:
		return []*textLayer{f.timeLayer, f.dateLayer}
	case viewTimer:
		return []*textLayer{f.timerLayer}
	default:
		return nil
	}
}

// closeView hides the layers of the current view
func (f *face) closeView() {
	for _, l := range f.viewLayers(f.view()) {
		l.hidden = true
	}
}

// openView shows the layers of the current view
func (f *face) openView() {
	f.rt.logger.Debugf("Switching to view: %d", f.view())
	f.rt.logger.Debugf("view %d is %s", f.view(), f.view())
	for _, l := range f.viewLayers(f.view()) {
		l.hidden = false
	}
}

func (f *face) nextView() {
	f.closeView()
	f.views.next()
	f.openView()
}

func (f *face) prevView() {
	f.closeView()
	f.views.prev()
	f.openView()
}

// updateTimer refreshes the timer text when it is visible and running
func (f *face) updateTimer(now time.Time) {
	if f.view() == viewTimer && f.timer.state == timerRunning {
		f.timerLayer.text = formatElapsed(f.timer.elapsed(now))
	}
}

func (f *face) timerToggle() {
	now := f.rt.clock.Now()
	switch f.timer.state {
	case timerReset:
		f.rt.logger.Debugf("Timer Started")
	case timerRunning:
		f.rt.logger.Debugf("Timer Stopped")
		f.updateTimer(now)
	case timerIdle:
		f.rt.logger.Debugf("Timer Reset")
		f.timerLayer.text = timerZero
	}
	f.timer.toggle(now)
}

func (f *face) updateTime(now time.Time) {
	f.timeLayer.text = formatClockTime(now, f.rt.settings.GetBool(sClock24h))
	f.dateLayer.text = formatDate(now)
}

// tick runs the once-per-second update, returns true when a new second started
func (f *face) tick() bool {
	now := f.rt.clock.Now()
	sec := now.Truncate(time.Second)
	if sec.Equal(f.lastTick) {
		return false
	}
	f.lastTick = sec
	f.updateTime(now)
	f.updateTimer(now)
	return true
}

func (f *face) pressButton(b faceButton) {
	switch b {
	case buttonUp:
		f.prevView()
	case buttonDown:
		f.nextView()
	case buttonSelect:
		if f.view() == viewTimer {
			f.timerToggle()
		}
	}
}

func (f *face) setCharge(cs chargeState) {
	f.charging = cs.charging
	f.rt.logger.Debugf("Battery State Change.  Charging: %v", f.charging)
	f.rt.logger.Debugf("battery at %s", cs)
}

func (f *face) compose() frame {
	fr := frame{
		bounds:   f.bounds,
		view:     f.view(),
		charging: f.charging,
	}

	if f.charging {
		fr.iconRect = chargingIconRect(f.bounds)
	}

	switch f.view() {
	case viewMain:
		fr.bars = mainClockBars(f.bounds)
	case viewAnalog:
		shapes := analogFace(f.bounds, f.rt.clock.Now())
		fr.dots = append(fr.dots, shapes.marks...)
		fr.dots = append(fr.dots, shapes.center)
		fr.hands = []handLine{shapes.hourHand, shapes.minuteHand}
	}

	for _, l := range f.layers() {
		if !l.hidden {
			fr.texts = append(fr.texts, *l)
		}
	}
	return fr
}

func (f *face) redraw() {
	fr := f.compose()
	if err := f.rt.display.Render(&fr); err != nil {
		f.rt.logger.Printf("Error: %s", err.Error())
	}
}
