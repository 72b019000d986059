package main

import (
	"image"
	"sync"
)

// only the most recent frames are kept
const maxLogFrames = 64

// logDisplay records the frames it is asked to render, for tests and headless runs
type logDisplay struct {
	mu       sync.Mutex
	bounds   image.Rectangle
	open     bool
	frames   []frame
	rendered int
}

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	ld.bounds = image.Rect(0, 0, settings.GetInt(sWidth), settings.GetInt(sHeight))
	ld.open = true
	ld.frames = nil
	ld.rendered = 0
	return nil
}

func (ld *logDisplay) Bounds() image.Rectangle {
	return ld.bounds
}

func (ld *logDisplay) Render(f *frame) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	ld.rendered++
	ld.frames = append(ld.frames, *f)
	if len(ld.frames) > maxLogFrames {
		ld.frames = ld.frames[len(ld.frames)-maxLogFrames:]
	}
	return nil
}

func (ld *logDisplay) CloseDisplay() {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.open = false
}

func (ld *logDisplay) lastFrame() frame {
	ld.mu.Lock()
	defer ld.mu.Unlock()

	if len(ld.frames) == 0 {
		return frame{}
	}
	return ld.frames[len(ld.frames)-1]
}

func (ld *logDisplay) frameCount() int {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.rendered
}

func (ld *logDisplay) isOpen() bool {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.open
}
