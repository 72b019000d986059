// utility functions
package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// loop sleep times
const (
	dFaceSleep   = 50 * time.Millisecond
	dButtonSleep = 10 * time.Millisecond
)

type commChannels struct {
	quit     chan struct{}
	quitOnce *sync.Once
	face     chan faceMsg
}

type runtimeConfig struct {
	settings configSettings
	clock    clockwork.Clock
	comms    commChannels
	display  display
	buttons  buttons
	battery  battery
	logger   flogger
}

func initCommChannels() commChannels {
	return commChannels{
		quit:     make(chan struct{}),
		quitOnce: &sync.Once{},
		face:     make(chan faceMsg, 10),
	}
}

// shutdown closes quit; any goroutine (or the signal handler) may call it
func (c commChannels) shutdown() {
	c.quitOnce.Do(func() {
		close(c.quit)
	})
}

// send delivers a message to the face loop unless we are shutting down
func (c commChannels) send(msg faceMsg) bool {
	select {
	case <-c.quit:
		return false
	default:
	}

	select {
	case c.face <- msg:
		return true
	case <-c.quit:
		return false
	}
}

func newDisplay(settings configSettings) (display, error) {
	switch name := settings.GetString(sDisplay); name {
	case "term":
		return &termDisplay{}, nil
	case "oled":
		return &oledDisplay{}, nil
	case "log":
		return &logDisplay{}, nil
	default:
		return nil, fmt.Errorf("unknown display %q", name)
	}
}

func newButtons(settings configSettings) (buttons, error) {
	switch name := settings.GetString(sButtons); name {
	case "keys":
		return &keyButtons{}, nil
	case "rpio":
		return &rpioButtons{}, nil
	case "none":
		return &noButtons{}, nil
	default:
		return nil, fmt.Errorf("unknown buttons %q", name)
	}
}

func newBattery(settings configSettings) (battery, error) {
	switch name := settings.GetString(sBattery); name {
	case "ups":
		return &upsBattery{}, nil
	case "system":
		return newSystemBattery(), nil
	case "none":
		return &noBattery{}, nil
	default:
		return nil, fmt.Errorf("unknown battery %q", name)
	}
}

func initRuntime(settings configSettings, clock clockwork.Clock) (runtimeConfig, error) {
	rt := runtimeConfig{
		settings: settings,
		clock:    clock,
		comms:    initCommChannels(),
		logger:   newLogger(settings, "Main"),
	}

	var err error
	if rt.display, err = newDisplay(settings); err != nil {
		return rt, err
	}
	if rt.buttons, err = newButtons(settings); err != nil {
		return rt, err
	}
	if rt.battery, err = newBattery(settings); err != nil {
		return rt, err
	}
	return rt, nil
}
