package main

import (
	"fmt"

	// gpio lib
	"github.com/stianeikeland/go-rpio"
)

type rpioButtons struct {
	buttons map[string]button
}

func (rb *rpioButtons) getButtons() *map[string]button {
	return &rb.buttons
}

func (rb *rpioButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	rb.buttons = make(map[string]button)

	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.rpin = rpio.Pin(v.pin)

		btn.rpin.Input()
		if v.pullup {
			btn.rpin.PullUp() // GND => button press
		} else {
			btn.rpin.PullDown() // +V => button press
		}

		btn.state = pressState{pressed: false, start: now, count: 0, changed: false}
		rb.buttons[k] = btn
		rt.logger.Printf("button %s on GPIO %d (pullup %v)", k, v.pin, v.pullup)
	}

	return nil
}

func (rb *rpioButtons) initButtons(settings configSettings) error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("could not open GPIO: %w", err)
	}
	return nil
}

func (rb *rpioButtons) closeButtons() {
	rpio.Close()
}

func (rb *rpioButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)
	for k, v := range rb.buttons {
		ret[k] = v.rpin.Read() // Read state from pin (High / Low)
	}

	return ret, nil
}
