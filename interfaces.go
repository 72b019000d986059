package main

import (
	"image"

	"github.com/stianeikeland/go-rpio"
)

type buttons interface {
	readButtons(rt runtimeConfig) (map[string]rpio.State, error)
	setupButtons(pins map[string]buttonMap, rt runtimeConfig) error
	initButtons(settings configSettings) error
	closeButtons()
	getButtons() *map[string]button
}

type display interface {
	OpenDisplay(settings configSettings) error
	Bounds() image.Rectangle
	Render(f *frame) error
	CloseDisplay()
}

type battery interface {
	openBattery(settings configSettings) error
	readCharge() (chargeState, error)
	closeBattery()
}
