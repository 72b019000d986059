package main

import (
	"errors"
	"fmt"
	"math"

	osbattery "github.com/distatus/battery"
)

// systemBattery asks the OS for a laptop style battery (sysfs on linux)
type systemBattery struct {
	index int
	get   func(idx int) (*osbattery.Battery, error)
}

func newSystemBattery() *systemBattery {
	return &systemBattery{get: osbattery.Get}
}

func (sb *systemBattery) openBattery(settings configSettings) error {
	sb.index = settings.GetInt(sBatteryIndex)
	if _, err := sb.readCharge(); err != nil {
		return err
	}
	return nil
}

// usable is true when the fields we need were read, even if others were not
func usable(err error) bool {
	if err == nil {
		return true
	}
	var partial osbattery.ErrPartial
	if !errors.As(err, &partial) {
		return false
	}
	return partial.State == nil && partial.Current == nil && partial.Full == nil
}

func (sb *systemBattery) readCharge() (chargeState, error) {
	b, err := sb.get(sb.index)
	if !usable(err) {
		return chargeState{}, fmt.Errorf("could not read battery %d: %w", sb.index, err)
	}
	if b == nil || b.Full <= 0 {
		return chargeState{}, fmt.Errorf("battery %d reports no capacity", sb.index)
	}

	percent := int(math.Round(b.Current / b.Full * 100))
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return chargeState{
		percent:  percent,
		charging: b.State == osbattery.Charging,
		plugged:  b.State == osbattery.Charging || b.State == osbattery.Full,
	}, nil
}

func (sb *systemBattery) closeBattery() {
}
