package main

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// INA219 on a UPS hat
const (
	regBusVoltage  = 0x02
	regCurrent     = 0x04
	regCalibration = 0x05
	calValue       = 26868
	currentLSB     = 0.1524 // mA per bit
	cellEmpty      = 3.0    // volts
	cellRange      = 1.2    // volts from empty to full
)

type upsBattery struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

func (u *upsBattery) openBattery(settings configSettings) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("could not init I2C host: %w", err)
	}

	bus, err := i2creg.Open(settings.GetString(sUPSBus))
	if err != nil {
		return fmt.Errorf("could not open I2C bus: %w", err)
	}

	dev := &i2c.Dev{Bus: bus, Addr: uint16(settings.GetByte(sUPSAddr))}
	if _, err := readINA219(dev, regBusVoltage); err != nil {
		bus.Close()
		return fmt.Errorf("no UPS detected: %w", err)
	}

	u.bus = bus
	u.dev = dev
	return nil
}

func readINA219(dev *i2c.Dev, reg byte) (int, error) {
	cal := []byte{regCalibration, byte(calValue >> 8), byte(calValue & 0xFF)}
	if _, err := dev.Write(cal); err != nil {
		return 0, err
	}

	read := make([]byte, 2)
	if err := dev.Tx([]byte{reg}, read); err != nil {
		return 0, err
	}

	value := (int(read[0]) << 8) | int(read[1])
	if value > 32767 {
		value -= 65536
	}
	return value, nil
}

// batteryPercent maps the bus voltage register onto 0-100
func batteryPercent(raw int) int {
	voltage := float64(raw>>3) * 0.004
	percent := int((voltage - cellEmpty) / cellRange * 100)

	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

func (u *upsBattery) readCharge() (chargeState, error) {
	rawCurrent, err := readINA219(u.dev, regCurrent)
	if err != nil {
		return chargeState{}, err
	}
	rawVoltage, err := readINA219(u.dev, regBusVoltage)
	if err != nil {
		return chargeState{}, err
	}

	// negative current is discharging, positive is charging
	current := float64(rawCurrent) * currentLSB
	return chargeState{
		percent:  batteryPercent(rawVoltage),
		charging: current > 0,
		plugged:  current >= 0,
	}, nil
}

func (u *upsBattery) closeBattery() {
	if u.bus != nil {
		u.bus.Close()
	}
}
