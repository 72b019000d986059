package main

import "fmt"

type faceMsg struct {
	id  int
	val interface{}
}

const (
	eButton = iota
	eBattery
)

type faceButton uint8

const (
	buttonNone faceButton = iota
	buttonUp
	buttonSelect
	buttonDown
)

func (b faceButton) String() string {
	switch b {
	case buttonNone:
		return "none"
	case buttonUp:
		return "up"
	case buttonSelect:
		return "select"
	case buttonDown:
		return "down"
	default:
		return "INVALID"
	}
}

// maps a settings key to the button it configures
func buttonForSetting(name string) faceButton {
	switch name {
	case sUpBtn:
		return buttonUp
	case sSelectBtn:
		return buttonSelect
	case sDownBtn:
		return buttonDown
	default:
		return buttonNone
	}
}

// channel messaging functions
func buttonPressMsg(b faceButton) faceMsg {
	return faceMsg{id: eButton, val: b}
}

func batteryStateMsg(cs chargeState) faceMsg {
	return faceMsg{id: eBattery, val: cs}
}

func toFaceButton(val interface{}) (faceButton, error) {
	switch v := val.(type) {
	case faceButton:
		return v, nil
	default:
		return buttonNone, fmt.Errorf("Bad type: %T", v)
	}
}

func toChargeState(val interface{}) (chargeState, error) {
	switch v := val.(type) {
	case chargeState:
		return v, nil
	default:
		return chargeState{}, fmt.Errorf("Bad type: %T", v)
	}
}
