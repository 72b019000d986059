package main

import (
	"time"

	"github.com/stianeikeland/go-rpio"
)

// check the press state, and return the press state
type pressState struct {
	pressed bool      // is it pressed?
	start   time.Time // when did this state start?
	count   int       // # of whole seconds since it started
	changed bool      // did the above data change at all?
}

type button struct {
	button buttonMap
	rpin   rpio.Pin
	state  pressState
}

// raw pin level for a pressed or released button, based on the pullup value
func pinState(bm buttonMap, pressed bool) rpio.State {
	if bm.pullup {
		// GND => button press
		if pressed {
			return rpio.Low
		}
		return rpio.High
	}
	if pressed {
		return rpio.High
	}
	return rpio.Low
}

func checkButtons(rt runtimeConfig) (map[string]button, error) {
	now := rt.clock.Now()

	btns := rt.buttons.getButtons()
	results, err := rt.buttons.readButtons(rt)
	if err != nil {
		return nil, err
	}

	for k, v := range *btns {
		btn := v
		btn.state.changed = false

		res, ok := results[k]
		if !ok {
			continue
		}
		down := res == pinState(v.button, true)

		if down {
			if btn.state.pressed {
				// no button state change, update the duration count
				btn.state.count = int(now.Sub(btn.state.start) / time.Second)
				if v.state.count != btn.state.count {
					btn.state.changed = true
				}
			} else {
				// just noticed it was pressed
				btn.state = pressState{pressed: true, start: now, count: 0, changed: true}
			}
		} else if btn.state.pressed {
			// just noticed the release
			btn.state = pressState{pressed: false, start: now, count: 0, changed: true}
		}
		if btn.state.changed {
			rt.logger.Debugf("button %s changed state: %+v", k, btn.state)
		}
		(*btns)[k] = btn
	}

	return *btns, nil
}

func startWatchButtons(rt runtimeConfig) {
	rt.logger = newLogger(rt.settings, "Buttons")
	wg.Add(1)
	go func() {
		defer wg.Done()
		runWatchButtons(rt)
	}()
}

func runWatchButtons(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("exiting runWatchButtons")
	}()

	settings := rt.settings
	comms := rt.comms
	err := rt.buttons.initButtons(settings)
	if err != nil {
		rt.logger.Println(err.Error())
		comms.shutdown()
		return
	}

	// we now should defer the closeButtons call to when this function exists
	defer rt.buttons.closeButtons()

	pins := make(map[string]buttonMap)
	for _, name := range settings.GetAllButtonNames() {
		pins[name] = settings.GetButtonMap(name)
	}

	err = rt.buttons.setupButtons(pins, rt)
	if err != nil {
		rt.logger.Println(err.Error())
		comms.shutdown()
		return
	}

	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from runWatchButtons")
			return
		default:
		}

		newButtons, err := checkButtons(rt)
		if err != nil {
			// we're done
			rt.logger.Printf("quit from runWatchButtons: %v", err)
			comms.shutdown()
			return
		}

		for k, v := range newButtons {
			// single clicks only, holding a button does nothing more
			if !v.state.changed || !v.state.pressed || v.state.count != 0 {
				continue
			}
			b := buttonForSetting(k)
			if b == buttonNone {
				rt.logger.Printf("Unhandled button %s", k)
				continue
			}
			rt.logger.Debugf("sending %s button message", b)
			if !comms.send(buttonPressMsg(b)) {
				return
			}
		}

		rt.clock.Sleep(dButtonSleep)
	}
}
