package main

import (
	"errors"
	"time"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/stianeikeland/go-rpio"
)

const dKeyPoll = 100 * time.Millisecond

var errExitKey = errors.New("exit key pressed")

// keyTaps turns typed keys into button levels. Every key is one press,
// and a poll with everything up always follows a press so repeats count.
type keyTaps struct {
	pending []rune
	down    bool
}

func (kt *keyTaps) add(ch rune) {
	kt.pending = append(kt.pending, ch)
}

func (kt *keyTaps) waiting() bool {
	return kt.down || len(kt.pending) > 0
}

func keyMatches(bm buttonMap, ch rune) bool {
	return ch != 0 && bm.key != "" && rune(bm.key[0]) == ch
}

// states gives the levels for the next poll
func (kt *keyTaps) states(btns map[string]button) map[string]rpio.State {
	ret := make(map[string]rpio.State, len(btns))
	for k, v := range btns {
		ret[k] = pinState(v.button, false)
	}

	if kt.down {
		kt.down = false
		return ret
	}

	for len(kt.pending) > 0 {
		ch := kt.pending[0]
		kt.pending = kt.pending[1:]
		for k, v := range btns {
			if keyMatches(v.button, ch) {
				ret[k] = pinState(v.button, true)
				kt.down = true
			}
		}
		if kt.down {
			break
		}
	}
	return ret
}

type keyButtons struct {
	buttons map[string]button
	taps    keyTaps
}

func (sb *keyButtons) getButtons() *map[string]button {
	return &sb.buttons
}

func (sb *keyButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	sb.buttons = make(map[string]button)

	// the key stands in for the pin
	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.state = pressState{pressed: false, start: now, count: 0, changed: false}
		sb.buttons[k] = btn
		rt.logger.Printf("button %s on key '%s'", k, v.key)
	}
	return nil
}

func (sb *keyButtons) checkKeyboard(rt runtimeConfig) error {
	// poll with quick timeout
	// no key means "no change"
	go func() {
		rt.clock.Sleep(dKeyPoll)
		termbox.Interrupt()
	}()

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc {
				return errExitKey
			}
			sb.taps.add(ev.Ch)
		case termbox.EventError:
			return ev.Err
		case termbox.EventInterrupt:
			return nil
		}
	}
}

func (sb *keyButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	// work through queued taps before waiting on the keyboard again
	if !sb.taps.waiting() {
		if err := sb.checkKeyboard(rt); err != nil {
			return nil, err
		}
	}
	return sb.taps.states(sb.buttons), nil
}

func (sb *keyButtons) initButtons(settings configSettings) error {
	return termOpen()
}

func (sb *keyButtons) closeButtons() {
	termClose()
}
