package main

import (
	"sync"

	"github.com/stianeikeland/go-rpio"
)

type noButtons struct {
	mu      sync.Mutex
	buttons map[string]button
	pins    map[string]buttonMap
	states  map[string]rpio.State
	err     error
}

func (nb *noButtons) getButtons() *map[string]button {
	return &nb.buttons
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	if nb.err != nil {
		return nil, nb.err
	}

	ret := make(map[string]rpio.State, len(nb.states))
	for k, v := range nb.states {
		ret[k] = v
	}
	return ret, nil
}

func (nb *noButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	nb.buttons = make(map[string]button)
	nb.pins = make(map[string]buttonMap)
	nb.states = make(map[string]rpio.State)

	now := rt.clock.Now()
	for k, v := range pins {
		nb.buttons[k] = button{button: v, state: pressState{start: now}}
		nb.pins[k] = v
		nb.states[k] = pinState(v, false)
	}
	return nil
}

func (nb *noButtons) initButtons(settings configSettings) error {
	return nil
}

func (nb *noButtons) closeButtons() {
}

// press or release a button by its settings name
func (nb *noButtons) press(name string, pressed bool) {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	bm, ok := nb.pins[name]
	if !ok {
		return
	}
	nb.states[name] = pinState(bm, pressed)
}

func (nb *noButtons) clear() {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	for k, v := range nb.pins {
		nb.states[k] = pinState(v, false)
	}
}

// make every read after this one fail
func (nb *noButtons) fail(err error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.err = err
}
