package main

import (
	"fmt"
	"sync"
)

// chargeState is one battery notification
type chargeState struct {
	percent  int
	charging bool
	plugged  bool
}

func (cs chargeState) String() string {
	return fmt.Sprintf("%d%% charging=%v plugged=%v", cs.percent, cs.charging, cs.plugged)
}

// noBattery reports whatever it was last told to, for tests and boards without a gauge
type noBattery struct {
	mu    sync.Mutex
	state chargeState
	reads int
	err   error
}

func (nb *noBattery) openBattery(settings configSettings) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.state = chargeState{percent: 100, plugged: false, charging: false}
	return nil
}

func (nb *noBattery) readCharge() (chargeState, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.reads++
	return nb.state, nb.err
}

func (nb *noBattery) closeBattery() {
}

func (nb *noBattery) set(cs chargeState, err error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.state = cs
	nb.err = err
}
