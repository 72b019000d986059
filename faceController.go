package main

import "fmt"

func startFace(rt runtimeConfig) {
	rt.logger = newLogger(rt.settings, "Face")
	wg.Add(1)
	go func() {
		defer wg.Done()
		runFace(rt)
	}()
}

// loadFace opens the display and lays out the layers
func loadFace(rt runtimeConfig) (*face, error) {
	rt.logger.Debugf("Window Load")

	if err := rt.display.OpenDisplay(rt.settings); err != nil {
		return nil, fmt.Errorf("could not open display: %w", err)
	}

	return newFace(rt, rt.display.Bounds()), nil
}

func (f *face) unload() {
	f.rt.logger.Debugf("Window Unload")
	f.rt.display.CloseDisplay()
}

func (f *face) handle(msg faceMsg) {
	switch msg.id {
	case eButton:
		b, err := toFaceButton(msg.val)
		if err != nil {
			f.rt.logger.Println(err.Error())
			return
		}
		f.pressButton(b)
	case eBattery:
		cs, err := toChargeState(msg.val)
		if err != nil {
			f.rt.logger.Println(err.Error())
			return
		}
		f.setCharge(cs)
	default:
		f.rt.logger.Printf("Unhandled %d", msg.id)
	}
}

func runFace(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("exiting runFace")
	}()

	comms := rt.comms

	f, err := loadFace(rt)
	if err != nil {
		rt.logger.Println(err.Error())
		comms.shutdown()
		return
	}
	defer f.unload()

	// the placeholders show until the first tick
	f.redraw()

	for {
		dirty := false

		select {
		case <-comms.quit:
			rt.logger.Println("quit from runFace")
			return
		case msg := <-comms.face:
			f.handle(msg)
			dirty = true
		default:
			rt.clock.Sleep(dFaceSleep)
		}

		if f.tick() {
			dirty = true
		}

		if dirty {
			f.redraw()
		}
	}
}
