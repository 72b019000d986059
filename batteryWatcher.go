package main

func startBatteryWatcher(rt runtimeConfig) {
	rt.logger = newLogger(rt.settings, "Battery")
	wg.Add(1)
	go func() {
		defer wg.Done()
		runBatteryWatcher(rt)
	}()
}

func runBatteryWatcher(rt runtimeConfig) {
	defer func() {
		rt.logger.Println("Exiting runBatteryWatcher")
	}()

	if err := rt.battery.openBattery(rt.settings); err != nil {
		// the face still works, it just never shows the charging icon
		rt.logger.Printf("battery monitoring disabled: %v", err)
		return
	}
	defer rt.battery.closeBattery()

	poll := rt.settings.GetDuration(sBatteryPoll)
	var last chargeState
	var lastErr string
	first := true

	for {
		cs, err := rt.battery.readCharge()
		if err != nil {
			// only log each distinct failure once
			if err.Error() != lastErr {
				rt.logger.Printf("could not read battery: %v", err)
				lastErr = err.Error()
			}
		} else {
			lastErr = ""
			if first || cs != last {
				rt.logger.Debugf("charge state %s", cs)
				if !rt.comms.send(batteryStateMsg(cs)) {
					return
				}
				last = cs
				first = false
			}
		}

		select {
		case <-rt.comms.quit:
			rt.logger.Println("quit from runBatteryWatcher")
			return
		case <-rt.clock.After(poll):
		}
	}
}
