package main

import (
	"sync"

	"github.com/nsf/termbox-go"
)

// the terminal is shared by the simulated display and the key buttons
var termMu sync.Mutex
var termUsers int

func termOpen() error {
	termMu.Lock()
	defer termMu.Unlock()

	if termUsers == 0 {
		if err := termbox.Init(); err != nil {
			return err
		}
		termbox.SetInputMode(termbox.InputEsc)
		termbox.SetOutputMode(termbox.OutputNormal)
		termbox.Flush()
	}
	termUsers++
	return nil
}

func termClose() {
	termMu.Lock()
	defer termMu.Unlock()

	if termUsers == 0 {
		return
	}
	termUsers--
	if termUsers == 0 {
		termbox.Close()
	}
}
