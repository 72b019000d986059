package main

import (
	"fmt"
	"time"
)

type timerState int

const (
	timerReset timerState = iota
	timerRunning
	timerIdle
)

func (s timerState) String() string {
	switch s {
	case timerReset:
		return "reset"
	case timerRunning:
		return "running"
	case timerIdle:
		return "idle"
	default:
		return "INVALID"
	}
}

const timerZero = "00:00:00"

// stopwatch is reset -> running -> idle (stopped) -> reset
type stopwatch struct {
	state timerState
	start time.Time
}

func (sw *stopwatch) toggle(now time.Time) timerState {
	switch sw.state {
	case timerReset:
		sw.start = now
		sw.state = timerRunning
	case timerRunning:
		sw.state = timerIdle
	case timerIdle:
		sw.start = time.Time{}
		sw.state = timerReset
	}
	return sw.state
}

// elapsed whole seconds, counted the way a seconds-resolution clock would
func (sw *stopwatch) elapsed(now time.Time) int64 {
	if sw.state == timerReset {
		return 0
	}
	return now.Unix() - sw.start.Unix()
}

func formatElapsed(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	hours := secs / (60 * 60)
	minutes := secs/60 - hours*60
	seconds := secs - hours*60*60 - minutes*60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
