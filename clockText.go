package main

import "time"

const (
	timePlaceholder = "Time"
	datePlaceholder = "The Date"
)

func formatClockTime(t time.Time, h24 bool) string {
	if h24 {
		return t.Format("15:04:05")
	}
	return t.Format("03:04:05 PM")
}

func formatDate(t time.Time) string {
	return t.Format("January 02")
}
