package models

import (
	"fmt"
	"time"
)

// TimePunch is a wall-clock time-of-day recorded by the clock, without a date.
type TimePunch struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Minutes returns the number of minutes since midnight.
func (p TimePunch) Minutes() int {
	return p.Hour*60 + p.Minute
}

// Before reports whether p is earlier in the day than o.
func (p TimePunch) Before(o TimePunch) bool {
	return p.Minutes() < o.Minutes()
}

func (p TimePunch) String() string {
	return fmt.Sprintf("%02d:%02d", p.Hour, p.Minute)
}

// WorkInterval is one clock-in/clock-out pair. An End earlier than Start
// means the shift ran past midnight.
type WorkInterval struct {
	Start TimePunch `json:"start"`
	End   TimePunch `json:"end"`
}

// Overnight reports whether the interval crosses midnight.
func (w WorkInterval) Overnight() bool {
	return w.End.Before(w.Start)
}

// Minutes returns the interval length in minutes, never negative.
func (w WorkInterval) Minutes() int {
	end := w.End.Minutes()
	if w.Overnight() {
		end += 24 * 60
	}
	return end - w.Start.Minutes()
}

// Duration returns the interval length.
func (w WorkInterval) Duration() time.Duration {
	return time.Duration(w.Minutes()) * time.Minute
}
