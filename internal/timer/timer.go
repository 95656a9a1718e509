// Package timer implements a poll-driven countdown timer.
//
// The timer never fires on its own. The caller asks for the remaining time
// at the frame's time on every frame and stops the timer once it has run
// out. The At methods are pure in (start, duration, now); the others read
// the timer's clock.
package timer

import (
	"fmt"
	"time"
)

// Placeholder is shown when no countdown is running
const Placeholder = "--:--"

// Finished is shown once the remaining time reaches zero
const Finished = "Time's up!"

// DefaultPresets are the durations offered in minutes
var DefaultPresets = []int{15, 30, 60}

// Timer is a single countdown. The zero value is an idle timer using the
// wall clock.
type Timer struct {
	start    *time.Time
	duration *time.Duration
	running  bool
	now      func() time.Time
}

// New creates an idle timer
func New() *Timer {
	return &Timer{}
}

// WithClock returns an idle timer that reads time from now
func WithClock(now func() time.Time) *Timer {
	return &Timer{now: now}
}

func (t *Timer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Start begins a countdown of the given minutes at the timer's clock.
// Starting a running timer restarts it.
func (t *Timer) Start(minutes int) {
	t.StartAt(t.clock(), minutes)
}

// StartAt begins a countdown of the given minutes at now
func (t *Timer) StartAt(now time.Time, minutes int) {
	start := now
	d := time.Duration(minutes) * time.Minute
	t.start = &start
	t.duration = &d
	t.running = true
}

// Stop clears the countdown. It is valid in either state.
func (t *Timer) Stop() {
	t.start = nil
	t.duration = nil
	t.running = false
}

// Running reports whether a countdown is active
func (t *Timer) Running() bool {
	return t.running
}

// Duration returns the configured length of the running countdown
func (t *Timer) Duration() (time.Duration, bool) {
	if !t.running {
		return 0, false
	}
	return *t.duration, true
}

// RemainingAt returns the time left at now. It is false when idle and may
// be zero or negative once the countdown has run out.
func (t *Timer) RemainingAt(now time.Time) (time.Duration, bool) {
	if !t.running || t.start == nil || t.duration == nil {
		return 0, false
	}
	return *t.duration - now.Sub(*t.start), true
}

// ExpiredAt reports whether a running countdown has no time left at now
func (t *Timer) ExpiredAt(now time.Time) bool {
	remaining, ok := t.RemainingAt(now)
	return ok && remaining <= 0
}

// FormatAt renders the time left at now as M:SS
func (t *Timer) FormatAt(now time.Time) string {
	remaining, ok := t.RemainingAt(now)
	if !ok {
		return Placeholder
	}
	return FormatRemaining(remaining)
}

// Remaining is RemainingAt on the timer's clock
func (t *Timer) Remaining() (time.Duration, bool) {
	return t.RemainingAt(t.clock())
}

// Expired is ExpiredAt on the timer's clock
func (t *Timer) Expired() bool {
	return t.ExpiredAt(t.clock())
}

// Format is FormatAt on the timer's clock
func (t *Timer) Format() string {
	return t.FormatAt(t.clock())
}

// FormatRemaining renders d as minutes and zero-padded seconds, rounding
// partial seconds up so a fresh 30 minute timer reads 30:00.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return Finished
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// PresetLabel names a preset duration for buttons and help text
func PresetLabel(minutes int) string {
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dm", minutes)
}
