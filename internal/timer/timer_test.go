package timer

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIdleTimer(t *testing.T) {
	tm := New()
	if tm.Running() {
		t.Error("new timer should be idle")
	}
	if _, ok := tm.Remaining(); ok {
		t.Error("Remaining() on idle timer should be false")
	}
	if got := tm.Format(); got != Placeholder {
		t.Errorf("Format() = %q, want %q", got, Placeholder)
	}
	if tm.Expired() {
		t.Error("idle timer should not be expired")
	}
}

func TestStartRemainingWallClock(t *testing.T) {
	tm := New()
	tm.Start(30)

	remaining, ok := tm.Remaining()
	if !ok {
		t.Fatal("Remaining() should be ok while running")
	}
	if remaining <= 1799*time.Second || remaining > 1800*time.Second {
		t.Errorf("Remaining() = %v, want in (1799s, 1800s]", remaining)
	}

	tm.Stop()
	if _, ok := tm.Remaining(); ok {
		t.Error("Remaining() after Stop should be false")
	}
	if tm.Running() {
		t.Error("timer should be idle after Stop")
	}
}

func TestCountdownWithClock(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)}
	tm := WithClock(clock.Now)
	tm.Start(15)

	if d, _ := tm.Duration(); d != 15*time.Minute {
		t.Errorf("Duration() = %v, want 15m", d)
	}

	clock.Advance(5*time.Minute + 30*time.Second)
	if got := tm.Format(); got != "9:30" {
		t.Errorf("Format() = %q, want 9:30", got)
	}

	clock.Advance(9*time.Minute + 25*time.Second)
	if got := tm.Format(); got != "0:05" {
		t.Errorf("Format() = %q, want 0:05", got)
	}
	if tm.Expired() {
		t.Error("timer should not be expired with 5s left")
	}

	clock.Advance(10 * time.Second)
	remaining, ok := tm.Remaining()
	if !ok || remaining != -5*time.Second {
		t.Errorf("Remaining() = %v, %v; want -5s, true", remaining, ok)
	}
	if !tm.Expired() {
		t.Error("timer should be expired")
	}
	if got := tm.Format(); got != Finished {
		t.Errorf("Format() = %q, want %q", got, Finished)
	}
	// Polling alone never stops the timer.
	if !tm.Running() {
		t.Error("expired timer should keep running until stopped")
	}
}

func TestStartWhileRunningRestarts(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)}
	tm := WithClock(clock.Now)
	tm.Start(60)
	clock.Advance(10 * time.Minute)

	tm.Start(15)
	remaining, _ := tm.Remaining()
	if remaining != 15*time.Minute {
		t.Errorf("Remaining() after restart = %v, want 15m", remaining)
	}
}

func TestAtMethodsUseGivenTime(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	tm := WithClock(func() time.Time { return start.Add(24 * time.Hour) })
	tm.StartAt(start, 1)

	tests := []struct {
		offset  time.Duration
		want    string
		expired bool
	}{
		{0, "1:00", false},
		{10 * time.Second, "0:50", false},
		{59*time.Second + 500*time.Millisecond, "0:01", false},
		{time.Minute, Finished, true},
		{2 * time.Minute, Finished, true},
	}

	for _, tt := range tests {
		now := start.Add(tt.offset)
		if got := tm.FormatAt(now); got != tt.want {
			t.Errorf("FormatAt(+%v) = %q, want %q", tt.offset, got, tt.want)
		}
		if got := tm.ExpiredAt(now); got != tt.expired {
			t.Errorf("ExpiredAt(+%v) = %v, want %v", tt.offset, got, tt.expired)
		}
	}

	if _, ok := New().RemainingAt(start); ok {
		t.Error("RemainingAt on idle timer should be false")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "30:00"},
		{30*time.Minute - 200*time.Millisecond, "30:00"},
		{61 * time.Second, "1:01"},
		{9 * time.Second, "0:09"},
		{90 * time.Minute, "90:00"},
		{0, Finished},
		{-time.Second, Finished},
	}

	for _, tt := range tests {
		if got := FormatRemaining(tt.in); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPresetLabel(t *testing.T) {
	tests := map[int]string{15: "15m", 30: "30m", 60: "1h", 90: "90m", 120: "2h"}
	for in, want := range tests {
		if got := PresetLabel(in); got != want {
			t.Errorf("PresetLabel(%d) = %q, want %q", in, got, want)
		}
	}
}
