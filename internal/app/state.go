// Package app holds the whole application state and applies user intents to
// it. There is exactly one State per running program, owned by the UI model.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pdxmph/todo-tui/internal/calendar"
	"github.com/pdxmph/todo-tui/internal/timer"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Picker is the date picker's transient state
type Picker struct {
	Open   bool
	Cursor calendar.Cursor
	Day    int // highlighted day in Cursor's month
}

// State is the application state for one frame loop
type State struct {
	Store   *todo.Store
	Timer   *timer.Timer
	Presets []int
	Picker  Picker

	// PendingDue is the due date the next added task receives
	PendingDue *time.Time

	// Now is the wall-clock time read at the start of the current frame
	Now time.Time

	// TimerDone is set when a countdown ran out and cleared on the next start
	TimerDone bool

	logger *log.Logger
}

// Option configures a State
type Option func(*State)

// WithPresets sets the timer presets in minutes
func WithPresets(presets []int) Option {
	return func(s *State) {
		s.Presets = presets
	}
}

// WithTimer replaces the default wall-clock timer
func WithTimer(t *timer.Timer) Option {
	return func(s *State) {
		s.Timer = t
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		s.logger = l
	}
}

// New creates the application state around store. now seeds the first
// frame and the picker's month.
func New(store *todo.Store, now time.Time, opts ...Option) *State {
	s := &State{
		Store:   store,
		Timer:   timer.New(),
		Presets: timer.DefaultPresets,
		Now:     now,
		Picker: Picker{
			Cursor: calendar.Today(now),
			Day:    now.Day(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Apply applies one intent and reports whether any state changed
func (s *State) Apply(intent Intent) bool {
	switch in := intent.(type) {
	case Tick:
		return s.tick(in.Now)

	case AddTask:
		if !s.Store.Add(in.Text, s.PendingDue) {
			return false
		}
		s.PendingDue = nil
		s.logger.Debug("task added", "text", in.Text)
		return true

	case ToggleTask:
		return s.Store.Toggle(in.Index)

	case SetCompleted:
		return s.Store.SetCompleted(in.Index, in.Value)

	case DeleteTask:
		return s.Store.Remove(in.Index)

	case CheckAll:
		s.Store.SetAllCompleted(true)
		return true

	case UncheckAll:
		s.Store.SetAllCompleted(false)
		return true

	case ClearCompleted:
		removed := s.Store.RemoveCompleted()
		s.logger.Debug("cleared completed tasks", "removed", removed)
		return true

	case StartTimer:
		if in.Minutes <= 0 {
			return false
		}
		s.Timer.StartAt(s.Now, in.Minutes)
		s.TimerDone = false
		s.logger.Debug("timer started", "minutes", in.Minutes)
		return true

	case StopTimer:
		wasRunning := s.Timer.Running()
		s.Timer.Stop()
		return wasRunning

	case OpenCalendar:
		s.Picker.Open = true
		s.clampDay()
		return true

	case CancelCalendar:
		if !s.Picker.Open {
			return false
		}
		s.Picker.Open = false
		return true

	case ShiftMonth:
		s.Picker.Cursor = s.Picker.Cursor.Advance(in.Delta)
		s.clampDay()
		return true

	case ShiftDay:
		c := s.Picker.Cursor
		t := time.Date(c.Year, c.Month, s.Picker.Day+in.Delta, 0, 0, 0, 0, time.UTC)
		s.Picker.Cursor = calendar.Cursor{Year: t.Year(), Month: t.Month()}
		s.Picker.Day = t.Day()
		return true

	case ConfirmDay:
		due, err := s.Picker.Cursor.ConfirmDay(in.Day)
		if err != nil {
			// The grid only offers real days, so this is a bug upstream
			s.logger.Error("confirming calendar day", "err", err)
			return false
		}
		s.PendingDue = &due
		s.Picker.Day = in.Day
		s.Picker.Open = false
		return true

	case ClearDue:
		if s.PendingDue == nil {
			return false
		}
		s.PendingDue = nil
		return true
	}

	return false
}

// tick records the frame time and stops an expired countdown
func (s *State) tick(now time.Time) bool {
	s.Now = now
	if s.Timer.ExpiredAt(now) {
		s.Timer.Stop()
		s.TimerDone = true
		s.logger.Info("timer finished")
	}
	return true
}

// TimerLabel renders the countdown for the header
func (s *State) TimerLabel() string {
	if s.Timer.Running() {
		return s.Timer.FormatAt(s.Now)
	}
	if s.TimerDone {
		return timer.Finished
	}
	return timer.Placeholder
}

// Urgency classifies the task at index i against the frame time
func (s *State) Urgency(i int) todo.Urgency {
	task, ok := s.Store.At(i)
	if !ok {
		return todo.Neutral
	}
	return task.Urgency(s.Now)
}

func (s *State) clampDay() {
	days := s.Picker.Cursor.Days()
	if s.Picker.Day > days {
		s.Picker.Day = days
	}
	if s.Picker.Day < 1 {
		s.Picker.Day = 1
	}
}
