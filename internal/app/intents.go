package app

import "time"

// Intent is one discrete user action. The UI produces intents and the State
// applies each exactly once.
type Intent interface {
	isIntent()
}

// Tick starts a frame: it records the frame's wall-clock time and polls the
// timer.
type Tick struct{ Now time.Time }

// AddTask adds a task with the pending due date
type AddTask struct{ Text string }

// ToggleTask flips the completed flag of the task at Index
type ToggleTask struct{ Index int }

// SetCompleted sets the completed flag of the task at Index
type SetCompleted struct {
	Index int
	Value bool
}

// DeleteTask removes the task at Index
type DeleteTask struct{ Index int }

// CheckAll marks every task completed
type CheckAll struct{}

// UncheckAll marks every task incomplete
type UncheckAll struct{}

// ClearCompleted removes every completed task
type ClearCompleted struct{}

// StartTimer starts a countdown of Minutes
type StartTimer struct{ Minutes int }

// StopTimer stops the countdown
type StopTimer struct{}

// OpenCalendar shows the date picker
type OpenCalendar struct{}

// CancelCalendar hides the date picker without choosing a day
type CancelCalendar struct{}

// ShiftMonth moves the picker by Delta months
type ShiftMonth struct{ Delta int }

// ShiftDay moves the picker's highlighted day by Delta days, crossing month
// boundaries as needed
type ShiftDay struct{ Delta int }

// ConfirmDay sets the pending due date to Day of the picker's month
type ConfirmDay struct{ Day int }

// ClearDue drops the pending due date
type ClearDue struct{}

func (Tick) isIntent()           {}
func (AddTask) isIntent()        {}
func (ToggleTask) isIntent()     {}
func (SetCompleted) isIntent()   {}
func (DeleteTask) isIntent()     {}
func (CheckAll) isIntent()       {}
func (UncheckAll) isIntent()     {}
func (ClearCompleted) isIntent() {}
func (StartTimer) isIntent()     {}
func (StopTimer) isIntent()      {}
func (OpenCalendar) isIntent()   {}
func (CancelCalendar) isIntent() {}
func (ShiftMonth) isIntent()     {}
func (ShiftDay) isIntent()       {}
func (ConfirmDay) isIntent()     {}
func (ClearDue) isIntent()       {}
