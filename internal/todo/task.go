package todo

import "time"

// Task is a single to-do entry. It has no identity beyond its position in
// the store.
type Task struct {
	Text      string
	Completed bool
	Due       *time.Time // Optional due date
}

// HasDue reports whether the task carries a due date
func (t Task) HasDue() bool {
	return t.Due != nil
}

// Urgency is a presentation hint derived from a due date and the current time
type Urgency int

const (
	Neutral Urgency = iota
	Urgent
	Overdue
)

// UrgentWindow is how close a due date must be to count as urgent
const UrgentWindow = 24 * time.Hour

func (u Urgency) String() string {
	switch u {
	case Urgent:
		return "urgent"
	case Overdue:
		return "overdue"
	default:
		return "neutral"
	}
}

// Classify returns the urgency of a due date relative to now.
// No due date is neutral, a due date in the past is overdue, and a due date
// less than UrgentWindow away is urgent.
func Classify(due *time.Time, now time.Time) Urgency {
	if due == nil {
		return Neutral
	}
	if due.Before(now) {
		return Overdue
	}
	if due.Sub(now) < UrgentWindow {
		return Urgent
	}
	return Neutral
}

// Urgency classifies the task's own due date
func (t Task) Urgency(now time.Time) Urgency {
	return Classify(t.Due, now)
}

// Compare orders two tasks: incomplete before completed, dated before
// undated, then ascending due date. Equal tasks return 0 so that a stable
// sort keeps their input order.
func Compare(a, b Task) int {
	if a.Completed != b.Completed {
		if !a.Completed {
			return -1
		}
		return 1
	}

	switch {
	case a.Due != nil && b.Due == nil:
		return -1
	case a.Due == nil && b.Due != nil:
		return 1
	case a.Due != nil && b.Due != nil:
		return a.Due.Compare(*b.Due)
	}
	return 0
}
