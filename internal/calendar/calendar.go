// Package calendar computes month grids for the due date picker.
//
// All date arithmetic goes through time.Date, which normalizes out-of-range
// months and days, so month lengths and year rollover come from the standard
// calendar rather than a lookup table.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a day does not exist in the cursor's month
var ErrInvalidDate = errors.New("invalid date")

// Weekdays are the grid column headers, Sunday first
var Weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Due dates are the last second of the chosen day
const (
	dueHour   = 23
	dueMinute = 59
	dueSecond = 59
)

// Cursor is the month currently shown in the picker
type Cursor struct {
	Year  int
	Month time.Month
}

// Today returns a cursor on the month containing now
func Today(now time.Time) Cursor {
	return Cursor{Year: now.Year(), Month: now.Month()}
}

// FirstWeekday returns the weekday of day 1, 0 for Sunday through 6 for
// Saturday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DaysInMonth counts the days between the first of this month and the first
// of the next one. UTC avoids daylight saving shifts in the subtraction.
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)
	return int(next.Sub(first).Hours() / 24)
}

// Advance moves the cursor by delta months, wrapping the year as needed
func (c Cursor) Advance(delta int) Cursor {
	t := time.Date(c.Year, c.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Next is Advance(1)
func (c Cursor) Next() Cursor {
	return c.Advance(1)
}

// Prev is Advance(-1)
func (c Cursor) Prev() Cursor {
	return c.Advance(-1)
}

// Days returns the number of days in the cursor's month
func (c Cursor) Days() int {
	return DaysInMonth(c.Year, c.Month)
}

// Grid lays the month out in weeks of seven cells starting on Sunday.
// Cells outside the month are zero.
func (c Cursor) Grid() [][7]int {
	offset := FirstWeekday(c.Year, c.Month)
	days := c.Days()

	var weeks [][7]int
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// ConfirmDay returns the due date for day in the cursor's month: 23:59:59
// local time.
func (c Cursor) ConfirmDay(day int) (time.Time, error) {
	if c.Month < time.January || c.Month > time.December {
		return time.Time{}, fmt.Errorf("month %d: %w", c.Month, ErrInvalidDate)
	}
	if day < 1 || day > c.Days() {
		return time.Time{}, fmt.Errorf("%04d-%02d-%02d: %w", c.Year, int(c.Month), day, ErrInvalidDate)
	}
	return time.Date(c.Year, c.Month, day, dueHour, dueMinute, dueSecond, 0, time.Local), nil
}

// Contains reports whether t falls in the cursor's month
func (c Cursor) Contains(t time.Time) bool {
	return t.Year() == c.Year && t.Month() == c.Month
}

// Title renders the cursor as "2024-03 March"
func (c Cursor) Title() string {
	return fmt.Sprintf("%04d-%02d %s", c.Year, int(c.Month), c.Month)
}
