package db

import (
	"database/sql"
	"time"
)

// TaskRow is a task as stored in the tasks table
type TaskRow struct {
	Position  int
	Text      string
	Completed bool
	DueDate   sql.NullInt64 // Unix seconds
}

// NewNullUnix creates a sql.NullInt64 holding t as Unix seconds
func NewNullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// Due returns the due date in local time, or nil
func (r TaskRow) Due() *time.Time {
	if !r.DueDate.Valid {
		return nil
	}
	t := time.Unix(r.DueDate.Int64, 0)
	return &t
}
