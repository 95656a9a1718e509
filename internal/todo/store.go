// Package todo holds the ordered task list and the operations that mutate it.
package todo

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Saver persists the full task list. Implementations live in internal/storage.
type Saver interface {
	Save(tasks []Task) error
}

// Store owns the ordered task list. It is not safe for concurrent use; the
// UI applies all mutations from a single update loop.
type Store struct {
	tasks  []Task
	saver  Saver
	logger *log.Logger
}

// Option configures a Store
type Option func(*Store)

// WithSaver sets where the store writes after each mutation
func WithSaver(s Saver) Option {
	return func(st *Store) {
		st.saver = s
	}
}

// WithLogger sets the logger used for persistence failures
func WithLogger(l *log.Logger) Option {
	return func(st *Store) {
		st.logger = l
	}
}

// NewStore creates a store seeded with tasks, sorted.
// Loading never triggers a save.
func NewStore(tasks []Task, opts ...Option) *Store {
	s := &Store{
		tasks: slices.Clone(tasks),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Sort()
	return s
}

// Tasks returns a copy of the current list in display order
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// At returns the task at index i
func (s *Store) At(i int) (Task, bool) {
	if i < 0 || i >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Counts returns the total, open and completed task counts
func (s *Store) Counts() (total, open, done int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		} else {
			open++
		}
	}
	return len(s.tasks), open, done
}

// Add appends a new incomplete task. Blank text is ignored.
func (s *Store) Add(text string, due *time.Time) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	var d *time.Time
	if due != nil {
		v := *due
		d = &v
	}
	s.tasks = append(s.tasks, Task{Text: text, Due: d})
	s.Sort()
	s.persist()
	return true
}

// SetCompleted sets the completed flag of the task at index i
func (s *Store) SetCompleted(i int, value bool) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	s.tasks[i].Completed = value
	s.Sort()
	s.persist()
	return true
}

// Toggle flips the completed flag of the task at index i
func (s *Store) Toggle(i int) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	return s.SetCompleted(i, !s.tasks[i].Completed)
}

// Remove deletes the task at index i
func (s *Store) Remove(i int) bool {
	if i < 0 || i >= len(s.tasks) {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.Sort()
	s.persist()
	return true
}

// SetAllCompleted sets the completed flag on every task
func (s *Store) SetAllCompleted(value bool) {
	for i := range s.tasks {
		s.tasks[i].Completed = value
	}
	s.Sort()
	s.persist()
}

// RemoveCompleted drops every completed task and returns how many were removed
func (s *Store) RemoveCompleted() int {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool {
		return t.Completed
	})
	s.persist()
	return before - len(s.tasks)
}

// Sort orders the list in place. The sort is stable.
func (s *Store) Sort() {
	slices.SortStableFunc(s.tasks, Compare)
}

// persist is best effort: a failed write is logged and dropped, never
// retried or reported to the user.
func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.Tasks()); err != nil && s.logger != nil {
		s.logger.Debug("save failed", "err", err)
	}
}
