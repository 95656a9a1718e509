package storage

import (
	"slices"

	"github.com/pdxmph/todo-tui/internal/todo"
)

// MemoryBackend keeps tasks in memory only. It backs tests and counts saves
// so callers can check which operations persisted.
type MemoryBackend struct {
	tasks   []todo.Task
	Saves   int
	SaveErr error
	LoadErr error
}

// NewMemoryBackend creates a memory backend seeded with tasks
func NewMemoryBackend(tasks ...todo.Task) *MemoryBackend {
	return &MemoryBackend{tasks: tasks}
}

// Name returns the backend identifier
func (m *MemoryBackend) Name() string {
	return "memory"
}

// Load returns a copy of the held tasks
func (m *MemoryBackend) Load() ([]todo.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.tasks), nil
}

// Save replaces the held tasks unless SaveErr is set
func (m *MemoryBackend) Save(tasks []todo.Task) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tasks = slices.Clone(tasks)
	return nil
}

// Close does nothing
func (m *MemoryBackend) Close() error {
	return nil
}
