// Package storage defines where the task list is persisted.
//
// Backends register themselves by name from their own packages; the
// application picks one from configuration at startup.
package storage

import (
	"github.com/charmbracelet/log"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Backend loads and saves the whole task list
type Backend interface {
	// Name returns the backend identifier (e.g., "json", "sqlite")
	Name() string

	// Load returns the persisted tasks in stored order
	Load() ([]todo.Task, error)

	// Save replaces the persisted tasks with tasks
	Save(tasks []todo.Task) error

	// Close releases any resources held by the backend
	Close() error
}

// BackendFactory creates a backend from the storage configuration
type BackendFactory func(cfg config.StorageConfig, logger *log.Logger) (Backend, error)
