package storage

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Open creates the backend named in cfg from the global registry
func Open(cfg config.StorageConfig, logger *log.Logger) (Backend, error) {
	return defaultRegistry.Open(cfg, logger)
}

// Open creates the backend named in cfg
func (r *Registry) Open(cfg config.StorageConfig, logger *log.Logger) (Backend, error) {
	factory, err := r.Lookup(cfg.Backend)
	if err != nil {
		return nil, err
	}

	backend, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating backend %s: %w", cfg.Backend, err)
	}
	return backend, nil
}

// LoadOrEmpty loads tasks from b. Any failure yields an empty list; the
// reason is logged but never shown to the user.
func LoadOrEmpty(b Backend, logger *log.Logger) []todo.Task {
	tasks, err := b.Load()
	if err != nil {
		if logger != nil {
			logger.Warn("starting with an empty list", "backend", b.Name(), "err", err)
		}
		return nil
	}
	return tasks
}
