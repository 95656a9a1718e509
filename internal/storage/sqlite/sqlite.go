// Package sqlite persists tasks in a SQLite database.
package sqlite

import (
	"github.com/charmbracelet/log"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/db"
	"github.com/pdxmph/todo-tui/internal/storage"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Backend implements storage.Backend on top of internal/db
type Backend struct {
	db *db.DB
}

// New opens the database at path
func New(path string, logger *log.Logger) (*Backend, error) {
	database, err := db.Open(path, logger)
	if err != nil {
		return nil, err
	}
	return &Backend{db: database}, nil
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return config.BackendSQLite
}

// Load returns the stored tasks in position order
func (b *Backend) Load() ([]todo.Task, error) {
	rows, err := b.db.ListTasks()
	if err != nil {
		return nil, err
	}

	tasks := make([]todo.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, todo.Task{
			Text:      r.Text,
			Completed: r.Completed,
			Due:       r.Due(),
		})
	}
	return tasks, nil
}

// Save replaces the stored tasks
func (b *Backend) Save(tasks []todo.Task) error {
	rows := make([]db.TaskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, db.TaskRow{
			Text:      t.Text,
			Completed: t.Completed,
			DueDate:   db.NewNullUnix(t.Due),
		})
	}
	return b.db.ReplaceTasks(rows)
}

// Close closes the database
func (b *Backend) Close() error {
	return b.db.Close()
}

// Register the sqlite backend
func init() {
	storage.Register(config.BackendSQLite, func(cfg config.StorageConfig, logger *log.Logger) (storage.Backend, error) {
		return New(cfg.SQLitePath, logger)
	})
}
