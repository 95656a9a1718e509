// Package jsonfile persists tasks as a pretty-printed JSON array.
//
// The file format is
//
//	[{"text": "...", "completed": false, "due_date": 1700000000}]
//
// with due_date in Unix seconds or null.
package jsonfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/storage"
	"github.com/pdxmph/todo-tui/internal/todo"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "todos.schema.json"

// record is one task as stored on disk
type record struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   *int64 `json:"due_date"`
}

// Backend implements storage.Backend on a single JSON file
type Backend struct {
	path   string
	schema *jsonschema.Schema
}

// New creates a backend for the file at path. The file need not exist.
func New(path string) (*Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("json backend needs a file path")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("adding schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Backend{path: path, schema: schema}, nil
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return config.BackendJSON
}

// Path returns the file the backend reads and writes
func (b *Backend) Path() string {
	return b.path
}

// Load reads and validates the file
func (b *Backend) Load() ([]todo.Task, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", b.path, err)
	}
	if err := b.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validating %s: %w", b.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", b.path, err)
	}

	tasks := make([]todo.Task, 0, len(records))
	for _, r := range records {
		task := todo.Task{Text: r.Text, Completed: r.Completed}
		if r.DueDate != nil {
			due := time.Unix(*r.DueDate, 0)
			task.Due = &due
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save overwrites the file with tasks. The write goes through a temporary
// file in the same directory so a crash never leaves half a list behind.
func (b *Backend) Save(tasks []todo.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		r := record{Text: t.Text, Completed: t.Completed}
		if t.HasDue() {
			secs := t.Due.Unix()
			r.DueDate = &secs
		}
		records = append(records, r)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".todos-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(b.fileMode()); err != nil {
		tmp.Close()
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("replacing %s: %w", b.path, err)
	}
	return nil
}

// Close does nothing; the file is only open during Load and Save
func (b *Backend) Close() error {
	return nil
}

// Register the json backend
func init() {
	storage.Register(config.BackendJSON, func(cfg config.StorageConfig, _ *log.Logger) (storage.Backend, error) {
		return New(cfg.Path)
	})
}

// fileMode keeps the permissions of an existing list, defaulting to 0644
func (b *Backend) fileMode() os.FileMode {
	if info, err := os.Stat(b.path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
