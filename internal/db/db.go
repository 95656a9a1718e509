package db

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	conn   *sql.DB
	logger *log.Logger
}

// Open creates a new database connection, creating the file and schema if
// they do not exist yet
func Open(dbPath string, logger *log.Logger) (*DB, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps :memory: databases alive across calls
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn, logger: logger}

	if err := db.initialize(); err != nil {
		conn.Close()
		return nil, err
	}

	// Run any pending migrations
	if err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// ListTasks returns all tasks in stored order
func (db *DB) ListTasks() ([]TaskRow, error) {
	query := `
		SELECT position, text, completed, due_date
		FROM tasks
		ORDER BY position
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []TaskRow
	for rows.Next() {
		var r TaskRow
		if err := rows.Scan(&r.Position, &r.Text, &r.Completed, &r.DueDate); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, r)
	}

	return tasks, rows.Err()
}

// ReplaceTasks swaps the stored list for rows in a single transaction.
// Positions are assigned from slice order.
func (db *DB) ReplaceTasks(rows []TaskRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (position, text, completed, due_date, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.Exec(i, r.Text, r.Completed, r.DueDate); err != nil {
			return fmt.Errorf("inserting task %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// CountTasks returns the number of stored tasks
func (db *DB) CountTasks() (int, error) {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return count, nil
}
