package db

import "fmt"

// RunMigrations applies any pending database migrations
func (db *DB) RunMigrations() error {
	// Databases created before due dates existed lack the column
	if err := db.runDueDateMigration(); err != nil {
		return err
	}

	return nil
}

func (db *DB) runDueDateMigration() error {
	// Check if the due_date column exists
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('tasks')
		WHERE name = 'due_date'
	`).Scan(&count)

	if err != nil {
		return fmt.Errorf("checking for due_date column: %w", err)
	}

	if count > 0 {
		return nil
	}

	db.logger.Info("running migration", "name", "due_date")

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`ALTER TABLE tasks ADD COLUMN due_date INTEGER`)
	if err != nil && err.Error() != "duplicate column name: due_date" {
		return fmt.Errorf("adding due_date column: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}

	db.logger.Info("migration completed", "name", "due_date")
	return nil
}
