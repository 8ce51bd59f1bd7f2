package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS catalogs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			root_path TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			catalog_id INTEGER NOT NULL,
			rel_path TEXT NOT NULL,
			hash TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (catalog_id) REFERENCES catalogs(id),
			UNIQUE (catalog_id, rel_path)
		);`,
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			file_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			serial_number TEXT NOT NULL,
			part_number TEXT NOT NULL,
			name_english TEXT NOT NULL,
			name_lang1 TEXT NOT NULL,
			name_lang2 TEXT NOT NULL,
			name_lang3 TEXT NOT NULL,
			name_lang4 TEXT NOT NULL,
			name_lang5 TEXT NOT NULL,
			part_number_alt TEXT NOT NULL,
			reference_number TEXT NOT NULL,
			additional_info TEXT NOT NULL,
			extra_data TEXT NOT NULL,
			FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_serial ON records(serial_number);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
