package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. SQLite is the default;
// set DB_TYPE=postgres and DATABASE_URL for PostgreSQL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	if dbType == "postgres" {
		url := os.Getenv("DATABASE_URL")
		if url == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dataDir := "data"
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "polbot.db")
		}
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		for _, pragma := range []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
		} {
			if _, err := db.Exec(pragma); err != nil {
				return fmt.Errorf("failed to set pragma: %v", err)
			}
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return InitSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// InitSchema creates necessary tables and indexes if they don't exist.
// Exported so tests can run against an in-memory database.
func InitSchema() error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	boolTrue, boolFalse := "1", "0"
	if DB.DriverName() == "postgres" {
		serial = "SERIAL PRIMARY KEY"
		boolTrue, boolFalse = "true", "false"
	}

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS users (
				id %s,
				username TEXT NOT NULL UNIQUE,
				chat_id BIGINT NOT NULL DEFAULT 0,
				words_per_day INTEGER NOT NULL DEFAULT 10,
				notification_hour INTEGER NOT NULL DEFAULT 9,
				notification_enabled BOOLEAN NOT NULL DEFAULT %s,
				is_admin BOOLEAN NOT NULL DEFAULT %s,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, serial, boolTrue, boolFalse),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS words (
				id %s,
				voc TEXT NOT NULL UNIQUE,
				meaning TEXT NOT NULL DEFAULT '',
				class TEXT NOT NULL DEFAULT 'other',
				gender TEXT NOT NULL DEFAULT '',
				animate BOOLEAN NOT NULL DEFAULT %s,
				forms TEXT,
				adj_forms TEXT,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`, serial, boolFalse),
		`CREATE INDEX IF NOT EXISTS idx_words_class ON words(class)`,
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS user_word_progress (
				id %s,
				user_id BIGINT NOT NULL,
				word_id INTEGER NOT NULL,
				weight INTEGER NOT NULL DEFAULT 10,
				accuracy REAL,
				last_practiced TIMESTAMP,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(user_id, word_id),
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (word_id) REFERENCES words(id)
			)`, serial),
		`CREATE INDEX IF NOT EXISTS idx_uwp_user_weight ON user_word_progress(user_id, weight DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_uwp_user_last ON user_word_progress(user_id, last_practiced)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
