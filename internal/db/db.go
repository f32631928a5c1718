package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"hideout-tracker/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

func dbPath() string {
	// Prefer working directory so the DB is stable across go run / go build.
	// Fall back to executable directory for deployed builds.
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "hideout.db")
	}
	exe, _ := os.Executable()
	return filepath.Join(filepath.Dir(exe), "hideout.db")
}

// Open opens (or creates) the SQLite database and runs migrations.
func Open() (*DB, error) {
	return OpenAt(dbPath())
}

// OpenAt opens the database at an explicit path.
func OpenAt(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	// Try to read current version
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS config (
				key   TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS crafts (
				station_id      TEXT NOT NULL,
				craft_id        TEXT NOT NULL,
				position        INTEGER NOT NULL,
				name            TEXT NOT NULL,
				material_cost   INTEGER NOT NULL,
				sell_price      INTEGER NOT NULL,
				output_quantity INTEGER NOT NULL DEFAULT 1,
				craft_time      INTEGER NOT NULL,
				favorite        INTEGER NOT NULL DEFAULT 0,
				source          TEXT NOT NULL,
				PRIMARY KEY (station_id, craft_id)
			);
			CREATE INDEX IF NOT EXISTS idx_crafts_station ON crafts(station_id, position);

			CREATE TABLE IF NOT EXISTS craft_materials (
				station_id TEXT NOT NULL,
				craft_id   TEXT NOT NULL,
				position   INTEGER NOT NULL,
				name       TEXT NOT NULL,
				quantity   INTEGER NOT NULL,
				unit_price INTEGER NOT NULL,
				total_cost INTEGER NOT NULL,
				PRIMARY KEY (station_id, craft_id, position)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Info("DB", "Applied migration v1")
	}

	if version < 2 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS price_snapshots (
				date            TEXT NOT NULL,
				craft_key       TEXT NOT NULL,
				sell_price      INTEGER NOT NULL,
				material_cost   INTEGER NOT NULL,
				profit          INTEGER NOT NULL,
				profit_per_hour REAL NOT NULL,
				PRIMARY KEY (date, craft_key)
			);

			CREATE TABLE IF NOT EXISTS completions (
				id            TEXT PRIMARY KEY,
				craft_id      TEXT NOT NULL,
				station_id    TEXT NOT NULL,
				name          TEXT NOT NULL,
				profit        INTEGER NOT NULL,
				craft_time    INTEGER NOT NULL,
				material_cost INTEGER NOT NULL,
				sell_price    INTEGER NOT NULL,
				timestamp     TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_completions_ts ON completions(timestamp);

			INSERT OR IGNORE INTO schema_version (version) VALUES (2);
		`)
		if err != nil {
			return fmt.Errorf("migration v2: %w", err)
		}
		logger.Info("DB", "Applied migration v2 (history)")
	}

	return nil
}
