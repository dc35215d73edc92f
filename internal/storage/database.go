/* Session-scoped store. The database lives in memory: history sequences and
   the plan audit trail last exactly as long as the session and reset with it,
   there is no durable storage. */

package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store backs the session's append-only sequences.
type Store struct {
	db *sql.DB
}

func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to session store: %w", err)
	}

	// The in-memory database disappears when its last connection closes, so
	// the store must hold exactly one.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS weight_entries (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"date" TEXT NOT NULL,
			"weight" REAL NOT NULL
	);
	CREATE TABLE IF NOT EXISTS meal_log_entries (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"date" TEXT NOT NULL,
			"slots" TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS plan_records (
			"id" TEXT PRIMARY KEY,
			"bmi" REAL NOT NULL,
			"calories" INTEGER NOT NULL,
			"plan_json" TEXT NOT NULL,
			"created_at" DATETIME NOT NULL
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create session schema: %w", err)
	}
	return nil
}

// Clear wipes every sequence. Used when the session resets on logout.
func (s *Store) Clear() error {
	for _, table := range []string{"weight_entries", "meal_log_entries", "plan_records"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
