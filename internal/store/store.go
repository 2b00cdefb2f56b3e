// Package store persists identifier occurrences in a SQLite index.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

// Querier abstracts *sql.DB and *sql.Tx so store methods work in both
// contexts.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store wraps a SQLite connection holding the symbol index.
type Store struct {
	db     *sql.DB
	q      Querier // active querier: db or tx
	dbPath string
}

// Open opens or creates the index database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	s := &Store{db: db, dbPath: path}
	s.q = s.db
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens an in-memory index (for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open memory index: %w", err)
	}
	s := &Store{db: db, dbPath: ":memory:"}
	s.q = s.db
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// WithTransaction executes fn within a single SQLite transaction. The
// callback receives a transaction-scoped Store; the receiver's querier
// is never mutated, so concurrent readers are unaffected.
func (s *Store) WithTransaction(fn func(txStore *Store) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	txStore := &Store{db: s.db, q: tx, dbPath: s.dbPath}
	if err := fn(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates the tables on first open and refuses to touch an
// index written by an incompatible version.
func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version`).Scan(&version)
	if err == nil {
		if version != schemaVersion {
			return fmt.Errorf("index schema version %d, want %d: delete the index to continue", version, schemaVersion)
		}
		return nil
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);
	INSERT INTO schema_version (version) VALUES (%d);

	CREATE TABLE IF NOT EXISTS files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		digest TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS refs (
		file_id INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
		line INTEGER NOT NULL,
		col_start INTEGER NOT NULL,
		col_end INTEGER NOT NULL,
		scope TEXT NOT NULL,
		entity TEXT NOT NULL,
		identifier TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS defs (
		file_id INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
		line INTEGER NOT NULL,
		col_start INTEGER NOT NULL,
		col_end INTEGER NOT NULL,
		scope TEXT NOT NULL,
		entity TEXT NOT NULL,
		identifier TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS decls (
		file_id INTEGER NOT NULL REFERENCES files(id) ON DELETE CASCADE,
		line INTEGER NOT NULL,
		col_start INTEGER NOT NULL,
		col_end INTEGER NOT NULL,
		scope TEXT NOT NULL,
		entity TEXT NOT NULL,
		identifier TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_refs_ident ON refs(identifier);
	CREATE INDEX IF NOT EXISTS idx_defs_ident ON defs(identifier);
	CREATE INDEX IF NOT EXISTS idx_decls_ident ON decls(identifier);
	CREATE INDEX IF NOT EXISTS idx_refs_file ON refs(file_id);
	CREATE INDEX IF NOT EXISTS idx_defs_file ON defs(file_id);
	CREATE INDEX IF NOT EXISTS idx_decls_file ON decls(file_id);
	`, schemaVersion)

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
