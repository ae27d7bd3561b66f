package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"
)

// Storage owns the ledger database. It is opened once by main and passed
// to every component that needs it.
type Storage struct {
	DB       *sql.DB
	exec     bob.DB
	location *time.Location
}

// NewStorage opens (creating if needed) the SQLite database at path and
// brings its schema up to date. Entry dates are read and written in location.
func NewStorage(path string, location *time.Location) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	if _, _, err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:       db,
		exec:     bob.NewDB(db),
		location: location,
	}, nil
}

// Open connects to the SQLite file with WAL journaling and a busy timeout
// applied to every pooled connection.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Read returns a Reader that runs outside any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec, s.location)
}

// Write begins a transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx, s.location)
	return &writer, nil
}

// Location is the time zone entry dates are expressed in.
func (s *Storage) Location() *time.Location {
	return s.location
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
