// Package memory implements the session memory capability on SQLite.
// Notes are append-only per session; workers and the coordinator share one
// store so context accumulates across runs.
package memory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	note       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_session_notes_session
	ON session_notes(session_id, id);
`

// SQLiteMemory implements core.MemoryCapability with SQLite storage.
type SQLiteMemory struct {
	mu        sync.RWMutex
	db        *sql.DB
	sessionID string
}

// Option configures the store.
type Option func(*SQLiteMemory)

// WithSessionID resumes an existing session instead of starting a new one.
func WithSessionID(id string) Option {
	return func(m *SQLiteMemory) {
		m.sessionID = id
	}
}

// NewSQLiteMemory opens (or creates) the store at dbPath.
func NewSQLiteMemory(dbPath string, opts ...Option) (*SQLiteMemory, error) {
	m := &SQLiteMemory{sessionID: uuid.NewString()}
	for _, opt := range opts {
		opt(m)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating memory directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening memory database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying memory schema: %w", err)
	}

	m.db = db
	return m, nil
}

// Name identifies the capability in worker status output.
func (m *SQLiteMemory) Name() string { return "sqlite-session-memory" }

// SessionID returns the session all notes are appended under.
func (m *SQLiteMemory) SessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// Append stores one note at the end of the session.
func (m *SQLiteMemory) Append(ctx context.Context, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.ExecContext(ctx,
		"INSERT INTO session_notes (session_id, note, created_at) VALUES (?, ?, ?)",
		m.sessionID, note, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("appending session note: %w", err)
	}
	return nil
}

// Recent returns up to limit notes, newest first.
func (m *SQLiteMemory) Recent(ctx context.Context, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := m.db.QueryContext(ctx,
		"SELECT note FROM session_notes WHERE session_id = ? ORDER BY id DESC LIMIT ?",
		m.sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("reading session notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []string
	for rows.Next() {
		var note string
		if err := rows.Scan(&note); err != nil {
			return nil, fmt.Errorf("scanning session note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session notes: %w", err)
	}
	return notes, nil
}

// Close closes the underlying database.
func (m *SQLiteMemory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
