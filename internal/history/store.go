// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/history/store.go
// Summary: SQLite-backed persistence of overview session events.
//
// Events are queued onto a channel and written by a background goroutine,
// so recording never blocks the frame loop. A full queue drops events.

package history

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"panorama/overview"
)

// Event kinds stored in the events table.
const (
	KindActivated   = "activated"
	KindDeactivated = "deactivated"
	KindWindowMoved = "window_moved"
	KindSwitched    = "workspace_switched"
)

// Event is one recorded session event.
type Event struct {
	ID            int64
	Time          time.Time
	Kind          string
	WindowCount   int
	Window        uint64
	FromWorkspace int
	ToWorkspace   int
}

const historySchemaVersion = 1

const historySchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp INTEGER NOT NULL,       -- UnixNano
    kind TEXT NOT NULL,
    window_count INTEGER DEFAULT 0,
    window INTEGER DEFAULT 0,
    from_ws INTEGER DEFAULT -1,
    to_ws INTEGER DEFAULT -1
);

CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
`

// Store records overview session events into SQLite. It satisfies the
// engine's Recorder interface.
type Store struct {
	db *sql.DB

	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	flushCh chan chan struct{}
}

// DefaultPath returns the history database location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "panorama", "history.db"), nil
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := ensureSchemaVersion(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}

	s := &Store{
		db:      db,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		flushCh: make(chan chan struct{}),
	}
	go s.writer()
	return s, nil
}

func ensureSchemaVersion(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err == sql.ErrNoRows {
		current = 0
	} else if err != nil {
		current = 0
	}
	if current == historySchemaVersion {
		return nil
	}
	if current > historySchemaVersion {
		return fmt.Errorf("history database version %d is newer than supported %d",
			current, historySchemaVersion)
	}
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", historySchemaVersion)
	return err
}

// SessionActivated records the start of an overview session.
func (s *Store) SessionActivated(windowCount int) {
	s.enqueue(Event{Kind: KindActivated, WindowCount: windowCount, FromWorkspace: -1, ToWorkspace: -1})
}

// SessionDeactivated records the end of an overview session.
func (s *Store) SessionDeactivated() {
	s.enqueue(Event{Kind: KindDeactivated, FromWorkspace: -1, ToWorkspace: -1})
}

// WindowMoved records a drag relocation between workspaces.
func (s *Store) WindowMoved(handle overview.WindowHandle, fromWorkspace, toWorkspace int) {
	s.enqueue(Event{
		Kind:          KindWindowMoved,
		Window:        uint64(handle),
		FromWorkspace: fromWorkspace,
		ToWorkspace:   toWorkspace,
	})
}

// WorkspaceSwitched records a workspace change issued by the overview.
func (s *Store) WorkspaceSwitched(from, to int) {
	s.enqueue(Event{Kind: KindSwitched, FromWorkspace: from, ToWorkspace: to})
}

func (s *Store) enqueue(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	select {
	case s.eventCh <- ev:
	default:
		log.Printf("History: Event queue full, dropping %s event", ev.Kind)
	}
}

func (s *Store) writer() {
	defer close(s.doneCh)
	for {
		select {
		case ev := <-s.eventCh:
			s.insert(ev)
		case ack := <-s.flushCh:
			s.drain()
			close(ack)
		case <-s.stopCh:
			s.drain()
			return
		}
	}
}

func (s *Store) drain() {
	for {
		select {
		case ev := <-s.eventCh:
			s.insert(ev)
		default:
			return
		}
	}
}

// Flush blocks until every queued event is written.
func (s *Store) Flush() {
	ack := make(chan struct{})
	select {
	case s.flushCh <- ack:
		<-ack
	case <-s.doneCh:
	}
}

func (s *Store) insert(ev Event) {
	_, err := s.db.Exec(
		"INSERT INTO events (timestamp, kind, window_count, window, from_ws, to_ws) VALUES (?, ?, ?, ?, ?, ?)",
		ev.Time.UnixNano(), ev.Kind, ev.WindowCount, ev.Window, ev.FromWorkspace, ev.ToWorkspace,
	)
	if err != nil {
		log.Printf("History: Failed to insert %s event: %v", ev.Kind, err)
	}
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		"SELECT id, timestamp, kind, window_count, window, from_ws, to_ws FROM events ORDER BY timestamp DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var ts int64
		if err := rows.Scan(&ev.ID, &ts, &ev.Kind, &ev.WindowCount, &ev.Window,
			&ev.FromWorkspace, &ev.ToWorkspace); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Time = time.Unix(0, ts)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Close flushes pending events and closes the database.
func (s *Store) Close() error {
	close(s.stopCh)
	<-s.doneCh
	return s.db.Close()
}
