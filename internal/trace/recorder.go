// Package trace records step events emitted by script runs.
//
// The recorder is backed by an in-memory SQLite database. Nothing is ever
// written to disk: the external contract of the program is persistence-free,
// and the recorder exists only so the CLI's --trace flag and the conformance
// harness can query an ordered view of what a run did.
package trace

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// StepEvent is a single recorded step of a script run.
type StepEvent struct {
	RunToken string `json:"run_token"`
	Seq      int64  `json:"seq"`
	Step     string `json:"step"`
	Detail   string `json:"detail,omitempty"`
}

// Recorder stores step events for script runs.
type Recorder struct {
	db *sql.DB
}

// Open creates a fresh in-memory recorder.
//
// Each recorder is fully isolated: two recorders never share events.
func Open() (*Recorder, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open trace database: %w", err)
	}

	// An in-memory SQLite database is private to its connection, so the
	// pool must be pinned to a single connection or queries would see an
	// empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to trace database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply trace schema: %w", err)
	}

	return &Recorder{db: db}, nil
}

// Close releases the in-memory database.
func (r *Recorder) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Record inserts a step event.
// Duplicate (run_token, seq) pairs are silently ignored for idempotency.
func (r *Recorder) Record(ctx context.Context, ev StepEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO step_events (run_token, seq, step, detail)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_token, seq) DO NOTHING
	`, ev.RunToken, ev.Seq, ev.Step, ev.Detail)
	if err != nil {
		return fmt.Errorf("record step event: %w", err)
	}
	return nil
}

// List returns all step events for a run token in deterministic order
// (ORDER BY seq ASC). Returns an empty slice, not nil, when the run token
// has no events.
func (r *Recorder) List(ctx context.Context, runToken string) ([]StepEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT run_token, seq, step, detail
		FROM step_events
		WHERE run_token = ?
		ORDER BY seq ASC
	`, runToken)
	if err != nil {
		return nil, fmt.Errorf("query step events: %w", err)
	}
	defer rows.Close()

	events := []StepEvent{}
	for rows.Next() {
		var ev StepEvent
		if err := rows.Scan(&ev.RunToken, &ev.Seq, &ev.Step, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scan step event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate step events: %w", err)
	}

	return events, nil
}
