package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Finding is one lint result: an input the grammars or templates could
// not classify, kept for regression triage.
type Finding struct {
	ID        uuid.UUID `json:"id"`
	RunID     uuid.UUID `json:"run_id"`
	Source    string    `json:"source"` // "game", "team", or "player"
	DocID     string    `json:"doc_id"`
	Index     int       `json:"index"`
	EventType string    `json:"event_type"`
	Text      string    `json:"text"`
	Ambiguous bool      `json:"ambiguous"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordFinding persists one lint finding.
func (s *Store) RecordFinding(ctx context.Context, f Finding) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO lint_findings (id, run_id, source, doc_id, entry_index, event_type, text, ambiguous, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
		id, f.RunID, f.Source, f.DocID, f.Index, f.EventType, f.Text, f.Ambiguous,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert lint finding: %w", err)
	}
	return id, nil
}

// ListFindings returns all findings of one sweep run, oldest first.
func (s *Store) ListFindings(ctx context.Context, runID uuid.UUID) ([]Finding, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, run_id, source, doc_id, entry_index, event_type, text, ambiguous, created_at
		FROM lint_findings WHERE run_id = $1 ORDER BY created_at`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list lint findings: %w", err)
	}
	defer rows.Close()

	var out []Finding
	for rows.Next() {
		var f Finding
		if err := rows.Scan(&f.ID, &f.RunID, &f.Source, &f.DocID, &f.Index,
			&f.EventType, &f.Text, &f.Ambiguous, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lint finding: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// SweepRun is one batch classification run over the archive.
type SweepRun struct {
	ID           uuid.UUID  `json:"id"`
	Kind         string     `json:"kind"` // "games" or "feeds"
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	Docs         int        `json:"docs"`
	Unrecognized int        `json:"unrecognized"`
}

// StartSweepRun records the beginning of a sweep and returns its id.
func (s *Store) StartSweepRun(ctx context.Context, kind string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sweep_runs (id, kind, started_at) VALUES ($1, $2, now())`,
		id, kind,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert sweep run: %w", err)
	}
	return id, nil
}

// FinishSweepRun records a sweep's totals.
func (s *Store) FinishSweepRun(ctx context.Context, id uuid.UUID, docs, unrecognized int) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE sweep_runs SET finished_at = now(), docs = $1, unrecognized = $2
		WHERE id = $3`,
		docs, unrecognized, id,
	)
	if err != nil {
		return fmt.Errorf("finish sweep run: %w", err)
	}
	return nil
}

// GetSweepRun returns one sweep run, or nil when the id is unknown.
func (s *Store) GetSweepRun(ctx context.Context, id uuid.UUID) (*SweepRun, error) {
	var run SweepRun
	err := s.pool.QueryRow(ctx, `
		SELECT id, kind, started_at, finished_at, docs, unrecognized
		FROM sweep_runs WHERE id = $1`,
		id,
	).Scan(&run.ID, &run.Kind, &run.StartedAt, &run.FinishedAt, &run.Docs, &run.Unrecognized)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweep run: %w", err)
	}
	return &run, nil
}
