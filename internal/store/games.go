package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moonball-archive/scorebook/internal/gamelog"
)

// SaveRawGame caches a raw game document as fetched from the archive
// API, so reclassification sweeps do not have to refetch it.
func (s *Store) SaveRawGame(ctx context.Context, gameID string, season, day int, doc json.RawMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO raw_games (game_id, season, day, doc, fetched_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (game_id) DO UPDATE SET doc = $4, fetched_at = now()`,
		gameID, season, day, doc,
	)
	if err != nil {
		return fmt.Errorf("save raw game: %w", err)
	}
	return nil
}

// GetRawGame returns a cached raw game document, or nil when the game
// has never been fetched.
func (s *Store) GetRawGame(ctx context.Context, gameID string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM raw_games WHERE game_id = $1`, gameID,
	).Scan(&doc)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw game: %w", err)
	}
	return doc, nil
}

// StoredEvent is one persisted classification result.
type StoredEvent struct {
	Index   int             `json:"index"`
	Kind    string          `json:"kind"`
	Message json.RawMessage `json:"message"`
}

// SaveParsedEvents replaces the stored classification of a game with a
// fresh one. Replacement is atomic; a sweep rerun never leaves a game
// half old, half new.
func (s *Store) SaveParsedEvents(ctx context.Context, gameID string, events []gamelog.ParsedEvent) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM parsed_events WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("clear parsed events: %w", err)
	}
	for _, ev := range events {
		msg, err := json.Marshal(ev.Message)
		if err != nil {
			return fmt.Errorf("marshal event %d: %w", ev.Index, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO parsed_events (game_id, event_index, kind, message)
			VALUES ($1, $2, $3, $4)`,
			gameID, ev.Index, string(ev.Kind), msg,
		)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", ev.Index, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetParsedEvents returns a game's stored classification in log order.
func (s *Store) GetParsedEvents(ctx context.Context, gameID string) ([]StoredEvent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_index, kind, message FROM parsed_events
		WHERE game_id = $1 ORDER BY event_index`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("get parsed events: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var ev StoredEvent
		if err := rows.Scan(&ev.Index, &ev.Kind, &ev.Message); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
