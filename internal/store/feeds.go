package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moonball-archive/scorebook/internal/schema"
)

// FeedRecord is one persisted feed classification result. EntityType is
// "team" or "player".
type FeedRecord struct {
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Index      int             `json:"index"`
	Kind       string          `json:"kind"`
	Message    json.RawMessage `json:"message"`
}

// SaveRawEntity caches a raw team or player document as fetched from
// the archive API.
func (s *Store) SaveRawEntity(ctx context.Context, entityType, entityID string, doc json.RawMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO raw_entities (entity_type, entity_id, doc, fetched_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET doc = $3, fetched_at = now()`,
		entityType, entityID, doc,
	)
	if err != nil {
		return fmt.Errorf("save raw entity: %w", err)
	}
	return nil
}

// GetRawEntity returns a cached raw document, or nil when the entity
// has never been fetched.
func (s *Store) GetRawEntity(ctx context.Context, entityType, entityID string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM raw_entities WHERE entity_type = $1 AND entity_id = $2`,
		entityType, entityID,
	).Scan(&doc)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw entity: %w", err)
	}
	return doc, nil
}

// SaveFeedRecords replaces the stored classification of one entity's
// feed.
func (s *Store) SaveFeedRecords(ctx context.Context, entityType, entityID string, msgs []schema.FeedMessage) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM feed_records WHERE entity_type = $1 AND entity_id = $2`,
		entityType, entityID,
	)
	if err != nil {
		return fmt.Errorf("clear feed records: %w", err)
	}
	for i, m := range msgs {
		body, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal feed record %d: %w", i, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO feed_records (entity_type, entity_id, entry_index, kind, message)
			VALUES ($1, $2, $3, $4, $5)`,
			entityType, entityID, i, string(m.FeedKind()), body,
		)
		if err != nil {
			return fmt.Errorf("insert feed record %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetFeedRecords returns one entity's stored feed classification in
// feed order.
func (s *Store) GetFeedRecords(ctx context.Context, entityType, entityID string) ([]FeedRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT entry_index, kind, message FROM feed_records
		WHERE entity_type = $1 AND entity_id = $2 ORDER BY entry_index`,
		entityType, entityID,
	)
	if err != nil {
		return nil, fmt.Errorf("get feed records: %w", err)
	}
	defer rows.Close()

	var out []FeedRecord
	for rows.Next() {
		rec := FeedRecord{EntityType: entityType, EntityID: entityID}
		if err := rows.Scan(&rec.Index, &rec.Kind, &rec.Message); err != nil {
			return nil, fmt.Errorf("scan feed record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
