package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// schemaVersion is the current persisted schema version.
const schemaVersion = 1

// migrate runs pending migrations once, at open time, and stamps the
// schema version. Earlier releases stored mistake examples without
// stable ids; the UI needs those for safe list-splice updates.
func (s *Store) migrate(ctx context.Context) error {
	current, err := s.currentVersion(ctx)
	if err != nil {
		return err
	}

	if current < 1 {
		if err := s.patchMistakeExampleIDs(ctx); err != nil {
			return fmt.Errorf("v1 mistake example ids: %w", err)
		}
	}

	if current != schemaVersion {
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO schema_info (id, version) VALUES (1, ?)
			 ON CONFLICT(id) DO UPDATE SET version = excluded.version`,
			schemaVersion,
		)
	}
	return err
}

func (s *Store) currentVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_info WHERE id = 1`).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return v, err
}

// patchMistakeExampleIDs assigns a uuid to every stored mistake example
// that lacks one. The profile record is handled as loose JSON here so the
// migration stays valid even as the typed profile shape evolves.
func (s *Store) patchMistakeExampleIDs(_ context.Context) error {
	raw, ok, err := s.Get(KeyProfile)
	if err != nil || !ok {
		return err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Corrupt record; leave it, loads will fall back to defaults.
		return nil
	}

	examplesRaw, ok := doc["mistakeExamples"]
	if !ok {
		return nil
	}
	var examples []map[string]any
	if err := json.Unmarshal(examplesRaw, &examples); err != nil {
		return nil
	}

	changed := false
	for _, ex := range examples {
		if id, _ := ex["id"].(string); id == "" {
			ex["id"] = uuid.New().String()
			changed = true
		}
	}
	if !changed {
		return nil
	}

	patched, err := json.Marshal(examples)
	if err != nil {
		return err
	}
	doc["mistakeExamples"] = patched

	out, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.Set(KeyProfile, out)
}
