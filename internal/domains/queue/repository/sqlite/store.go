package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"quedee/infras/otel"
	"quedee/internal/domains/queue/model"
	"quedee/shared/constant"
)

// snapshotKey matches the storage key the original demo used, so a dump of
// the snapshots table reads the same as the old localStorage entry.
const snapshotKey = "booking_v3"

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store keeps the snapshot as a single JSON document row in a local SQLite
// database. Same contract as the file store with crash safety delegated to
// SQLite's journal.
type Store struct {
	db   *sqlx.DB
	otel otel.Otel
}

func New(path string, ot otel.Otel) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &Store{db: db, otel: ot}, nil
}

func (s *Store) Load(ctx context.Context) (snapshot model.Snapshot, ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	var raw string
	err = s.db.GetContext(ctx, &raw, `SELECT value FROM snapshots WHERE key = ?`, snapshotKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Snapshot{}, false, nil
		}

		return model.Snapshot{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		log.Warn().Err(err).Msg("snapshot row is malformed, falling back to seed catalog")

		return model.Snapshot{}, false, nil
	}

	return snapshot, true, nil
}

func (s *Store) Save(ctx context.Context, snapshot model.Snapshot) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		snapshotKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
