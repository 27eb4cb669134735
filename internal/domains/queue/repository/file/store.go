package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"quedee/infras/otel"
	"quedee/internal/domains/queue/model"
	"quedee/shared/constant"
)

// Store keeps the snapshot as a single JSON document on local disk, the
// same layout the original demo kept under its localStorage key. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// half-written snapshot behind.
type Store struct {
	path string
	otel otel.Otel
}

func New(path string, ot otel.Otel) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &Store{path: path, otel: ot}, nil
}

func (s *Store) Load(ctx context.Context) (snapshot model.Snapshot, ok bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Snapshot{}, false, nil
		}

		return model.Snapshot{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, &snapshot); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("snapshot is malformed, falling back to seed catalog")

		return model.Snapshot{}, false, nil
	}

	return snapshot, true, nil
}

func (s *Store) Save(ctx context.Context, snapshot model.Snapshot) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
