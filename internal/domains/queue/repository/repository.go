package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"quedee/internal/domains/queue/model"
)

// Store persists the full queue snapshot. Every mutation in the service
// saves the whole {bookings, resources} document; startup loads the last
// saved one.
type Store interface {
	// Load returns the last saved snapshot. The boolean is false when no
	// usable snapshot exists, including when the stored payload cannot be
	// decoded; callers fall back to the seed catalog in that case.
	Load(ctx context.Context) (model.Snapshot, bool, error)

	// Save durably replaces the stored snapshot.
	Save(ctx context.Context, snapshot model.Snapshot) error
}
