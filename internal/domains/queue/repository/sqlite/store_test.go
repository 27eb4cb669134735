package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "quedee/infras/otel/mocks"
	"quedee/internal/domains/queue/model"
	"quedee/internal/domains/queue/repository/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "quedee.db"), otelMocks.NewOtel())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestLoadWithoutSnapshot(t *testing.T) {
	store := newStore(t)

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	snapshot := model.Snapshot{
		Bookings: []model.Booking{
			{
				ID:            "b1",
				CustomerName:  "Alice",
				ResourceID:    model.ResourceAny,
				ServiceID:     "v2",
				Status:        model.StatusCalling,
				TicketNumber:  "แ001",
				Timestamp:     1700000000000,
				PaymentStatus: model.PaymentPendingVerification,
				PaymentSlip:   "slip-001",
			},
		},
		Resources: model.SeedResources(),
	}

	require.NoError(t, store.Save(ctx, snapshot))

	loaded, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snapshot, loaded)
}

func TestLoadMalformedRowFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quedee.db")

	store, err := sqlite.New(path, otelMocks.NewOtel())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	db, err := sqlx.Connect("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO snapshots (key, value) VALUES (?, ?)`, "booking_v3", "{not json")
	require.NoError(t, err)

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveUpserts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, model.Snapshot{Resources: model.SeedResources()}))
	require.NoError(t, store.Save(ctx, model.Snapshot{Resources: []model.Resource{}}))

	loaded, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, loaded.Resources)
}
