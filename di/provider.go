package di

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"quedee/config"
	"quedee/infras/otel"
	"quedee/internal/domains/queue/repository"
	fileStore "quedee/internal/domains/queue/repository/file"
	sqliteStore "quedee/internal/domains/queue/repository/sqlite"
	"quedee/shared/events"
)

const (
	storeDriverFile   = "file"
	storeDriverSQLite = "sqlite"
)

func newStore(cfg *config.Config, ot otel.Otel) (repository.Store, error) {
	switch cfg.Store.Driver {
	case storeDriverFile:
		return fileStore.New(cfg.Store.Path, ot)
	case storeDriverSQLite:
		return sqliteStore.New(cfg.Store.SQLite.Path, ot)
	default:
		return nil, errors.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newBus builds the event bus with an audit subscriber attached, so every
// domain event lands in the structured log.
func newBus() *events.Bus {
	bus := events.NewBus()

	bus.SubscribeAll(func(event events.Event) {
		log.Info().
			Str("event", event.Type).
			Str("booking_id", event.BookingID).
			Str("ticket", event.Ticket).
			Str("detail", event.Detail).
			Msg("domain event")
	})

	return bus
}
