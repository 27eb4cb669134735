package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quedee/config"
	"quedee/infras/otel"
	"quedee/internal/domains/queue/model"
	"quedee/internal/domains/queue/model/dto"
	"quedee/internal/domains/queue/repository"
	"quedee/shared/constant"
	"quedee/shared/events"
	"quedee/shared/failure"
	"quedee/shared/timezone"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

// Queue is the single source of truth for bookings, resources, and the
// offering catalog. All mutations are serialized behind one lock, so ticket
// numbers stay unique and at most one booking is ever in calling status,
// even with concurrent HTTP callers.
type Queue interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (dto.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, slip string) (dto.BookingResponse, error)
	ToggleResourceAvailability(ctx context.Context, id string) (model.Resource, error)
	ResetAll(ctx context.Context) error

	Booking(ctx context.Context, id string) (dto.BookingResponse, error)
	Bookings(ctx context.Context, status model.BookingStatus) dto.GetBookingsResponse
	CurrentlyServing(ctx context.Context) dto.ServingResponse
	QueuePosition(ctx context.Context, id string) (dto.PositionResponse, error)
	Stats(ctx context.Context) dto.StatsResponse
	Resources(ctx context.Context) []model.Resource
	Offerings(ctx context.Context) []model.Offering
	Profile(ctx context.Context) model.Profile
}

type serviceImpl struct {
	store repository.Store
	cfg   *config.Config
	bus   *events.Bus
	otel  otel.Otel

	mu        sync.Mutex
	bookings  []model.Booking
	resources []model.Resource
	offerings []model.Offering
	profile   model.Profile

	// lastTimestamp guarantees strictly increasing creation timestamps even
	// when two bookings land within the same millisecond.
	lastTimestamp int64
}

// New restores state from the last persisted snapshot, or seeds the catalog
// when none exists or the stored payload is unusable.
func New(store repository.Store, cfg *config.Config, bus *events.Bus, ot otel.Otel) (Queue, error) {
	s := &serviceImpl{
		store:     store,
		cfg:       cfg,
		bus:       bus,
		otel:      ot,
		offerings: model.SeedOfferings(),
		profile:   model.SeedProfile(),
	}

	snapshot, ok, err := store.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if ok {
		s.bookings = snapshot.Bookings
		s.resources = snapshot.Resources

		for _, booking := range s.bookings {
			if booking.Timestamp > s.lastTimestamp {
				s.lastTimestamp = booking.Timestamp
			}
		}

		log.Info().Int("bookings", len(s.bookings)).Msg("restored queue state from snapshot")
	}

	if s.resources == nil {
		s.resources = model.SeedResources()
	}

	return s, nil
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ResourceID != model.ResourceAny && s.resourceIndex(req.ResourceID) < 0 {
		return res, failure.BadRequestFromString("resource does not exist") //nolint:wrapcheck
	}

	// Unknown service ids fall back to the default ticket prefix instead of
	// failing; the original demo accepted them, and the ticket still comes
	// out well formed.
	prefix := model.DefaultTicketPrefix
	for _, offering := range s.offerings {
		if offering.ID == req.ServiceID {
			prefix = string([]rune(offering.Name)[:1])
			break
		}
	}

	timestamp := timezone.Now().UnixMilli()
	if timestamp <= s.lastTimestamp {
		timestamp = s.lastTimestamp + 1
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		ResourceID:    req.ResourceID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        model.StatusPending,
		TicketNumber:  fmt.Sprintf("%s%03d", prefix, len(s.bookings)+1),
		Timestamp:     timestamp,
		PaymentStatus: model.PaymentUnpaid,
	}

	bookings := append(s.copyBookings(), booking)

	if err = s.persist(ctx, bookings, s.resources); err != nil {
		log.Error().Err(err).Msg("failed to persist booking")

		return res, failure.InternalError(fmt.Errorf("failed to persist booking: %w", err)) //nolint:wrapcheck
	}

	s.bookings = bookings
	s.lastTimestamp = timestamp

	scope.SetAttribute(constant.OtelTicketAttributeKey, booking.TicketNumber)

	s.bus.Publish(events.Event{
		Type:      events.TypeBookingCreated,
		BookingID: booking.ID,
		Ticket:    booking.TicketNumber,
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	if !status.Valid() {
		return res, failure.BadRequestFromString("unknown booking status") //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.bookingIndex(id)
	if index < 0 {
		return res, failure.NotFound(model.EntityBooking) //nolint:wrapcheck
	}

	current := s.bookings[index]

	// Repeating the current status is treated as an idempotent retry.
	if current.Status == status {
		res.FromModel(current)

		return res, nil
	}

	if s.cfg.App.StrictTransitions && !model.ValidTransition(current.Status, status) {
		return res, failure.Conflict(fmt.Sprintf("cannot move booking from %s to %s", current.Status, status)) //nolint:wrapcheck
	}

	bookings := s.copyBookings()

	// A single serving slot: calling a booking settles whichever booking is
	// being called right now.
	if status == model.StatusCalling {
		for i := range bookings {
			if bookings[i].Status == model.StatusCalling && bookings[i].ID != id {
				bookings[i].Status = model.StatusCompleted
			}
		}
	}

	bookings[index].Status = status

	if err = s.persist(ctx, bookings, s.resources); err != nil {
		log.Error().Err(err).Msg("failed to persist status change")

		return res, failure.InternalError(fmt.Errorf("failed to persist status change: %w", err)) //nolint:wrapcheck
	}

	s.bookings = bookings

	s.bus.Publish(events.Event{
		Type:      events.TypeBookingStatus,
		BookingID: id,
		Ticket:    bookings[index].TicketNumber,
		Detail:    string(status),
	})

	res.FromModel(bookings[index])

	return res, nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, slip string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	if !status.Valid() {
		return res, failure.BadRequestFromString("unknown payment status") //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.bookingIndex(id)
	if index < 0 {
		return res, failure.NotFound(model.EntityBooking) //nolint:wrapcheck
	}

	bookings := s.copyBookings()
	bookings[index].PaymentStatus = status
	if slip != "" {
		bookings[index].PaymentSlip = slip
	}

	if err = s.persist(ctx, bookings, s.resources); err != nil {
		log.Error().Err(err).Msg("failed to persist payment change")

		return res, failure.InternalError(fmt.Errorf("failed to persist payment change: %w", err)) //nolint:wrapcheck
	}

	s.bookings = bookings

	s.bus.Publish(events.Event{
		Type:      events.TypeBookingPayment,
		BookingID: id,
		Ticket:    bookings[index].TicketNumber,
		Detail:    string(status),
	})

	res.FromModel(bookings[index])

	return res, nil
}

func (s *serviceImpl) ToggleResourceAvailability(ctx context.Context, id string) (res model.Resource, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleResourceAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelResourceAttributeKey, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.resourceIndex(id)
	if index < 0 {
		return res, failure.NotFound(model.EntityResource) //nolint:wrapcheck
	}

	resources := make([]model.Resource, len(s.resources))
	copy(resources, s.resources)
	resources[index].IsAvailable = !resources[index].IsAvailable

	if err = s.persist(ctx, s.bookings, resources); err != nil {
		log.Error().Err(err).Msg("failed to persist availability change")

		return res, failure.InternalError(fmt.Errorf("failed to persist availability change: %w", err)) //nolint:wrapcheck
	}

	s.resources = resources

	s.bus.Publish(events.Event{
		Type:   events.TypeResourceToggled,
		Detail: id,
	})

	return resources[index], nil
}

func (s *serviceImpl) ResetAll(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := []model.Booking{}
	resources := model.SeedResources()

	if err = s.persist(ctx, bookings, resources); err != nil {
		log.Error().Err(err).Msg("failed to persist reset")

		return failure.InternalError(fmt.Errorf("failed to persist reset: %w", err)) //nolint:wrapcheck
	}

	s.bookings = bookings
	s.resources = resources
	s.lastTimestamp = 0

	s.bus.Publish(events.Event{Type: events.TypeQueueReset})

	return nil
}

func (s *serviceImpl) Booking(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.bookingIndex(id)
	if index < 0 {
		return res, failure.NotFound(model.EntityBooking) //nolint:wrapcheck
	}

	res.FromModel(s.bookings[index])

	return res, nil
}

func (s *serviceImpl) Bookings(ctx context.Context, status model.BookingStatus) (res dto.GetBookingsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bookings")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if status == "" {
		res.FromModels(s.bookings)

		return res
	}

	filtered := make([]model.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if booking.Status == status {
			filtered = append(filtered, booking)
		}
	}

	res.FromModels(filtered)

	return res
}

func (s *serviceImpl) CurrentlyServing(ctx context.Context) (res dto.ServingResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentlyServing")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, booking := range s.bookings {
		if booking.Status == model.StatusCalling {
			res.TicketNumber = booking.TicketNumber
			res.Serving = true

			return res
		}
	}

	return res
}

func (s *serviceImpl) QueuePosition(ctx context.Context, id string) (res dto.PositionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QueuePosition")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.bookingIndex(id)
	if index < 0 {
		return res, failure.NotFound(model.EntityBooking) //nolint:wrapcheck
	}

	target := s.bookings[index]
	res.TicketNumber = target.TicketNumber

	for _, booking := range s.bookings {
		if booking.Status == model.StatusPending && booking.Timestamp < target.Timestamp {
			res.Ahead++
		}
	}

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, booking := range s.bookings {
		switch booking.Status {
		case model.StatusPending:
			res.Pending++
		case model.StatusCalling:
			res.Calling++
		case model.StatusCompleted:
			res.Completed++
		case model.StatusCancelled:
			res.Cancelled++
		}

		switch booking.PaymentStatus {
		case model.PaymentUnpaid:
			res.Payments.Unpaid++
		case model.PaymentPendingVerification:
			res.Payments.PendingVerification++
		case model.PaymentPaid:
			res.Payments.Paid++
		}
	}

	return res
}

func (s *serviceImpl) Resources(ctx context.Context) []model.Resource {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resources")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	resources := make([]model.Resource, len(s.resources))
	copy(resources, s.resources)

	return resources
}

func (s *serviceImpl) Offerings(ctx context.Context) []model.Offering {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Offerings")
	defer scope.End()

	offerings := make([]model.Offering, len(s.offerings))
	copy(offerings, s.offerings)

	return offerings
}

func (s *serviceImpl) Profile(ctx context.Context) model.Profile {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()

	return s.profile
}

// persist writes the candidate snapshot; callers only adopt the candidate
// state after it succeeds, so a storage failure leaves memory untouched.
func (s *serviceImpl) persist(ctx context.Context, bookings []model.Booking, resources []model.Resource) error {
	return s.store.Save(ctx, model.Snapshot{Bookings: bookings, Resources: resources})
}

func (s *serviceImpl) copyBookings() []model.Booking {
	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

func (s *serviceImpl) bookingIndex(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *serviceImpl) resourceIndex(id string) int {
	for i := range s.resources {
		if s.resources[i].ID == id {
			return i
		}
	}

	return -1
}
