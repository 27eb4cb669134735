package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quedee/config"
	otelMocks "quedee/infras/otel/mocks"
	"quedee/internal/domains/queue/mocks"
	"quedee/internal/domains/queue/model"
	"quedee/internal/domains/queue/model/dto"
	"quedee/internal/domains/queue/service"
	"quedee/shared/events"
	"quedee/shared/failure"
)

func newService(t *testing.T, store *mocks.MockStore, strict bool) service.Queue {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.StrictTransitions = strict

	svc, err := service.New(store, cfg, events.NewBus(), otelMocks.NewOtel())
	require.NoError(t, err)

	return svc
}

func emptyStore(ctrl *gomock.Controller) *mocks.MockStore {
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(model.Snapshot{}, false, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return store
}

func create(t *testing.T, svc service.Queue, name, resourceID, serviceID string) dto.BookingResponse {
	t.Helper()

	booking, err := svc.CreateBooking(context.Background(), dto.CreateBookingRequest{
		CustomerName: name,
		ResourceID:   resourceID,
		ServiceID:    serviceID,
		Date:         "2025-01-01",
		Time:         "13:00",
	})
	require.NoError(t, err)

	return booking
}

func TestCreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")

	assert.Equal(t, "จ001", booking.TicketNumber)
	assert.Equal(t, string(model.StatusPending), booking.Status)
	assert.Equal(t, string(model.PaymentUnpaid), booking.PaymentStatus)
	assert.NotEmpty(t, booking.ID)

	second := create(t, svc, "Bob", "r2", "v2")
	assert.Equal(t, "แ002", second.TicketNumber)
	assert.Greater(t, second.Timestamp, booking.Timestamp)

	t.Run("unknown service falls back to default prefix", func(t *testing.T) {
		booking := create(t, svc, "Carol", model.ResourceAny, "nope")
		assert.Equal(t, "B003", booking.TicketNumber)
	})

	t.Run("unknown resource is rejected", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, dto.CreateBookingRequest{
			CustomerName: "Dave",
			ResourceID:   "r99",
			ServiceID:    "v1",
			Date:         "2025-01-01",
			Time:         "14:00",
		})
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}

func TestTicketNumbersAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		booking := create(t, svc, "Guest", model.ResourceAny, "v1")
		assert.False(t, seen[booking.TicketNumber], "duplicate ticket %s", booking.TicketNumber)
		seen[booking.TicketNumber] = true
	}
}

func TestHappyPathScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")
	assert.Equal(t, "จ001", booking.TicketNumber)

	_, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	require.NoError(t, err)

	serving := svc.CurrentlyServing(ctx)
	assert.True(t, serving.Serving)
	assert.Equal(t, "จ001", serving.TicketNumber)

	paid, err := svc.UpdatePaymentStatus(ctx, booking.ID, model.PaymentPaid, "")
	require.NoError(t, err)
	assert.Equal(t, string(model.PaymentPaid), paid.PaymentStatus)
	assert.Equal(t, "จ001", paid.TicketNumber)
	assert.Equal(t, string(model.StatusCalling), paid.Status)

	_, err = svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCompleted)
	require.NoError(t, err)

	assert.False(t, svc.CurrentlyServing(ctx).Serving)
}

func TestAtMostOneCallingBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	first := create(t, svc, "Alice", "r1", "v1")
	second := create(t, svc, "Bob", "r1", "v1")

	_, err := svc.UpdateBookingStatus(ctx, first.ID, model.StatusCalling)
	require.NoError(t, err)

	// Calling the next ticket settles the current one.
	_, err = svc.UpdateBookingStatus(ctx, second.ID, model.StatusCalling)
	require.NoError(t, err)

	stats := svc.Stats(ctx)
	assert.Equal(t, 1, stats.Calling)
	assert.Equal(t, 1, stats.Completed)

	settled, err := svc.Booking(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCompleted), settled.Status)

	assert.Equal(t, second.TicketNumber, svc.CurrentlyServing(ctx).TicketNumber)
}

func TestStrictTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")

	_, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCompleted)
	assert.True(t, failure.IsCode(err, http.StatusConflict))

	_, err = svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	assert.True(t, failure.IsCode(err, http.StatusConflict), "terminal status must not transition")
}

func TestLenientTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), false)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")

	// The original demo let any status be set from any status.
	_, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCompleted)
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCalling), updated.Status)
}

func TestStatusUpdateIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")

	_, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	require.NoError(t, err)

	repeated, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCalling), repeated.Status)
}

func TestUnknownBookingIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	_, err := svc.UpdateBookingStatus(ctx, "missing", model.StatusCalling)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	_, err = svc.UpdatePaymentStatus(ctx, "missing", model.PaymentPaid, "")
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	_, err = svc.QueuePosition(ctx, "missing")
	assert.True(t, failure.IsCode(err, http.StatusNotFound))
}

func TestPaymentSlipRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	booking := create(t, svc, "Alice", "r1", "v1")

	updated, err := svc.UpdatePaymentStatus(ctx, booking.ID, model.PaymentPendingVerification, "slip-001")
	require.NoError(t, err)
	assert.Equal(t, "slip-001", updated.PaymentSlip)

	// Approving without a new slip keeps the stored one.
	approved, err := svc.UpdatePaymentStatus(ctx, booking.ID, model.PaymentPaid, "")
	require.NoError(t, err)
	assert.Equal(t, "slip-001", approved.PaymentSlip)

	// Merchants reject by flipping back to unpaid.
	rejected, err := svc.UpdatePaymentStatus(ctx, booking.ID, model.PaymentUnpaid, "")
	require.NoError(t, err)
	assert.Equal(t, string(model.PaymentUnpaid), rejected.PaymentStatus)
	assert.Equal(t, "slip-001", rejected.PaymentSlip)
}

func TestQueuePosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	first := create(t, svc, "Alice", "r1", "v1")
	second := create(t, svc, "Bob", "r1", "v1")
	third := create(t, svc, "Carol", "r1", "v1")

	positionOf := func(id string) int {
		position, err := svc.QueuePosition(ctx, id)
		require.NoError(t, err)

		return position.Ahead
	}

	assert.Equal(t, 0, positionOf(first.ID))
	assert.Equal(t, 1, positionOf(second.ID))
	assert.Equal(t, 2, positionOf(third.ID))

	// Cancelling the head must shorten everyone's wait.
	_, err := svc.UpdateBookingStatus(ctx, first.ID, model.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, 0, positionOf(second.ID))
	assert.Equal(t, 1, positionOf(third.ID))
}

func TestResetAllIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	create(t, svc, "Alice", "r1", "v1")
	_, err := svc.ToggleResourceAvailability(ctx, "r1")
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx))
	require.NoError(t, svc.ResetAll(ctx))

	assert.Equal(t, 0, svc.Bookings(ctx, "").Total)

	for _, resource := range svc.Resources(ctx) {
		assert.True(t, resource.IsAvailable)
	}

	// Ticket numbering restarts after a reset.
	booking := create(t, svc, "Bob", "r1", "v1")
	assert.Equal(t, "จ001", booking.TicketNumber)
}

func TestToggleResourceAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	toggled, err := svc.ToggleResourceAvailability(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	restored, err := svc.ToggleResourceAvailability(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, restored.IsAvailable)

	_, err = svc.ToggleResourceAvailability(ctx, "r99")
	assert.True(t, failure.IsCode(err, http.StatusNotFound))
}

func TestPersistenceFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(model.Snapshot{}, false, nil)

	svc := newService(t, store, true)
	ctx := context.Background()

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	booking := create(t, svc, "Alice", "r1", "v1")

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	_, err := svc.UpdateBookingStatus(ctx, booking.ID, model.StatusCalling)
	assert.True(t, failure.IsCode(err, http.StatusInternalServerError))

	unchanged, err := svc.Booking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusPending), unchanged.Status)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	_, err = svc.CreateBooking(ctx, dto.CreateBookingRequest{
		CustomerName: "Bob",
		ResourceID:   "r1",
		ServiceID:    "v1",
		Date:         "2025-01-01",
		Time:         "14:00",
	})
	assert.Error(t, err)
	assert.Equal(t, 1, svc.Bookings(ctx, "").Total)
}

func TestRestoreFromSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := model.Snapshot{
		Bookings: []model.Booking{
			{
				ID:            "b1",
				CustomerName:  "Alice",
				ResourceID:    "r1",
				ServiceID:     "v1",
				Status:        model.StatusPending,
				TicketNumber:  "จ001",
				Timestamp:     1000,
				PaymentStatus: model.PaymentUnpaid,
			},
		},
		Resources: model.SeedResources(),
	}

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(saved, true, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := newService(t, store, true)
	ctx := context.Background()

	assert.Equal(t, 1, svc.Bookings(ctx, "").Total)

	restored, err := svc.Booking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "จ001", restored.TicketNumber)

	// New bookings keep the sequence and timestamp ordering going.
	next := create(t, svc, "Bob", "r2", "v1")
	assert.Equal(t, "จ002", next.TicketNumber)
	assert.Greater(t, next.Timestamp, restored.Timestamp)
}

func TestCatalogReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	offerings := svc.Offerings(ctx)
	assert.Len(t, offerings, 3)
	assert.Equal(t, "จองคิวตัดผม", offerings[0].Name)

	profile := svc.Profile(ctx)
	assert.Equal(t, "shop_01", profile.ID)

	resources := svc.Resources(ctx)
	assert.Len(t, resources, 4)
}

func TestBookingsFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(t, emptyStore(ctrl), true)
	ctx := context.Background()

	first := create(t, svc, "Alice", "r1", "v1")
	create(t, svc, "Bob", "r1", "v1")

	_, err := svc.UpdateBookingStatus(ctx, first.ID, model.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Bookings(ctx, model.StatusPending).Total)
	assert.Equal(t, 1, svc.Bookings(ctx, model.StatusCancelled).Total)
	assert.Equal(t, 2, svc.Bookings(ctx, "").Total)
}
