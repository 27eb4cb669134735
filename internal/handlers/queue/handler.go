package queue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"quedee/infras/otel"
	"quedee/internal/domains/queue/model"
	"quedee/internal/domains/queue/model/dto"
	"quedee/internal/domains/queue/service"
	"quedee/shared/constant"
	"quedee/shared/failure"
	"quedee/shared/validator"
	"quedee/transport/http/response"
)

type Handler struct {
	service service.Queue
	otel    otel.Otel
}

func New(service service.Queue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Get("/{id}/position", handler.GetQueuePosition)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Patch("/{id}/payment", handler.UpdatePaymentStatus)
	})

	router.Route("/queue", func(routerGroup chi.Router) {
		routerGroup.Get("/serving", handler.GetCurrentlyServing)
		routerGroup.Get("/stats", handler.GetStats)
	})

	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetResources)
		routerGroup.Patch("/{id}/availability", handler.ToggleResourceAvailability)
	})

	router.Get("/services", handler.GetServices)
	router.Get("/profile", handler.GetProfile)
	router.Post("/reset", handler.ResetAll)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a booking and hand out the next queue ticket.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking with its ticket number"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.CreateBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Ticket " + booking.TicketNumber + " issued")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves bookings, optionally filtered by status.
// @Summary List bookings
// @Description Retrieve all bookings, optionally filtered by booking status.
// @Tags Booking
// @Produce json
// @Param status query string false "Filter by status (pending, calling, completed, cancelled)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	status := model.BookingStatus(request.URL.Query().Get(constant.RequestParamStatus))
	if status != "" && !status.Valid() {
		response.WithError(writer, failure.BadRequestFromString("unknown booking status"))

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Bookings(ctx, status))
}

// GetBookingByID retrieves a single booking.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Booking(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetQueuePosition reports how many pending bookings are ahead of one booking.
// @Summary Get queue position
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.PositionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/position [get]
func (handler *Handler) GetQueuePosition(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQueuePosition")
	defer scope.End()

	position, err := handler.service.QueuePosition(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, position)
}

// UpdateBookingStatus moves a booking through the queue state machine.
// @Summary Update booking status
// @Description Move a booking to a new status. Calling a booking settles the one currently being called.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.UpdateBookingStatus(ctx, chi.URLParam(request, constant.RequestParamID), model.BookingStatus(req.Status))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdatePaymentStatus updates the payment state of a booking.
// @Summary Update payment status
// @Description Update payment status, optionally attaching a payment proof reference.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/payment [patch]
func (handler *Handler) UpdatePaymentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.UpdatePaymentStatus(ctx, chi.URLParam(request, constant.RequestParamID), model.PaymentStatus(req.Status), req.Slip)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetCurrentlyServing returns the ticket currently being called, if any.
// @Summary Currently serving ticket
// @Tags Queue
// @Produce json
// @Success 200 {object} response.Data[dto.ServingResponse]
// @Router /v1/queue/serving [get]
func (handler *Handler) GetCurrentlyServing(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCurrentlyServing")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.CurrentlyServing(ctx))
}

// GetStats returns per-status booking counts for dashboard tiles.
// @Summary Queue statistics
// @Tags Queue
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Router /v1/queue/stats [get]
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Stats(ctx))
}

// GetResources lists the resource catalog with availability flags.
// @Summary List resources
// @Tags Resource
// @Produce json
// @Success 200 {object} response.Data[[]model.Resource]
// @Router /v1/resources [get]
func (handler *Handler) GetResources(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Resources(ctx))
}

// ToggleResourceAvailability flips a resource's availability flag.
// @Summary Toggle resource availability
// @Tags Resource
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Data[model.Resource]
// @Failure 404 {object} response.Error
// @Router /v1/resources/{id}/availability [patch]
func (handler *Handler) ToggleResourceAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleResourceAvailability")
	defer scope.End()

	resource, err := handler.service.ToggleResourceAvailability(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle resource availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, resource)
}

// GetServices lists the offering catalog.
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]model.Offering]
// @Router /v1/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Offerings(ctx))
}

// GetProfile returns the business profile.
// @Summary Business profile
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[model.Profile]
// @Router /v1/profile [get]
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Profile(ctx))
}

// ResetAll wipes all bookings and restores the seed catalog.
// @Summary Reset demo state
// @Description Destructive: clears every booking and reseeds resources.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/reset [post]
func (handler *Handler) ResetAll(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetAll")
	defer scope.End()

	if err := handler.service.ResetAll(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset queue state")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Queue state reset")
}
