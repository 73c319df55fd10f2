package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"turnero/infras/otel"
	"turnero/internal/domains/booking/model"
	"turnero/internal/domains/booking/model/dto"
	"turnero/internal/domains/booking/service"
	"turnero/shared"
	"turnero/shared/constant"
	gDto "turnero/shared/dto"
	"turnero/shared/validator"
	"turnero/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/unrated", handler.GetUnratedBooking)
		routerGroup.Get("/ratings", handler.GetRatings)
		routerGroup.Patch("/{id}/rate", handler.RateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking books a slot for a customer.
// @Summary Create a new booking
// @Description Book the slot at the given day and time, subject to the slot existing and having free capacity.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
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

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for slot " + req.Day + " " + req.Time)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings with optional day, rated, and email filtering plus pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param day query string false "Filter by day of week"
// @Param rated query boolean false "Filter by rated status"
// @Param email query string false "Filter by customer email, case-insensitive substring match"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldBookedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if day := r.URL.Query().Get(constant.RequestParamDay); day != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDay,
			Operator: gDto.FilterOperatorEq,
			Value:    day,
			Table:    model.TableName,
		})
	}

	if rated := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamRated)); rated != nil {
		operator := gDto.FilterIsNull
		if *rated {
			operator = gDto.FilterIsNotNull
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRatedAt,
			Operator: operator,
			Table:    model.TableName,
		})
	}

	if email := r.URL.Query().Get(constant.RequestParamEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetUnratedBooking finds the most recent unrated booking for an email.
// @Summary Get an unrated booking by email
// @Description Look up the most recent booking for the given email that has not been rated yet. Responds with a null payload when none match.
// @Tags Booking
// @Accept json
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/unrated [get]
func (handler *Handler) GetUnratedBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnratedBooking")
	defer scope.End()

	email := r.URL.Query().Get(constant.RequestParamEmail)

	booking, err := handler.service.FindUnratedByEmail(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find unrated booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// RateBooking attaches a one-time rating to a booking.
// @Summary Rate a booking
// @Description Attach a rating and optional comment to a booking. A booking can be rated exactly once.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RateBookingRequest true "Rate Booking Request"
// @Success 200 {object} response.Message "Booking rated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rate [patch]
func (handler *Handler) RateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Rate(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rate booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking rated successfully")
}

// GetRatings retrieves all rated bookings.
// @Summary Get all ratings
// @Description Retrieve all bookings that carry a rating, most recently rated first.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRatingsResponse "List of ratings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/ratings [get]
// @Security BearerAuth
func (handler *Handler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	ratings, err := handler.service.Ratings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ratings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, ratings)
}

// DeleteBooking cancels a booking by its ID.
// @Summary Delete a booking by ID
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
