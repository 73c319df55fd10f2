package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"turnero/infras/otel"
	"turnero/internal/domains/schedule/model/dto"
	"turnero/internal/domains/schedule/service"
	"turnero/shared/constant"
	"turnero/shared/validator"
	"turnero/transport/http/response"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedule)
		routerGroup.Put("/", handler.UpdateSchedule)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/suggest", handler.SuggestSchedule)
	})
}

// GetSchedule returns the current weekly schedule.
// @Summary Get the weekly schedule
// @Description Retrieve the weekly schedule, falling back to the built-in default when none has been saved.
// @Tags Schedule
// @Produce json
// @Success 200 {object} dto.ScheduleResponse
// @Failure 500 {object} response.Error
// @Router /v1/schedule [get]
func (handler *Handler) GetSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedule")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSchedule replaces the weekly schedule.
// @Summary Replace the weekly schedule
// @Description Validate and persist a full weekly schedule, replacing the previous one.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} dto.ScheduleResponse "The stored schedule"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule [put]
// @Security BearerAuth
func (handler *Handler) UpdateSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	req := dto.UpdateScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Replace(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update schedule")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Schedule updated successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetSlots returns the bookable slots for the whole week.
// @Summary Get bookable slots
// @Description Expand the weekly schedule into concrete bookable slots per day, with per-slot capacity.
// @Tags Schedule
// @Produce json
// @Success 200 {object} dto.GetSlotsResponse
// @Failure 500 {object} response.Error
// @Router /v1/schedule/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	res, err := handler.service.Slots(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SuggestSchedule asks the AI backend to draft a schedule.
// @Summary Suggest a schedule
// @Description Generate a draft weekly schedule for the described business. The draft is not persisted.
// @Tags Schedule
// @Produce json
// @Param business query string true "Business description"
// @Success 200 {object} dto.SuggestScheduleResponse
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/schedule/suggest [get]
// @Security BearerAuth
func (handler *Handler) SuggestSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SuggestSchedule")
	defer scope.End()

	business := request.URL.Query().Get(constant.RequestParamBusiness)

	res, err := handler.service.Suggest(ctx, business)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to suggest schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
