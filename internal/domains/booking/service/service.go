package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"turnero/config"
	"turnero/infras/kafka"
	"turnero/infras/otel"
	"turnero/internal/domains/booking/model"
	"turnero/internal/domains/booking/model/dto"
	"turnero/internal/domains/booking/repository"
	scheduleModel "turnero/internal/domains/schedule/model"
	scheduleService "turnero/internal/domains/schedule/service"
	"turnero/shared"
	"turnero/shared/cache"
	"turnero/shared/constant"
	gDto "turnero/shared/dto"
	"turnero/shared/failure"
	"turnero/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	eventBookingCreated = "booking.created"
	eventBookingDeleted = "booking.deleted"
	eventBookingRated   = "booking.rated"
)

// BookingEvent is the message published to the booking topic on every ledger
// change.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	At        time.Time `json:"at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	FindUnratedByEmail(ctx context.Context, email string) (*dto.BookingResponse, error)
	Rate(ctx context.Context, id string, req dto.RateBookingRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Ratings(ctx context.Context, params gDto.QueryParams) (dto.GetRatingsResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	schedule scheduleService.Schedule
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Booking, schedule scheduleService.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		schedule: schedule,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	ws, err := s.schedule.Weekly(ctx)
	if err != nil {
		return res, err
	}

	slot, ok := ws.FindSlot(scheduleModel.Day(req.Day), req.Time)
	if !ok {
		return res, failure.BadRequestFromString("no bookable slot exists at the requested day and time") //nolint:wrapcheck
	}

	if s.cfg.App.Booking.EnforceCapacity {
		held, err := s.repo.CountForSlot(ctx, req.Day, req.Time)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings for slot")

			return res, fmt.Errorf("failed to count bookings for slot: %w", err)
		}

		if held >= slot.Capacity {
			return res, failure.Conflict("slot is fully booked") //nolint:wrapcheck
		}
	}

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterChange(ctx, eventBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

// FindUnratedByEmail returns the most recent unrated booking held under the
// email, matched case-insensitively. A miss is not an error: the result is
// nil when every booking under the email has been rated.
func (s *serviceImpl) FindUnratedByEmail(ctx context.Context, email string) (res *dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindUnratedByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if email == constant.Empty {
		return res, failure.BadRequestFromString("email is required") //nolint:wrapcheck
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldBookedAt,
		SortDir: "DESC",
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldCustomerEmail,
				Operator: gDto.FilterOperatorIEq,
				Value:    email,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldRatedAt,
				Operator: gDto.FilterIsNull,
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up unrated booking")

		return res, fmt.Errorf("failed to look up unrated booking: %w", err)
	}

	if len(bookings) == 0 {
		return nil, nil
	}

	res = &dto.BookingResponse{}
	res.FromModel(bookings[0])

	return res, nil
}

// Rate records the customer's rating exactly once. A booking that was already
// rated, here or concurrently, is reported as a conflict.
func (s *serviceImpl) Rate(ctx context.Context, id string, req dto.RateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	var comment *string
	if req.Comment != constant.Empty {
		comment = &req.Comment
	}

	won, err := s.repo.RateOnce(ctx, id, req.Rating, comment, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to rate booking")

		return fmt.Errorf("failed to rate booking: %w", err)
	}

	if !won {
		return failure.Conflict("booking has already been rated") //nolint:wrapcheck
	}

	s.afterChange(ctx, eventBookingRated, booking)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// Ratings lists rated bookings, most recently rated first.
func (s *serviceImpl) Ratings(ctx context.Context, params gDto.QueryParams) (res dto.GetRatingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ratings")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.FieldRatedAt
	params.SortDir = "DESC"

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldRatedAt,
				Operator: gDto.FilterIsNotNull,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ratings")

		return res, fmt.Errorf("failed to count ratings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ratings")

		return res, fmt.Errorf("failed to get ratings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.afterChange(ctx, eventBookingDeleted, booking)

	return nil
}

// afterChange invalidates list caches and publishes the ledger event. Both
// run detached from the request.
func (s *serviceImpl) afterChange(ctx context.Context, event string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if !s.cfg.Kafka.Enable {
			return
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key: booking.ID,
			Value: BookingEvent{
				Type:      event,
				BookingID: booking.ID,
				Day:       booking.Day,
				Time:      booking.Time,
				At:        timezone.Now(),
			},
		})
		if err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
