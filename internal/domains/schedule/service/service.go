package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Schedule=MockScheduleService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"turnero/config"
	"turnero/infras/gemini"
	"turnero/infras/otel"
	"turnero/internal/domains/schedule/model"
	"turnero/internal/domains/schedule/model/dto"
	"turnero/internal/domains/schedule/repository"
	"turnero/shared"
	"turnero/shared/cache"
	"turnero/shared/constant"
	"turnero/shared/failure"
	"turnero/shared/timezone"
)

const (
	cacheGetSchedule = "schedule:get"
)

type Schedule interface {
	Get(ctx context.Context) (dto.ScheduleResponse, error)
	Replace(ctx context.Context, req dto.UpdateScheduleRequest) (dto.ScheduleResponse, error)
	Slots(ctx context.Context) (dto.GetSlotsResponse, error)
	Suggest(ctx context.Context, business string) (dto.SuggestScheduleResponse, error)
	Weekly(ctx context.Context) (model.WeeklySchedule, error)
}

type serviceImpl struct {
	repo   repository.Schedule
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	gemini gemini.Gemini
}

func New(repo repository.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, gemini gemini.Gemini) Schedule {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		gemini: gemini,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ws, err := s.Weekly(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(ws)

	return res, nil
}

// Weekly loads the effective schedule: the stored one when staff have saved
// it, the default otherwise.
func (s *serviceImpl) Weekly(ctx context.Context) (ws model.WeeklySchedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Weekly")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSchedule, &ws)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetSchedule).Msg("cache hit for schedule")

		return ws, nil
	}

	ws, found, err := s.repo.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load schedule")

		return ws, fmt.Errorf("failed to load schedule: %w", err)
	}

	if !found {
		ws = model.Default()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSchedule, ws, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule to cache")
		}
	}()

	return ws, nil
}

// Replace validates and persists a full weekly schedule, returning the
// stored value with its update timestamp.
func (s *serviceImpl) Replace(ctx context.Context, req dto.UpdateScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	ws := req.ToModel()

	if err = ws.Validate(); err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	ws.UpdatedAt = timezone.Now()

	if err = s.repo.Store(ctx, ws); err != nil {
		log.Error().Err(err).Msg("failed to store schedule")

		return res, fmt.Errorf("failed to store schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetSchedule)
	}()

	res.FromModel(ws)

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	ws, err := s.Weekly(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(ws)

	return res, nil
}

// Suggest asks the AI backend to draft a schedule for the given business
// description. A missing key or an unreachable backend degrades to a
// service-unavailable failure; it never affects stored schedules.
func (s *serviceImpl) Suggest(ctx context.Context, business string) (res dto.SuggestScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Suggest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if business == constant.Empty {
		return res, failure.BadRequestFromString("business description is required") //nolint:wrapcheck
	}

	payload, err := s.gemini.GenerateSchedule(ctx, business)
	if err != nil {
		if errors.Is(err, gemini.ErrDisabled) {
			return res, failure.Unavailable("schedule suggestions are not configured") //nolint:wrapcheck
		}

		log.Warn().Err(err).Msg("schedule suggestion backend failed")

		return res, failure.Unavailable("schedule suggestions are temporarily unavailable") //nolint:wrapcheck
	}

	if err = json.Unmarshal(payload, &res); err != nil {
		log.Warn().Err(err).Msg("schedule suggestion payload did not match the expected shape")

		return dto.SuggestScheduleResponse{}, failure.Unavailable("schedule suggestions are temporarily unavailable") //nolint:wrapcheck
	}

	if res.SlotDuration <= 0 {
		res.SlotDuration = model.DefaultSlotDuration
	}

	return res, nil
}
