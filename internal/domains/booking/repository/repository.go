package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"turnero/infras/otel"
	"turnero/infras/postgres"
	"turnero/internal/domains/booking/model"
	gDto "turnero/shared/dto"
	gRepo "turnero/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	RateOnce(ctx context.Context, id string, rating int, comment *string, at time.Time) (bool, error)
	CountForSlot(ctx context.Context, day, at string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// RateOnce writes the rating only when the booking is still unrated. The
// boolean reports whether this call won the transition; a concurrent or
// repeated rating sees false.
func (repo *repositoryImpl) RateOnce(ctx context.Context, id string, rating int, comment *string, at time.Time) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldRatedAt,
				Operator: gDto.FilterIsNull,
			},
		},
	}

	affected, err := repo.UpdateGuarded(ctx, map[string]any{
		model.FieldRating:  rating,
		model.FieldComment: comment,
		model.FieldRatedAt: at,
	}, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

// CountForSlot counts the bookings already held for one weekly slot.
func (repo *repositoryImpl) CountForSlot(ctx context.Context, day, at string) (int, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldDay,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldTime,
				ArgName:  "slot_time",
				Operator: gDto.FilterOperatorEq,
				Value:    at,
			},
		},
	}

	return repo.Count(ctx, filter) //nolint:wrapcheck
}
