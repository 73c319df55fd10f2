package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"turnero/infras/otel"
	"turnero/infras/postgres"
	"turnero/internal/domains/schedule/model"
	"turnero/shared"
	"turnero/shared/constant"
	gRepo "turnero/shared/repository"
	"turnero/shared/timezone"
)

type Schedule interface {
	Load(ctx context.Context) (model.WeeklySchedule, bool, error)
	Store(ctx context.Context, ws model.WeeklySchedule) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.SettingsTableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Load reads the stored schedule. The second return is false when no schedule
// has been stored yet.
func (repo *repositoryImpl) Load(ctx context.Context) (model.WeeklySchedule, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.Load")
	defer scope.End()

	setting, err := repo.Get(ctx, shared.FilterByID(model.SettingsKey, model.FieldKey, model.SettingsTableName))
	if err != nil {
		scope.TraceError(err)

		return model.WeeklySchedule{}, false, fmt.Errorf("failed to load schedule: %w", err)
	}

	if setting.Key == constant.Empty {
		return model.WeeklySchedule{}, false, nil
	}

	ws, err := setting.Schedule()
	if err != nil {
		scope.TraceError(err)

		return model.WeeklySchedule{}, false, err
	}

	return ws, true, nil
}

// Store upserts the schedule document under the settings key.
func (repo *repositoryImpl) Store(ctx context.Context, ws model.WeeklySchedule) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.Store")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	filter := shared.FilterByID(model.SettingsKey, model.FieldKey, model.SettingsTableName)

	exist, err := repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check stored schedule: %w", err)
	}

	if !exist {
		return repo.Insert(ctx, model.Setting{ //nolint:wrapcheck
			Key:        model.SettingsKey,
			Value:      value,
			ModifiedAt: timezone.Now(),
		})
	}

	return repo.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldValue:      value,
		model.FieldModifiedAt: timezone.Now(),
	}, filter)
}
