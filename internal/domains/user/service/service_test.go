package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turnero/config"
	"turnero/infras/otel/mocks"
	userMocks "turnero/internal/domains/user/mocks"
	"turnero/internal/domains/user/model"
	"turnero/internal/domains/user/model/dto"
	"turnero/internal/domains/user/service"
	cacheMocks "turnero/shared/cache/mocks"
	"turnero/shared/constant"
	gDto "turnero/shared/dto"
	"turnero/shared/failure"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Name:     "New Employee",
		Email:    "employee@example.com",
		Password: "password123",
		Role:     "employee",
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-id")

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.NotEqual(t, req.Password, user.Password)
				assert.Equal(t, "employee", user.Role)
				assert.True(t, user.Active)
				assert.Equal(t, "owner-id", user.CreatedBy)

				return nil
			})

		assert.NoError(t, svc.Create(ctx, req))
	})

	t.Run("reports conflict for a duplicate email", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		assert.Error(t, svc.Create(ctx, req))
	})
}

func TestUserService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.User{{ID: "user-1", Name: "Ana", Role: "manager"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "manager", res.Users[0].Role)
}

func TestUserService_Get(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", Email: "ana@example.com"}, nil)

		res, err := svc.Get(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", res.Email)
	})

	t.Run("reports not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("updates an existing user", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Update(context.Background(), dto.UpdateUserRequest{Name: "Renamed"}, "user-1"))
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdateUserRequest{}, "user-1")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("reports not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateUserRequest{Name: "Renamed"}, "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "user-1"))
	})

	t.Run("reports not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
