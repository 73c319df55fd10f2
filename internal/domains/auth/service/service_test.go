package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turnero/config"
	"turnero/infras/jwt"
	jwtMocks "turnero/infras/jwt/mocks"
	"turnero/infras/otel/mocks"
	"turnero/internal/domains/auth/model/dto"
	"turnero/internal/domains/auth/service"
	userMocks "turnero/internal/domains/user/mocks"
	userModel "turnero/internal/domains/user/model"
	"turnero/shared/failure"
	gModel "turnero/shared/model"
	"turnero/shared/timezone"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: passwordHash,
		Role:     "owner",
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				user := validUser()

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "wrongpassword",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser(), nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "inactive user",
			req: dto.LoginRequest{
				Email:    "owner@example.com",
				Password: "password",
			},
			setupMock: func() {
				user := validUser()
				user.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login_UniformFailureMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{}, nil)

	_, unknownEmailErr := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password",
	})

	mockUserRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(validUser(), nil)

	_, wrongPasswordErr := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrongpassword",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("issues a new pair for a valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("answers unauthorized for an invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("invalid token"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("returns the profile", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		res, err := svc.Me(context.Background(), "user-id-123")

		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", res.Email)
		assert.Equal(t, "owner", res.Role)
	})

	t.Run("reports not found for an unknown id", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Me(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("changes the password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword123",
		}, "user-id-123")

		assert.NoError(t, err)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser(), nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newpassword123",
		}, "user-id-123")

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
