package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/hoteldesk/internal/config"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/internal/store"
	"github.com/MKhiriev/hoteldesk/internal/store/mocks"
	"github.com/MKhiriev/hoteldesk/internal/utils"
	"github.com/MKhiriev/hoteldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, cfg config.App) (AuthService, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewAuthService(userRepo, cfg, logger.Nop()), userRepo
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "hoteldesk-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// the plain-text password must never reach the store
			assert.Empty(t, u.Password)
			assert.NotEmpty(t, u.PasswordDigest)
			assert.True(t, utils.VerifyPassword("s3cret", u.PasswordDigest))

			u.UserID = 1
			u.CreatedAt = time.Now()
			return u, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice", registered.Username)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{name: "missing username", user: models.User{Email: "a@x.com", Password: "p"}},
		{name: "missing email", user: models.User{Username: "alice", Password: "p"}},
		{name: "missing password", user: models.User{Username: "alice", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository expectations: validation fails before persistence
			svc, _ := newTestAuthService(t, testAppConfig())

			_, err := svc.RegisterUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	digest, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Username: "alice", PasswordDigest: digest}, nil)

	found, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
}

func TestLogin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	digest, err := utils.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("unknown username", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t, testAppConfig())
		userRepo.EXPECT().
			FindUserByUsername(gomock.Any(), "ghost").
			Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.User{Username: "ghost", Password: "whatever"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo := newTestAuthService(t, testAppConfig())
		userRepo.EXPECT().
			FindUserByUsername(gomock.Any(), "alice").
			Return(models.User{Username: "alice", PasswordDigest: digest}, nil)

		_, err := svc.Login(context.Background(), models.User{Username: "alice", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin_InvalidData(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	_, err := svc.Login(context.Background(), models.User{Username: "alice"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateToken_ValidateToken_RoundTrip(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	validated, err := svc.ValidateToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", validated.Username)
}

func TestCreateToken_UnsetDurationIsBounded(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenDuration = 0
	svc, _ := newTestAuthService(t, cfg)

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	expiry, err := token.Token.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, expiry)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiry.Time, time.Minute)
}

func TestValidateToken_WrongSignKey(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	foreign, err := utils.GenerateJWTToken("hoteldesk-test", "alice", time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	expired, err := utils.GenerateJWTToken("hoteldesk-test", "alice", -time.Minute, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), expired.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidateToken_UserNoLongerExists(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	token, err := svc.CreateToken(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.ValidateToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCurrentUser_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t, testAppConfig())

	userRepo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}, nil)

	found, err := svc.CurrentUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)
}

func TestCurrentUser_EmptyUsername(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	_, err := svc.CurrentUser(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
