// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeyev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/store"
	"github.com/avdeyev/go-blog-api/internal/utils"
	"github.com/avdeyev/go-blog-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrUserNotFound
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestRegisterUser_Success(t *testing.T) {
	ctx := context.Background()

	var storedHash string
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			storedHash = user.PasswordHash
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Username:         "billy",
		Email:            "billy@mail.com",
		Password:         "1234",
		VerifiedPassword: "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "billy", registered.Username)

	// the plain-text password must never reach the repository
	require.NotEqual(t, "1234", storedHash)
	assert.True(t, utils.CheckPasswordHash("1234", storedHash))
}

func TestRegisterUser_UsernameDefaultsToEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:            "billy@mail.com",
		Password:         "1234",
		VerifiedPassword: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "billy@mail.com", registered.Username)
}

func TestRegisterUser_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{
			name:    "empty email",
			request: models.RegisterRequest{Password: "1234", VerifiedPassword: "1234"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "empty password",
			request: models.RegisterRequest{Email: "billy@mail.com", VerifiedPassword: "1234"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "empty verified password",
			request: models.RegisterRequest{Email: "billy@mail.com", Password: "1234"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "passwords differ",
			request: models.RegisterRequest{Email: "billy@mail.com", Password: "1234", VerifiedPassword: "4321"},
			wantErr: ErrPasswordsDoNotMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.request)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:            "billy@mail.com",
		Password:         "1234",
		VerifiedPassword: "1234",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("1234")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	found, err := svc.Login(ctx, models.LoginRequest{Email: "billy@mail.com", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("1234")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "billy@mail.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLogin_UnknownEmailIsIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{}) // lookup always misses

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@mail.com", Password: "1234"})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLogin_EmptyFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(ctx, models.LoginRequest{Email: "billy@mail.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, models.LoginRequest{Password: "1234"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateToken_And_Authenticate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 42, Email: "billy@mail.com"}

	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(42), userID)
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	authenticated, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authenticated.UserID)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Authenticate(ctx, "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthenticate_RemovedSubject(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 42}

	svc := newTestAuthService(&mockUserRepository{}) // subject lookup always misses

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGetUser_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.GetUser(ctx, 404)
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGetUser_Success(t *testing.T) {
	ctx := context.Background()

	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "billy"}, nil
		},
	}
	svc := newTestAuthService(repo)

	found, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "billy", found.Username)
}

func TestGetUser_WrapsUnexpectedError(t *testing.T) {
	ctx := context.Background()

	dbErr := errors.New("db failure")
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, dbErr
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.GetUser(ctx, 1)
	require.ErrorIs(t, err, dbErr)
}
