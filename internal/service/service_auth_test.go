// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/internal/store"
	"github.com/avoronin/go-note-keeper/internal/utils"
	"github.com/avoronin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
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
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		bcryptCost:     bcrypt.MinCost,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "go-note-keeper",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// SignUp
// ─────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	var storedHash string
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			storedHash = user.PasswordHash
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	created, err := svc.SignUp(context.Background(), models.User{
		Name:     "John",
		Email:    "john@example.com",
		Password: "secretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	// plaintext never reaches the repository
	assert.Empty(t, created.Password)
	require.NotEmpty(t, storedHash)
	assert.NotEqual(t, "secretpass", storedHash)

	match, err := utils.VerifyPassword("secretpass", storedHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{
			name:    "empty name",
			user:    models.User{Email: "john@example.com", Password: "secretpass"},
			wantErr: ErrValidationEmptyName,
		},
		{
			name:    "malformed email",
			user:    models.User{Name: "John", Email: "not-an-email", Password: "secretpass"},
			wantErr: ErrValidationBadEmail,
		},
		{
			name:    "empty email",
			user:    models.User{Name: "John", Password: "secretpass"},
			wantErr: ErrValidationBadEmail,
		},
		{
			name:    "short password",
			user:    models.User{Name: "John", Email: "john@example.com", Password: "short"},
			wantErr: ErrValidationShortPassword,
		},
	}

	svc := newTestAuthService(&mockUserRepository{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.SignUp(context.Background(), models.User{
		Name:     "John",
		Email:    "john@example.com",
		Password: "secretpass",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// SignIn
// ─────────────────────────────────────────────

func TestAuthService_SignIn_Success(t *testing.T) {
	digest, err := utils.HashPassword("secretpass", bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.SignIn(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "secretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_SignIn_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.SignIn(context.Background(), models.User{Email: "john@example.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SignIn(context.Background(), models.User{Password: "secretpass"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_SignIn_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	digest, err := utils.HashPassword("secretpass", bcrypt.MinCost)
	require.NoError(t, err)

	unknownEmailRepo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: digest}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownEmailRepo).
		SignIn(context.Background(), models.User{Email: "nobody@example.com", Password: "secretpass"})
	_, errWrong := newTestAuthService(wrongPasswordRepo).
		SignIn(context.Background(), models.User{Email: "john@example.com", Password: "wrongpass"})

	require.ErrorIs(t, errUnknown, ErrWrongPassword)
	require.ErrorIs(t, errWrong, ErrWrongPassword)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_SignIn_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.SignIn(context.Background(), models.User{
		Email:    "john@example.com",
		Password: "secretpass",
	})
	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	svc.tokenDuration = -time.Hour

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "garbage", tokenString: "not-a-jwt"},
		{name: "empty", tokenString: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.tokenString)
			require.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	issuing.tokenIssuer = "someone-else"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	verifying := newTestAuthService(&mockUserRepository{})
	_, err = verifying.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	issuing.tokenSignKey = "different-key"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	verifying := newTestAuthService(&mockUserRepository{})
	_, err = verifying.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}
