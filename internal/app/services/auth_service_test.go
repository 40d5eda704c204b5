package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
	"github.com/campushq/studentportal/internal/pkg/auth"
)

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        "alice",
		Email:           "alice@campus.edu",
		Password:        "Sup3rSecret",
		PasswordConfirm: "Sup3rSecret",
	}
}

func TestRegister(t *testing.T) {
	users := newFakeUsers()
	tokens := &fakeTokens{}
	svc := NewAuthService(users, tokens)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	assert.False(t, resp.User.IsStaff)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)

	t.Run("profile row is created with the user", func(t *testing.T) {
		assert.Equal(t, 1, users.profiles)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		stored := users.byUsername["alice"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "Sup3rSecret", stored.Password)
		assert.True(t, auth.CheckPassword(stored.Password, "Sup3rSecret"))
	})
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := newFakeUsers()
	svc := NewAuthService(users, &fakeTokens{})

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@campus.edu"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	// No second account was created.
	assert.Len(t, users.byUsername, 1)
	assert.Equal(t, 1, users.profiles)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	users := newFakeUsers()
	svc := NewAuthService(users, &fakeTokens{})

	req := registerRequest()
	req.PasswordConfirm = "SomethingElse1"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	assert.Empty(t, users.byUsername)
}

func TestRegisterWeakPassword(t *testing.T) {
	users := newFakeUsers()
	svc := NewAuthService(users, &fakeTokens{})

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no digit", "OnlyLetters"},
		{"no letter", "1234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			req.Password = tt.password
			req.PasswordConfirm = tt.password

			_, err := svc.Register(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, "password", custom.Field)
		})
	}
	assert.Empty(t, users.byUsername)
}

func TestRegisterUsernameWithSpaces(t *testing.T) {
	svc := NewAuthService(newFakeUsers(), &fakeTokens{})

	req := registerRequest()
	req.Username = "al ice"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	tokens := &fakeTokens{}
	svc := NewAuthService(users, tokens)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "Sup3rSecret"})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.User.Username)
		assert.NotEmpty(t, resp.Token.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "WrongPass1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username reports the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "mallory", Password: "Sup3rSecret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		users.byUsername["alice"].IsActive = false
		defer func() { users.byUsername["alice"].IsActive = true }()

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "Sup3rSecret"})
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})
}
