package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/app/repositories"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
	"github.com/campushq/studentportal/internal/pkg/auth"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// UserStore is the user persistence surface the auth service depends on.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateWithProfile(ctx context.Context, user *models.User) (int64, error)
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID int64, username string, isStaff bool) (string, int, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// validateUsername checks the username format beyond the binding rules.
func (s *AuthService) validateUsername(username string) error {
	if strings.TrimSpace(username) != username {
		return apperrors.NewValidationError("username", "username must not start or end with whitespace")
	}
	for _, char := range username {
		if unicode.IsSpace(char) {
			return apperrors.NewValidationError("username", "username must not contain spaces")
		}
	}
	return nil
}

// validatePassword checks password strength requirements
func (s *AuthService) validatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.NewValidationError("password", "password must be at least 8 characters long")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return apperrors.NewValidationError("password", "password must contain at least one letter")
	}
	if !hasDigit {
		return apperrors.NewValidationError("password", "password must contain at least one digit")
	}
	return nil
}

// Register creates a student account together with its empty profile and
// returns a fresh session token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "passwords do not match").WithField("passwordConfirm")
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		IsStaff:  false,
	}
	if _, err := s.users.CreateWithProfile(ctx, user); err != nil {
		// The unique index is the authority; the existence check above
		// only narrows the race window.
		if errors.Is(err, repositories.ErrUsernameAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return s.issueSession(user)
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Same error as a wrong password so usernames cannot be probed.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return s.issueSession(user)
}

func (s *AuthService) issueSession(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.tokens.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			IsStaff:  user.IsStaff,
		},
	}, nil
}
