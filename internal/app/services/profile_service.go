package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
	"github.com/campushq/studentportal/internal/pkg/filestorage"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9 ()\-]{3,20}$`)
	allowedPictureExt = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
)

// ProfileService manages the editable profile of a user.
type ProfileService struct {
	profiles ProfileStore
	storage  filestorage.Storage
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles ProfileStore, storage filestorage.Storage) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		storage:  storage,
	}
}

// Get returns the user's profile, creating an empty one if missing.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) validate(req *dto.UpdateProfileRequest) error {
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return apperrors.NewValidationError("phone", "phone number format is invalid")
	}
	if len(req.Address) > 255 {
		return apperrors.NewValidationError("address", "address must be at most 255 characters")
	}
	if len(req.Bio) > 2000 {
		return apperrors.NewValidationError("bio", "bio must be at most 2000 characters")
	}
	return nil
}

// Update applies a profile form submission. A provided picture replaces
// the stored one and the previous file is removed; a nil picture keeps
// the existing file.
func (s *ProfileService) Update(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, picture *multipart.FileHeader) (*models.Profile, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	profile.Phone = req.Phone
	profile.Address = req.Address
	profile.Bio = req.Bio

	var oldPicture string
	if picture != nil {
		ext := strings.ToLower(filepath.Ext(picture.Filename))
		if !allowedPictureExt[ext] {
			return nil, apperrors.NewValidationError("picture", "picture must be a jpg, png, gif or webp image")
		}

		url, err := s.storage.SaveFile(picture, "profiles")
		if err != nil {
			return nil, fmt.Errorf("error saving profile picture: %w", err)
		}
		if profile.PictureURL != nil {
			oldPicture = *profile.PictureURL
		}
		profile.PictureURL = &url
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	// The old file goes only after the row points at the new one.
	if oldPicture != "" {
		if err := s.storage.DeleteFile(oldPicture); err != nil {
			logger.Warn().Err(err).Str("path", oldPicture).Msg("Failed to delete replaced profile picture")
		}
	}

	logger.Info().Int64("userID", userID).Msg("Profile updated")
	return profile, nil
}
