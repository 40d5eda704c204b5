package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/app/models/dto"
	"github.com/campushq/studentportal/internal/pkg/apperrors"
)

func newTestProfileService() (*ProfileService, *fakeProfiles, *fakeStorage) {
	profiles := newFakeProfiles()
	storage := &fakeStorage{}
	return NewProfileService(profiles, storage), profiles, storage
}

func TestProfileGetCreatesMissingRow(t *testing.T) {
	svc, profiles, _ := newTestProfileService()

	profile, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), profile.UserID)
	assert.Equal(t, 1, profiles.created)
}

func TestProfileUpdateFields(t *testing.T) {
	svc, profiles, _ := newTestProfileService()

	updated, err := svc.Update(context.Background(), 5, &dto.UpdateProfileRequest{
		Phone:   "+1 555 0100",
		Address: "12 Campus Rd",
		Bio:     "Second-year student.",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "+1 555 0100", updated.Phone)
	assert.Equal(t, "12 Campus Rd", updated.Address)
	assert.Equal(t, "Second-year student.", updated.Bio)
	assert.Nil(t, updated.PictureURL)
	assert.Equal(t, 1, profiles.updates)
}

func TestProfileUpdateKeepsPictureWithoutNewFile(t *testing.T) {
	svc, profiles, storage := newTestProfileService()

	picture := "/uploads/profiles/old.png"
	profiles.profiles[5] = &models.Profile{ID: 1, UserID: 5, PictureURL: &picture}

	updated, err := svc.Update(context.Background(), 5, &dto.UpdateProfileRequest{Phone: "555"}, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.PictureURL)
	assert.Equal(t, picture, *updated.PictureURL)
	assert.Empty(t, storage.deleted)
}

func TestProfileUpdateReplacesPicture(t *testing.T) {
	svc, profiles, storage := newTestProfileService()

	old := "/uploads/profiles/old.png"
	profiles.profiles[5] = &models.Profile{ID: 1, UserID: 5, PictureURL: &old}

	updated, err := svc.Update(context.Background(), 5, &dto.UpdateProfileRequest{},
		&multipart.FileHeader{Filename: "new.jpg"})
	require.NoError(t, err)

	require.NotNil(t, updated.PictureURL)
	assert.Equal(t, "/uploads/profiles/new.jpg", *updated.PictureURL)
	assert.Equal(t, []string{old}, storage.deleted)
}

func TestProfileUpdateRejectsBadPictureType(t *testing.T) {
	svc, _, storage := newTestProfileService()

	_, err := svc.Update(context.Background(), 5, &dto.UpdateProfileRequest{},
		&multipart.FileHeader{Filename: "malware.exe"})
	require.Error(t, err)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "picture", custom.Field)
	assert.Empty(t, storage.saved)
}

func TestProfileUpdateValidation(t *testing.T) {
	svc, profiles, _ := newTestProfileService()

	tests := []struct {
		name  string
		req   dto.UpdateProfileRequest
		field string
	}{
		{"bad phone", dto.UpdateProfileRequest{Phone: "call me maybe"}, "phone"},
		{"overlong address", dto.UpdateProfileRequest{Address: strings.Repeat("a", 256)}, "address"},
		{"overlong bio", dto.UpdateProfileRequest{Bio: strings.Repeat("b", 2001)}, "bio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), 5, &tt.req, nil)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, tt.field, custom.Field)
		})
	}

	// Rejected forms never touch storage.
	assert.Zero(t, profiles.updates)
}
