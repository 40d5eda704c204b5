package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/studentportal/internal/app/models"
	"github.com/campushq/studentportal/internal/pkg/logger"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = ErrNotFound

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUserID retrieves the profile owned by a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select("id", "user_id", "phone", "address", "bio", "picture_url").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Phone,
		&profile.Address,
		&profile.Bio,
		&profile.PictureURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile: %w", err)
	}
	return profile, nil
}

// GetOrCreate returns the user's profile, creating an empty one if it is
// missing. The insert uses ON CONFLICT DO NOTHING so concurrent requests
// for the same user cannot create duplicates.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create profile query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

// Update persists the editable profile fields for the owning user.
// Scoping by user_id means a caller can only ever touch its own row.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Update("profiles").
		SetMap(map[string]interface{}{
			"phone":       profile.Phone,
			"address":     profile.Address,
			"bio":         profile.Bio,
			"picture_url": profile.PictureURL,
		}).
		Where(squirrel.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
