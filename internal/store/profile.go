package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/linkhive/apiserver/types"
)

// ProfileRepository handles persistence for per-user profile configuration.
type ProfileRepository struct{}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// Get returns the profile row for a user. ErrNotFound means the user has
// never saved a customization.
func (r *ProfileRepository) Get(ctx context.Context, q Querier, userID int) (types.Profile, error) {
	const query = `
		SELECT user_id, display_name, tagline, background, typography, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`
	var profile types.Profile
	var backgroundJSON, typographyJSON []byte
	err := q.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.Tagline,
		&backgroundJSON,
		&typographyJSON,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Profile{}, ErrNotFound
		}
		return types.Profile{}, err
	}

	if err := json.Unmarshal(backgroundJSON, &profile.Background); err != nil {
		return types.Profile{}, err
	}
	if err := json.Unmarshal(typographyJSON, &profile.Typography); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

// Upsert writes the profile row for a user, creating it on first save.
func (r *ProfileRepository) Upsert(ctx context.Context, q Querier, profile types.Profile) error {
	now := time.Now()

	backgroundJSON, err := json.Marshal(profile.Background)
	if err != nil {
		return err
	}
	typographyJSON, err := json.Marshal(profile.Typography)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO profiles (user_id, display_name, tagline, background, typography, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
			tagline = EXCLUDED.tagline,
			background = EXCLUDED.background,
			typography = EXCLUDED.typography,
			updated_at = EXCLUDED.updated_at`
	_, err = q.ExecContext(
		ctx,
		query,
		profile.UserID,
		profile.DisplayName,
		profile.Tagline,
		backgroundJSON,
		typographyJSON,
		now,
	)
	return err
}
