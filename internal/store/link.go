package store

import (
	"context"

	"github.com/linkhive/apiserver/types"
)

// LinkRepository handles persistence for a user's link entries.
type LinkRepository struct{}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{}
}

// ListByUserID returns the user's links in render order.
func (r *LinkRepository) ListByUserID(ctx context.Context, q Querier, userID int) ([]types.Link, error) {
	const query = `
		SELECT site_name, site_username, profile_url
		FROM links
		WHERE user_id = $1
		ORDER BY ordinal`
	links := make([]types.Link, 0)
	if err := q.SelectContext(ctx, &links, query, userID); err != nil {
		return nil, err
	}
	return links, nil
}

// ReplaceAll swaps the user's entire link set for the given one. Ordinals
// are derived from slice position. Callers are expected to run this inside
// the same transaction as the profile update.
func (r *LinkRepository) ReplaceAll(ctx context.Context, q Querier, userID int, links []types.Link) error {
	const deleteQuery = `DELETE FROM links WHERE user_id = $1`
	if _, err := q.ExecContext(ctx, deleteQuery, userID); err != nil {
		return err
	}

	const insertQuery = `
		INSERT INTO links (user_id, ordinal, site_name, site_username, profile_url)
		VALUES ($1, $2, $3, $4, $5)`
	for ordinal, link := range links {
		if _, err := q.ExecContext(
			ctx,
			insertQuery,
			userID,
			ordinal,
			link.SiteName,
			link.SiteUsername,
			link.ProfileURL,
		); err != nil {
			return err
		}
	}
	return nil
}
