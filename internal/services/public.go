package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/linkhive/apiserver/internal/store"
	"github.com/linkhive/apiserver/types"
)

// PublicService assembles the anonymous, read-only view of a profile.
// It never mutates state and applies the same defaulting rules as the
// owner's editor.
type PublicService struct {
	db       store.Querier
	users    UserRepository
	profiles ProfileRepository
	links    LinkRepository
}

func NewPublicService(db store.Querier, users UserRepository, profiles ProfileRepository, links LinkRepository) *PublicService {
	return &PublicService{
		db:       db,
		users:    users,
		profiles: profiles,
		links:    links,
	}
}

// Resolve looks up a user by the exact public username and returns the
// denormalized profile view. store.ErrNotFound signals an unknown username.
func (s *PublicService) Resolve(ctx context.Context, username string) (types.PublicProfile, error) {
	user, err := s.users.GetByUsername(ctx, s.db, username)
	if err != nil {
		return types.PublicProfile{}, err
	}

	view := types.PublicProfile{
		Username:    user.Username,
		DisplayName: user.Username,
		Tagline:     "",
		Background:  types.DefaultBackground(),
		Typography:  types.DefaultTypography(),
		Links:       []types.Link{},
	}

	profile, err := s.profiles.Get(ctx, s.db, user.ID)
	switch {
	case err == nil:
		if profile.DisplayName != "" {
			view.DisplayName = profile.DisplayName
		}
		view.Tagline = profile.Tagline
		view.Background = backgroundOrDefault(profile.Background)
		view.Typography = typographyOrDefault(profile.Typography)
	case errors.Is(err, store.ErrNotFound):
		// No customization saved yet: the defaults above stand.
	default:
		return types.PublicProfile{}, fmt.Errorf("resolve profile: failed to load profile: %w", err)
	}

	links, err := s.links.ListByUserID(ctx, s.db, user.ID)
	if err != nil {
		return types.PublicProfile{}, fmt.Errorf("resolve profile: failed to load links: %w", err)
	}
	view.Links = links

	return view, nil
}
