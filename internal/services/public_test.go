package services

import (
	"context"
	"testing"

	"github.com/linkhive/apiserver/internal/store"
	"github.com/linkhive/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publicFixture struct {
	service  *PublicService
	users    *MockUserRepository
	profiles *MockProfileRepository
	links    *MockLinkRepository
}

func newPublicFixture() *publicFixture {
	f := &publicFixture{
		users:    new(MockUserRepository),
		profiles: new(MockProfileRepository),
		links:    new(MockLinkRepository),
	}
	f.service = NewPublicService(nil, f.users, f.profiles, f.links)
	return f
}

func TestResolveReturnsCustomizedProfile(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	links := []types.Link{
		{SiteName: "GitHub", SiteUsername: "@ada", ProfileURL: "https://github.com/ada"},
	}
	f.users.On("GetByUsername", ctx, mock.Anything, "ada").Return(types.User{ID: 7, Username: "ada"}, nil)
	f.profiles.On("Get", ctx, mock.Anything, 7).Return(types.Profile{
		UserID:      7,
		DisplayName: "Ada Lovelace",
		Tagline:     "first programmer",
		Background:  types.Background{Type: types.BackgroundTypeColor, Value: "#fffacd"},
		Typography:  types.Typography{Color: "#333333", Font: "Georgia"},
	}, nil)
	f.links.On("ListByUserID", ctx, mock.Anything, 7).Return(links, nil)

	view, err := f.service.Resolve(ctx, "ada")

	require.NoError(t, err)
	assert.Equal(t, types.PublicProfile{
		Username:    "ada",
		DisplayName: "Ada Lovelace",
		Tagline:     "first programmer",
		Background:  types.Background{Type: types.BackgroundTypeColor, Value: "#fffacd"},
		Typography:  types.Typography{Color: "#333333", Font: "Georgia"},
		Links:       links,
	}, view)
}

func TestResolveDefaultsWhenProfileMissing(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	f.users.On("GetByUsername", ctx, mock.Anything, "ada").Return(types.User{ID: 7, Username: "ada"}, nil)
	f.profiles.On("Get", ctx, mock.Anything, 7).Return(types.Profile{}, store.ErrNotFound)
	f.links.On("ListByUserID", ctx, mock.Anything, 7).Return([]types.Link{}, nil)

	view, err := f.service.Resolve(ctx, "ada")

	require.NoError(t, err)
	assert.Equal(t, "ada", view.DisplayName, "display name falls back to the username")
	assert.Equal(t, types.DefaultBackground(), view.Background)
	assert.Equal(t, types.DefaultTypography(), view.Typography)
	assert.Empty(t, view.Links)
}

func TestResolveFallsBackToUsernameForBlankDisplayName(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	f.users.On("GetByUsername", ctx, mock.Anything, "ada").Return(types.User{ID: 7, Username: "ada"}, nil)
	f.profiles.On("Get", ctx, mock.Anything, 7).Return(types.Profile{UserID: 7, DisplayName: ""}, nil)
	f.links.On("ListByUserID", ctx, mock.Anything, 7).Return([]types.Link{}, nil)

	view, err := f.service.Resolve(ctx, "ada")

	require.NoError(t, err)
	assert.Equal(t, "ada", view.DisplayName)
}

func TestResolveUnknownUsername(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	f.users.On("GetByUsername", ctx, mock.Anything, "nonexistent").Return(types.User{}, store.ErrNotFound)

	_, err := f.service.Resolve(ctx, "nonexistent")

	require.ErrorIs(t, err, store.ErrNotFound)
	f.profiles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveKeepsStoredLinkOrder(t *testing.T) {
	f := newPublicFixture()
	ctx := context.Background()

	ordered := []types.Link{
		{SiteName: "First", SiteUsername: "@a", ProfileURL: "https://a.example"},
		{SiteName: "Second", SiteUsername: "@b", ProfileURL: "https://b.example"},
		{SiteName: "Third", SiteUsername: "@c", ProfileURL: "https://c.example"},
	}
	f.users.On("GetByUsername", ctx, mock.Anything, "ada").Return(types.User{ID: 7, Username: "ada"}, nil)
	f.profiles.On("Get", ctx, mock.Anything, 7).Return(types.Profile{}, store.ErrNotFound)
	f.links.On("ListByUserID", ctx, mock.Anything, 7).Return(ordered, nil)

	view, err := f.service.Resolve(ctx, "ada")

	require.NoError(t, err)
	assert.Equal(t, ordered, view.Links)
}
