package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linkhive/apiserver/internal/store"
	"github.com/linkhive/apiserver/types"
)

// ProfileRepository defines persistence operations for profile configuration.
type ProfileRepository interface {
	Get(ctx context.Context, q store.Querier, userID int) (types.Profile, error)
	Upsert(ctx context.Context, q store.Querier, profile types.Profile) error
}

// LinkRepository defines persistence operations for link entries.
type LinkRepository interface {
	ListByUserID(ctx context.Context, q store.Querier, userID int) ([]types.Link, error)
	ReplaceAll(ctx context.Context, q store.Querier, userID int, links []types.Link) error
}

// CustomizationService validates, normalizes and persists a user's profile
// customization, and reconstructs it for the owner's editor.
type CustomizationService struct {
	db         store.TxBeginner
	querier    store.Querier
	users      UserRepository
	profiles   ProfileRepository
	links      LinkRepository
	beginTx    store.BeginTxFunc
	commitTx   store.CommitTxFunc
	rollbackTx store.RollbackTxFunc
}

// NewCustomizationService wires the service. db and querier are normally the
// same *sqlx.DB; tests substitute the transaction functions to exercise
// failure paths.
func NewCustomizationService(
	db store.TxBeginner,
	querier store.Querier,
	users UserRepository,
	profiles ProfileRepository,
	links LinkRepository,
	beginTx store.BeginTxFunc,
	commitTx store.CommitTxFunc,
	rollbackTx store.RollbackTxFunc,
) *CustomizationService {
	return &CustomizationService{
		db:         db,
		querier:    querier,
		users:      users,
		profiles:   profiles,
		links:      links,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Save validates and normalizes the payload, then applies it in one
// transaction: upsert the profile row and replace the full link set. It
// returns the user's current username so the client can navigate to the
// public page. A failure at any step leaves the previous state intact.
func (s *CustomizationService) Save(ctx context.Context, userID int, payload types.Customization) (string, error) {
	normalized, err := normalizeCustomization(payload)
	if err != nil {
		return "", err
	}

	tx, err := s.beginTx(ctx, s.db)
	if err != nil {
		return "", fmt.Errorf("save customization: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(tx)

	q, ok := tx.(store.Querier)
	if !ok {
		return "", fmt.Errorf("save customization: transaction does not implement Querier")
	}

	user, err := s.users.GetByID(ctx, q, userID)
	if err != nil {
		return "", fmt.Errorf("save customization: failed to load user %d: %w", userID, err)
	}

	profile := types.Profile{
		UserID:      userID,
		DisplayName: normalized.DisplayName,
		Tagline:     normalized.Tagline,
		Background:  normalized.Background,
		Typography:  normalized.Typography,
	}
	if err := s.profiles.Upsert(ctx, q, profile); err != nil {
		return "", fmt.Errorf("save customization: failed to upsert profile: %w", err)
	}

	if err := s.links.ReplaceAll(ctx, q, userID, normalized.Links); err != nil {
		return "", fmt.Errorf("save customization: failed to replace links: %w", err)
	}

	if err := s.commitTx(tx); err != nil {
		return "", fmt.Errorf("save customization: failed to commit transaction: %w", err)
	}

	return user.Username, nil
}

// Load returns the owner's current customization in the same shape Save
// accepts. A user who has never saved gets an all-defaults payload, not an
// error.
func (s *CustomizationService) Load(ctx context.Context, userID int) (types.Customization, error) {
	if _, err := s.users.GetByID(ctx, s.querier, userID); err != nil {
		return types.Customization{}, fmt.Errorf("load customization: failed to load user %d: %w", userID, err)
	}

	profile, err := s.profiles.Get(ctx, s.querier, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return defaultCustomization(), nil
		}
		return types.Customization{}, fmt.Errorf("load customization: failed to load profile: %w", err)
	}

	links, err := s.links.ListByUserID(ctx, s.querier, userID)
	if err != nil {
		return types.Customization{}, fmt.Errorf("load customization: failed to load links: %w", err)
	}

	return types.Customization{
		DisplayName: profile.DisplayName,
		Tagline:     profile.Tagline,
		Background:  backgroundOrDefault(profile.Background),
		Typography:  typographyOrDefault(profile.Typography),
		Links:       links,
	}, nil
}

func defaultCustomization() types.Customization {
	return types.Customization{
		DisplayName: "",
		Tagline:     "",
		Background:  types.DefaultBackground(),
		Typography:  types.DefaultTypography(),
		Links:       []types.Link{},
	}
}

func backgroundOrDefault(background types.Background) types.Background {
	if background.IsZero() {
		return types.DefaultBackground()
	}
	return background
}

func typographyOrDefault(typography types.Typography) types.Typography {
	if typography.IsZero() {
		return types.DefaultTypography()
	}
	return typography
}

// normalizeCustomization enforces the save contract and produces the
// canonical form that is persisted: trimmed fields, scheme-qualified URLs,
// defaulted background/typography.
func normalizeCustomization(payload types.Customization) (types.Customization, error) {
	displayName := strings.TrimSpace(payload.DisplayName)
	if displayName == "" {
		return types.Customization{}, validationFailed(CodeDisplayNameRequired, "display name is required")
	}

	if len(payload.Links) > types.MaxLinks {
		return types.Customization{}, validationFailed(
			CodeTooManyLinks,
			fmt.Sprintf("at most %d links are allowed", types.MaxLinks),
		)
	}

	links := make([]types.Link, 0, len(payload.Links))
	for i, link := range payload.Links {
		siteName := strings.TrimSpace(link.SiteName)
		siteUsername := strings.TrimSpace(link.SiteUsername)
		profileURL := strings.TrimSpace(link.ProfileURL)
		if siteName == "" || siteUsername == "" || profileURL == "" {
			return types.Customization{}, validationFailed(
				CodeLinkFieldsRequired,
				fmt.Sprintf("link %d must have a site name, a site username and a profile URL", i+1),
			)
		}
		links = append(links, types.Link{
			SiteName:     siteName,
			SiteUsername: siteUsername,
			ProfileURL:   normalizeURL(profileURL),
		})
	}

	background := payload.Background
	if background.IsZero() {
		background = types.DefaultBackground()
	} else if background.Type != types.BackgroundTypeColor && background.Type != types.BackgroundTypeImage {
		return types.Customization{}, validationFailed(
			CodeInvalidBackground,
			fmt.Sprintf("background type must be %q or %q", types.BackgroundTypeColor, types.BackgroundTypeImage),
		)
	}

	typography := payload.Typography
	if typography.IsZero() {
		typography = types.DefaultTypography()
	} else if typography.Color == "" || typography.Font == "" {
		return types.Customization{}, validationFailed(
			CodeInvalidTypography,
			"typography must have both a color and a font",
		)
	}

	return types.Customization{
		DisplayName: displayName,
		Tagline:     strings.TrimSpace(payload.Tagline),
		Background:  background,
		Typography:  typography,
		Links:       links,
	}, nil
}

// normalizeURL prepends https:// when the submitted value carries no
// explicit http/https scheme. Already-qualified URLs pass through unchanged.
func normalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}
