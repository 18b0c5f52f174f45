package types

import "encoding/json"

// MaxLinks is the maximum number of link entries a profile may carry.
const MaxLinks = 50

// Link is one external destination shown on a profile: a site label, the
// handle displayed to visitors, and the destination URL.
//
// The full link set of a user is replaced atomically on every save; render
// order is the array order, persisted as a 0-based ordinal.
type Link struct {
	SiteName     string `json:"siteName" db:"site_name"`
	SiteUsername string `json:"siteUsername" db:"site_username"`
	ProfileURL   string `json:"profileUrl" db:"profile_url"`
}

// linkAliases carries both the canonical camelCase keys and the legacy
// all-lowercase aliases older clients and data dumps used.
type linkAliases struct {
	SiteName     string `json:"siteName"`
	SiteUsername string `json:"siteUsername"`
	ProfileURL   string `json:"profileUrl"`

	LegacySiteName     string `json:"sitename"`
	LegacySiteUsername string `json:"siteusername"`
	LegacyProfileURL   string `json:"profileurl"`
}

// UnmarshalJSON normalizes legacy lowercase keys on ingest. Output always
// uses the canonical camelCase keys.
func (l *Link) UnmarshalJSON(data []byte) error {
	var aliases linkAliases
	if err := json.Unmarshal(data, &aliases); err != nil {
		return err
	}

	l.SiteName = firstNonEmpty(aliases.SiteName, aliases.LegacySiteName)
	l.SiteUsername = firstNonEmpty(aliases.SiteUsername, aliases.LegacySiteUsername)
	l.ProfileURL = firstNonEmpty(aliases.ProfileURL, aliases.LegacyProfileURL)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
