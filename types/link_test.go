package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkUnmarshalCamelCase(t *testing.T) {
	var link Link
	err := json.Unmarshal([]byte(`{"siteName":"GitHub","siteUsername":"@octocat","profileUrl":"https://github.com/octocat"}`), &link)

	require.NoError(t, err)
	assert.Equal(t, Link{
		SiteName:     "GitHub",
		SiteUsername: "@octocat",
		ProfileURL:   "https://github.com/octocat",
	}, link)
}

func TestLinkUnmarshalLegacyLowercaseKeys(t *testing.T) {
	var link Link
	err := json.Unmarshal([]byte(`{"sitename":"Twitter","siteusername":"@jack","profileurl":"https://twitter.com/jack"}`), &link)

	require.NoError(t, err)
	assert.Equal(t, Link{
		SiteName:     "Twitter",
		SiteUsername: "@jack",
		ProfileURL:   "https://twitter.com/jack",
	}, link)
}

func TestLinkCamelCaseWinsOverLegacy(t *testing.T) {
	var link Link
	err := json.Unmarshal([]byte(`{"siteName":"New","sitename":"Old","siteUsername":"@new","siteusername":"@old","profileUrl":"https://new.example","profileurl":"https://old.example"}`), &link)

	require.NoError(t, err)
	assert.Equal(t, "New", link.SiteName)
	assert.Equal(t, "@new", link.SiteUsername)
	assert.Equal(t, "https://new.example", link.ProfileURL)
}

func TestLinkMarshalEmitsCamelCase(t *testing.T) {
	data, err := json.Marshal(Link{
		SiteName:     "GitHub",
		SiteUsername: "@octocat",
		ProfileURL:   "https://github.com/octocat",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"siteName":"GitHub","siteUsername":"@octocat","profileUrl":"https://github.com/octocat"}`, string(data))
}
