package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundUnmarshalObject(t *testing.T) {
	var background Background
	err := json.Unmarshal([]byte(`{"type":"image","value":"/backgrounds/3.png"}`), &background)

	require.NoError(t, err)
	assert.Equal(t, Background{Type: BackgroundTypeImage, Value: "/backgrounds/3.png"}, background)
}

func TestBackgroundUnmarshalSerializedString(t *testing.T) {
	var background Background
	err := json.Unmarshal([]byte(`"{\"type\":\"color\",\"value\":\"#fffacd\"}"`), &background)

	require.NoError(t, err)
	assert.Equal(t, Background{Type: BackgroundTypeColor, Value: "#fffacd"}, background)
}

func TestBackgroundUnmarshalNullAndEmptyString(t *testing.T) {
	for _, input := range []string{`null`, `""`, `"  "`} {
		var background Background
		err := json.Unmarshal([]byte(input), &background)

		require.NoError(t, err, "input %s", input)
		assert.True(t, background.IsZero(), "input %s", input)
	}
}

func TestBackgroundUnmarshalMalformedSerializedString(t *testing.T) {
	var background Background
	err := json.Unmarshal([]byte(`"{not json"`), &background)

	assert.Error(t, err)
}

func TestTypographyUnmarshalSerializedString(t *testing.T) {
	var typography Typography
	err := json.Unmarshal([]byte(`"{\"color\":\"#333333\",\"font\":\"Georgia\"}"`), &typography)

	require.NoError(t, err)
	assert.Equal(t, Typography{Color: "#333333", Font: "Georgia"}, typography)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, Background{Type: BackgroundTypeColor, Value: "#f0f0f0"}, DefaultBackground())
	assert.Equal(t, Typography{Color: "#000000", Font: "Arial"}, DefaultTypography())
}
