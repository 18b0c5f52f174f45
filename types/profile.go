package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Recognized background descriptor kinds.
const (
	BackgroundTypeColor = "color"
	BackgroundTypeImage = "image"
)

// Documented customization defaults, applied whenever a user has not
// customized their profile yet. They match what the client preselects.
const (
	DefaultBackgroundColor = "#f0f0f0"
	DefaultTextColor       = "#000000"
	DefaultFont            = "Arial"
)

// Background selects the profile backdrop: either a flat color or an
// image path/URL, tagged by Type.
type Background struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Typography describes the text rendering of a profile page.
type Typography struct {
	Color string `json:"color"`
	Font  string `json:"font"`
}

// Profile is the per-user page configuration. One row per user, created
// lazily on the first save.
type Profile struct {
	UserID      int        `json:"-" db:"user_id"`
	DisplayName string     `json:"displayName" db:"display_name"`
	Tagline     string     `json:"tagline" db:"tagline"`
	Background  Background `json:"background" db:"background"`
	Typography  Typography `json:"typography" db:"typography"`
	CreatedAt   time.Time  `json:"-" db:"created_at"`
	UpdatedAt   time.Time  `json:"-" db:"updated_at"`
}

// DefaultBackground returns the backdrop used when no customization exists.
func DefaultBackground() Background {
	return Background{Type: BackgroundTypeColor, Value: DefaultBackgroundColor}
}

// DefaultTypography returns the text settings used when no customization exists.
func DefaultTypography() Typography {
	return Typography{Color: DefaultTextColor, Font: DefaultFont}
}

// IsZero reports whether the descriptor carries no data at all.
func (b Background) IsZero() bool {
	return b.Type == "" && b.Value == ""
}

// IsZero reports whether the typography carries no data at all.
func (t Typography) IsZero() bool {
	return t.Color == "" && t.Font == ""
}

// UnmarshalJSON accepts the background either as an object or as a
// JSON-encoded string containing that object. Older clients submitted the
// serialized form.
func (b *Background) UnmarshalJSON(data []byte) error {
	data, empty, err := unwrapSerialized(data)
	if err != nil {
		return err
	}
	if empty {
		*b = Background{}
		return nil
	}

	type background Background
	var parsed background
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*b = Background(parsed)
	return nil
}

// UnmarshalJSON accepts the typography either as an object or as a
// JSON-encoded string containing that object.
func (t *Typography) UnmarshalJSON(data []byte) error {
	data, empty, err := unwrapSerialized(data)
	if err != nil {
		return err
	}
	if empty {
		*t = Typography{}
		return nil
	}

	type typography Typography
	var parsed typography
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*t = Typography(parsed)
	return nil
}

// unwrapSerialized peels one level of string encoding off a JSON value.
// It reports empty for null, the empty string, and whitespace-only strings.
func unwrapSerialized(data []byte) ([]byte, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, true, nil
	}
	if data[0] != '"' {
		return data, false, nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true, nil
	}
	return []byte(raw), false, nil
}
