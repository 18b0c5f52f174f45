package types

// Customization is the payload exchanged with the owner's editor. The same
// shape is accepted by save and returned by load.
type Customization struct {
	DisplayName string     `json:"displayName"`
	Tagline     string     `json:"tagline"`
	Background  Background `json:"background"`
	Typography  Typography `json:"typography"`
	Links       []Link     `json:"links"`
}

// PublicProfile is the denormalized, read-only view rendered for anonymous
// visitors of /public/{username}.
type PublicProfile struct {
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Tagline     string     `json:"tagline"`
	Background  Background `json:"background"`
	Typography  Typography `json:"typography"`
	Links       []Link     `json:"links"`
}
