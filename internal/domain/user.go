package domain

// User represents an account that authors articles and comments.
// Users are seed data, keyed by username; there is no registration
// path through this API.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
