package domain

// Session identifies the logged-in user. At most one session is active at a
// time; it is persisted so a restart resumes the authenticated view.
type Session struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
}
