package models

// User is the authenticated account as reported by the backend. The client
// only ever consumes ID and IsAdmin; everything else is display data. Users
// are never mutated in place, only replaced wholesale on the session.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}
