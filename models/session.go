package models

// Session is the client-side login state persisted between terminal client
// runs: the JWT issued at signin plus the account it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
