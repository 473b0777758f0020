package responses

import "time"

// Signup deliberately has no password field so the hash can never leak into a
// response, whatever the model carries.
type Signup struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	DateJoined time.Time `json:"date_joined"`
}

type Login struct {
	Token string `json:"token"`
}
