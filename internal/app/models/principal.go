package models

import "time"

// Principal is the identity resolved from a verified bearer token. The token
// itself is the full state; nothing is looked up server-side on each request
// beyond the revocation check.
type Principal struct {
	UserID    string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}
