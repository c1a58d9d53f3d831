package domain

import (
	"time"
)

// AuthToken is a bearer token issued by the upstream login endpoint.
type AuthToken struct {
	Expiry time.Time `json:"expiry"`
	Token  string    `json:"token"`
}

// HasExpired reports whether the token is stale at the given instant,
// with leeway widening the expiry check so a token about to lapse is
// refreshed before use.
func (t AuthToken) HasExpired(now time.Time, leeway time.Duration) bool {
	return t.Expiry.Before(now.Add(leeway))
}

// Credentials is a username/password pair for the login endpoint.
type Credentials struct {
	User     string
	Password string
}

// MailgunCredentials configures the mail transfer API.
type MailgunCredentials struct {
	SenderDomain string
	APIKey       string
}
