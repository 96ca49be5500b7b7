// Package identity is the authentication side of a Kryva account: who the
// caller is and the identity record behind them.
package identity

import "time"

// Session is the authenticated identity a request acts as.
type Session struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	AuthTime    time.Time `json:"-"`
}

// Authenticated reports whether the session carries an identity.
func (s Session) Authenticated() bool { return s.UID != "" }
