// Package models defines the client-side data model: the current user,
// cached recipes, the add/edit form, and backend response payloads.
package models

import (
	"net/http"
	"time"
)

// User is the authenticated account as reported by the backend.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// SessionCookie is a persisted backend session cookie.
type SessionCookie struct {
	Name    string
	Value   string
	Path    string
	Domain  string
	Expires time.Time
}

func SessionCookieFromHTTP(c *http.Cookie) SessionCookie {
	return SessionCookie{
		Name:    c.Name,
		Value:   c.Value,
		Path:    c.Path,
		Domain:  c.Domain,
		Expires: c.Expires,
	}
}

func (c SessionCookie) HTTP() *http.Cookie {
	return &http.Cookie{
		Name:    c.Name,
		Value:   c.Value,
		Path:    c.Path,
		Domain:  c.Domain,
		Expires: c.Expires,
	}
}

// Expired reports whether the cookie carries an expiry that has passed.
func (c SessionCookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}
