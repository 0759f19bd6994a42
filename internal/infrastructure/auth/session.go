// Package auth implements the admin gate: a shared password exchanged
// for a bearer token held in memory.
package auth

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "dress-catalogue/internal/domain/errors"
)

// DefaultSessionTTL is how long an admin token stays valid.
const DefaultSessionTTL = 12 * time.Hour

// Gate validates the shared admin password and manages sessions.
// Sessions live in memory only; a restart logs every admin out.
type Gate struct {
	password string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewGate(password string, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Gate{
		password: password,
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Login compares the supplied password in constant time and, on match,
// issues a fresh session token.
func (g *Gate) Login(password string) (string, error) {
	if g.password == "" {
		// An unset password keeps the admin panel closed entirely.
		return "", domainErrors.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return "", domainErrors.ErrUnauthorized
	}

	token := uuid.NewString()

	g.mu.Lock()
	g.sessions[token] = g.now().Add(g.ttl)
	g.mu.Unlock()

	return token, nil
}

// Validate reports whether the token belongs to a live session. Expired
// sessions are dropped on sight.
func (g *Gate) Validate(token string) bool {
	if token == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.sessions[token]
	if !ok {
		return false
	}
	if g.now().After(expiry) {
		delete(g.sessions, token)
		return false
	}
	return true
}

// Revoke ends the session for the given token, if any.
func (g *Gate) Revoke(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}
