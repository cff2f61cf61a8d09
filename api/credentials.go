package api

import (
	"context"
	"sync"
)

// CredentialProvider supplies the bearer credential attached to every
// request. It is injected at client construction; there is no ambient
// token singleton. Refresh is invoked at most once per request, on 401.
type CredentialProvider interface {
	// Token returns the current bearer token
	Token(ctx context.Context) (string, error)

	// Refresh obtains a fresh token after the current one was rejected
	Refresh(ctx context.Context) (string, error)
}

// StaticCredentials is a CredentialProvider backed by a fixed token, used
// for service credentials that an external process rotates, and in tests.
type StaticCredentials struct {
	mu    sync.RWMutex
	token string
}

// NewStaticCredentials creates a provider around a fixed token
func NewStaticCredentials(token string) *StaticCredentials {
	return &StaticCredentials{token: token}
}

func (c *StaticCredentials) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, nil
}

// Refresh returns the same token; static credentials cannot renew themselves
func (c *StaticCredentials) Refresh(ctx context.Context) (string, error) {
	return c.Token(ctx)
}

// SetToken swaps the token, for rotation by an external process
func (c *StaticCredentials) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}
