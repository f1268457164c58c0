package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// TokenManager hands out an access token for requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// usable reports whether a token expiring at expiresAt can still be sent. A zero
// expiry never expires; otherwise the token must outlive constants.TokenExpiryDelta.
func usable(expiresAt time.Time) bool {
	return expiresAt.IsZero() || time.Now().Add(constants.TokenExpiryDelta).Before(expiresAt)
}

// UserTokenManager holds a user access token obtained outside the client, e.g. from
// the authen access token exchange. It cannot acquire tokens itself; callers replace
// the token with SetToken after refreshing it.
type UserTokenManager struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// NewUserTokenManager creates a manager for token. A zero expiresAt never expires.
func NewUserTokenManager(token string, expiresAt time.Time) *UserTokenManager {
	return &UserTokenManager{token: token, expiresAt: expiresAt}
}

// GetToken returns the user access token.
func (m *UserTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", lark.ErrUserAccessTokenRequired
	}

	if !usable(m.expiresAt) {
		return "", lark.ErrUserAccessTokenExpired
	}

	return m.token, nil
}

// RefreshToken always fails; refresh through Authen().RefreshAccessTokens() and SetToken.
func (m *UserTokenManager) RefreshToken(ctx context.Context) error {
	return lark.ErrStaticTokenCannotRefresh
}

// SetToken replaces the user access token.
func (m *UserTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.expiresAt = expiresAt
}
