package auth

import (
	"context"
	"time"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// AppTokenManager adapts a TokenSource to TokenManager for one token type.
type AppTokenManager struct {
	source    *TokenSource
	tokenType lark.AccessTokenType
	tenantKey string
}

// NewAppTokenManager creates a manager for app or tenant access tokens.
func NewAppTokenManager(source *TokenSource, tokenType lark.AccessTokenType, tenantKey string) *AppTokenManager {
	return &AppTokenManager{source: source, tokenType: tokenType, tenantKey: tenantKey}
}

// GetToken returns a cached or freshly acquired token.
func (m *AppTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.tokenType == lark.AccessTokenTypeApp {
		return m.source.AppAccessToken(ctx)
	}

	return m.source.TenantAccessToken(ctx, m.tenantKey)
}

// RefreshToken drops the cached token and acquires a new one.
func (m *AppTokenManager) RefreshToken(ctx context.Context) error {
	err := m.source.Invalidate(ctx, m.tokenType, m.tenantKey)
	if err != nil {
		return err
	}

	_, err = m.GetToken(ctx)

	return err
}

// SetToken seeds the cache with a token obtained elsewhere. Like acquired tokens it is
// dropped constants.TokenExpiryDelta before expiresAt, and nothing is stored when the
// token cache is disabled.
func (m *AppTokenManager) SetToken(token string, expiresAt time.Time) {
	key := AppAccessTokenKey(m.source.config.AppID)
	if m.tokenType == lark.AccessTokenTypeTenant {
		key = TenantAccessTokenKey(m.source.config.AppID, m.tenantKey)
	}

	m.source.seed(context.Background(), key, token, expiresAt)
}
