package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	larkhttp "github.com/fivetwenty-io/lark-client/internal/http"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// Doer sends a request, normally *larkhttp.Client.
type Doer interface {
	Do(ctx context.Context, req *larkhttp.Request) (*larkhttp.Response, error)
}

// Config configures a TokenSource.
type Config struct {
	AppID     string
	AppSecret string
	AppType   lark.AppType
	// Cache holds tokens and app tickets. Defaults to a memory cache.
	Cache lark.Cache
	// DisableCache fetches a fresh token on every call. App tickets are still cached.
	DisableCache bool
	Logger       lark.Logger
}

// TokenSource acquires app and tenant access tokens from app credentials and caches
// them until constants.TokenExpiryDelta before they expire.
type TokenSource struct {
	config *Config
	doer   Doer
	cache  lark.Cache
	logger lark.Logger
	// Serializes fetches so concurrent callers share one token request.
	mu sync.Mutex
}

// NewTokenSource creates a token source.
func NewTokenSource(config *Config, doer Doer) *TokenSource {
	cache := config.Cache
	if cache == nil {
		cache = lark.NewMemoryCache(constants.DefaultCacheSize)
	}

	logger := config.Logger
	if logger == nil {
		logger = lark.NopLogger{}
	}

	if config.AppType == "" {
		config.AppType = lark.AppTypeSelfBuilt
	}

	return &TokenSource{config: config, doer: doer, cache: cache, logger: logger}
}

// AppAccessTokenKey is the cache key of an app access token.
func AppAccessTokenKey(appID string) string {
	return string(lark.AccessTokenTypeApp) + ":" + appID
}

// TenantAccessTokenKey is the cache key of a tenant access token.
func TenantAccessTokenKey(appID, tenantKey string) string {
	key := string(lark.AccessTokenTypeTenant) + ":" + appID
	if tenantKey != "" {
		key += ":" + tenantKey
	}

	return key
}

// AppTicketKey is the cache key of a marketplace app ticket.
func AppTicketKey(appID string) string {
	return "app_ticket:" + appID
}

// AppAccessToken returns a valid app access token.
func (s *TokenSource) AppAccessToken(ctx context.Context) (string, error) {
	err := s.checkCredentials()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appAccessToken(ctx)
}

// TenantAccessToken returns a valid tenant access token. Marketplace apps must pass
// the tenant key.
func (s *TokenSource) TenantAccessToken(ctx context.Context, tenantKey string) (string, error) {
	err := s.checkCredentials()
	if err != nil {
		return "", err
	}

	if s.config.AppType == lark.AppTypeMarketplace && tenantKey == "" {
		return "", lark.ErrTenantKeyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := TenantAccessTokenKey(s.config.AppID, tenantKey)

	token, ok := s.cached(ctx, key)
	if ok {
		return token, nil
	}

	var resp *lark.TokenResponse

	if s.config.AppType == lark.AppTypeMarketplace {
		appToken, err := s.appAccessToken(ctx)
		if err != nil {
			return "", err
		}

		resp, err = s.post(ctx, constants.APIPathTenantAccessToken, &lark.TenantTokenRequest{
			AppAccessToken: appToken,
			TenantKey:      tenantKey,
		})
		if err != nil {
			return "", err
		}
	} else {
		resp, err = s.post(ctx, constants.APIPathTenantAccessTokenInternal, &lark.AppCredentials{
			AppID:     s.config.AppID,
			AppSecret: s.config.AppSecret,
		})
		if err != nil {
			return "", err
		}
	}

	if resp.TenantAccessToken == "" {
		return "", fmt.Errorf("%w: tenant_access_token", lark.ErrEmptyTokenResponse)
	}

	s.store(ctx, key, resp.TenantAccessToken, resp.Expire)

	return resp.TenantAccessToken, nil
}

// SetAppTicket stores a ticket pushed to the app's event callback.
func (s *TokenSource) SetAppTicket(ctx context.Context, ticket string) error {
	err := s.cache.Set(ctx, AppTicketKey(s.config.AppID), &lark.CacheEntry{
		Data:      []byte(ticket),
		ExpiresAt: time.Now().Add(constants.AppTicketTTL),
	})
	if err != nil {
		return fmt.Errorf("storing app ticket: %w", err)
	}

	return nil
}

// Invalidate drops the cached token of the given type so the next call fetches a new one.
func (s *TokenSource) Invalidate(ctx context.Context, tokenType lark.AccessTokenType, tenantKey string) error {
	key := AppAccessTokenKey(s.config.AppID)
	if tokenType == lark.AccessTokenTypeTenant {
		key = TenantAccessTokenKey(s.config.AppID, tenantKey)
	}

	err := s.cache.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("invalidating %s: %w", tokenType, err)
	}

	return nil
}

func (s *TokenSource) appAccessToken(ctx context.Context) (string, error) {
	key := AppAccessTokenKey(s.config.AppID)

	token, ok := s.cached(ctx, key)
	if ok {
		return token, nil
	}

	var (
		resp *lark.TokenResponse
		err  error
	)

	if s.config.AppType == lark.AppTypeMarketplace {
		ticket, ticketErr := s.appTicket(ctx)
		if ticketErr != nil {
			return "", ticketErr
		}

		resp, err = s.post(ctx, constants.APIPathAppAccessToken, &lark.MarketplaceAppCredentials{
			AppID:     s.config.AppID,
			AppSecret: s.config.AppSecret,
			AppTicket: ticket,
		})
	} else {
		resp, err = s.post(ctx, constants.APIPathAppAccessTokenInternal, &lark.AppCredentials{
			AppID:     s.config.AppID,
			AppSecret: s.config.AppSecret,
		})
	}

	if err != nil {
		return "", err
	}

	if resp.AppAccessToken == "" {
		return "", fmt.Errorf("%w: app_access_token", lark.ErrEmptyTokenResponse)
	}

	s.store(ctx, key, resp.AppAccessToken, resp.Expire)

	return resp.AppAccessToken, nil
}

// appTicket reads the pushed ticket. When none is cached it asks the platform to push
// one and fails; the next call succeeds once the ticket arrives.
func (s *TokenSource) appTicket(ctx context.Context) (string, error) {
	entry, err := s.cache.Get(ctx, AppTicketKey(s.config.AppID))
	if err == nil {
		return string(entry.Data), nil
	}

	s.logger.Warn("app ticket not cached, requesting resend", map[string]interface{}{
		"app_id": s.config.AppID,
	})

	resendResp, resendErr := s.doer.Do(ctx, &larkhttp.Request{
		Method: http.MethodPost,
		Path:   constants.APIPathAppTicketResend,
		Route:  constants.APIPathAppTicketResend,
		Body: &lark.AppCredentials{
			AppID:     s.config.AppID,
			AppSecret: s.config.AppSecret,
		},
	})
	if resendErr != nil {
		return "", fmt.Errorf("requesting app ticket resend: %w", resendErr)
	}

	var envelope lark.Envelope[lark.Empty]

	err = json.Unmarshal(resendResp.Body, &envelope)
	if err == nil && !envelope.Success() {
		return "", fmt.Errorf("requesting app ticket resend: %w", envelope.Err())
	}

	return "", lark.ErrAppTicketNotFound
}

func (s *TokenSource) post(ctx context.Context, path string, body interface{}) (*lark.TokenResponse, error) {
	resp, err := s.doer.Do(ctx, &larkhttp.Request{
		Method: http.MethodPost,
		Path:   path,
		Route:  path,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}

	var tokenResp lark.TokenResponse

	err = json.Unmarshal(resp.Body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", path, err)
	}

	tokenResp.LogID = resp.Headers.Get(constants.HeaderLogID)

	err = tokenResp.Err()
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}

	return &tokenResp, nil
}

func (s *TokenSource) cached(ctx context.Context, key string) (string, bool) {
	if s.config.DisableCache {
		return "", false
	}

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, lark.ErrCacheMiss) {
			s.logger.Debug("token cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}

		return "", false
	}

	return string(entry.Data), true
}

func (s *TokenSource) store(ctx context.Context, key, token string, expire int) {
	s.seed(ctx, key, token, time.Now().Add(time.Duration(expire)*time.Second))
}

// seed caches token until constants.TokenExpiryDelta before expiresAt.
func (s *TokenSource) seed(ctx context.Context, key, token string, expiresAt time.Time) {
	if s.config.DisableCache {
		return
	}

	cacheUntil := expiresAt.Add(-constants.TokenExpiryDelta)
	if !cacheUntil.After(time.Now()) {
		return
	}

	err := s.cache.Set(ctx, key, &lark.CacheEntry{Data: []byte(token), ExpiresAt: cacheUntil})
	if err != nil {
		s.logger.Warn("token cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (s *TokenSource) checkCredentials() error {
	if s.config.AppID == "" || s.config.AppSecret == "" {
		return lark.ErrAppCredentialsRequired
	}

	return nil
}
