package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// PayloadFormatter turns a call payload into a ResolvedRequest. It decides headers and
// attaches the access token the endpoint needs.
type PayloadFormatter interface {
	Format(ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts *lark.RequestOptions) (*ResolvedRequest, error)
}

// TokenProvider acquires app and tenant access tokens, normally *auth.TokenSource.
type TokenProvider interface {
	AppAccessToken(ctx context.Context) (string, error)
	TenantAccessToken(ctx context.Context, tenantKey string) (string, error)
}

// UserTokenProvider supplies a default user access token, normally
// *auth.UserTokenManager.
type UserTokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// DefaultFormatter is the PayloadFormatter used by New.
type DefaultFormatter struct {
	tokens     TokenProvider
	userTokens UserTokenProvider
	userAgent  string
	headers    map[string]string
}

// NewDefaultFormatter creates a formatter. tokens may be nil, in which case only calls
// that carry their own token succeed.
func NewDefaultFormatter(tokens TokenProvider, userAgent string, headers map[string]string) *DefaultFormatter {
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	return &DefaultFormatter{
		tokens:    tokens,
		userAgent: userAgent,
		headers:   lo.Assign(headers),
	}
}

// WithUserTokens makes f send the token from tokens to endpoints that accept user
// access tokens when a call carries no access token of its own.
func (f *DefaultFormatter) WithUserTokens(tokens UserTokenProvider) *DefaultFormatter {
	f.userTokens = tokens

	return f
}

// Format implements PayloadFormatter. Header precedence, lowest first: User-Agent and
// X-Request-Id, configured headers, Authorization, per-call headers.
func (f *DefaultFormatter) Format(
	ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts *lark.RequestOptions,
) (*ResolvedRequest, error) {
	if payload == nil {
		payload = &lark.Payload{}
	}

	if opts == nil {
		opts = &lark.RequestOptions{}
	}

	requestID := opts.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	headers := lo.Assign(map[string]string{
		constants.HeaderUserAgent: f.userAgent,
		constants.HeaderRequestID: requestID,
	}, f.headers)

	token, err := f.accessToken(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}

	if token != "" {
		headers[constants.HeaderAuthorization] = "Bearer " + token
	}

	return &ResolvedRequest{
		Headers: lo.Assign(headers, opts.Headers),
		Params:  lo.Assign(payload.Params),
		Data:    payload.Data,
		Path:    lo.Assign(payload.Path),
	}, nil
}

// accessToken picks the token for the call: a user token when given, else a tenant
// token, else an app token. Explicit tokens in opts skip acquisition.
func (f *DefaultFormatter) accessToken(ctx context.Context, endpoint *Endpoint, opts *lark.RequestOptions) (string, error) {
	if len(endpoint.AccessTokens) == 0 {
		return "", nil
	}

	userToken, err := f.userToken(ctx, endpoint, opts)
	if err != nil {
		return "", err
	}

	if userToken != "" {
		return userToken, nil
	}

	switch {
	case endpoint.Accepts(lark.AccessTokenTypeTenant):
		if opts.TenantAccessToken != "" {
			return opts.TenantAccessToken, nil
		}

		if f.tokens == nil {
			return "", lark.ErrAppCredentialsRequired
		}

		token, err := f.tokens.TenantAccessToken(ctx, opts.TenantKey)
		if err != nil {
			return "", fmt.Errorf("acquiring tenant access token: %w", err)
		}

		return token, nil
	case endpoint.Accepts(lark.AccessTokenTypeApp):
		if opts.AppAccessToken != "" {
			return opts.AppAccessToken, nil
		}

		if f.tokens == nil {
			return "", lark.ErrAppCredentialsRequired
		}

		token, err := f.tokens.AppAccessToken(ctx)
		if err != nil {
			return "", fmt.Errorf("acquiring app access token: %w", err)
		}

		return token, nil
	default:
		return "", lark.ErrUserAccessTokenRequired
	}
}

// userToken returns the call's user token, falling back to the configured one. An
// unusable configured token only fails endpoints that accept nothing else.
func (f *DefaultFormatter) userToken(ctx context.Context, endpoint *Endpoint, opts *lark.RequestOptions) (string, error) {
	if !endpoint.Accepts(lark.AccessTokenTypeUser) {
		return "", nil
	}

	if opts.UserAccessToken != "" {
		return opts.UserAccessToken, nil
	}

	if f.userTokens == nil || opts.TenantAccessToken != "" || opts.AppAccessToken != "" {
		return "", nil
	}

	token, err := f.userTokens.GetToken(ctx)
	if err != nil {
		if endpoint.Accepts(lark.AccessTokenTypeTenant) || endpoint.Accepts(lark.AccessTokenTypeApp) {
			return "", nil
		}

		return "", fmt.Errorf("configured user access token: %w", err)
	}

	return token, nil
}
