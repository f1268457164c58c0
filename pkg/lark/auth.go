package lark

import "context"

// AuthClient groups the auth v3 resources used to obtain app and tenant tokens.
type AuthClient interface {
	AppAccessTokens() AppAccessTokensClient
	TenantAccessTokens() TenantAccessTokensClient
	AppTickets() AppTicketsClient
}

// AppAccessTokensClient issues app access tokens.
type AppAccessTokensClient interface {
	// Create issues a token for a marketplace app (needs an app ticket).
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*TokenResponse, error)
	// Internal issues a token for a self-built app.
	Internal(ctx context.Context, payload *Payload, opts ...RequestOption) (*TokenResponse, error)
}

// TenantAccessTokensClient issues tenant access tokens.
type TenantAccessTokensClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*TokenResponse, error)
	Internal(ctx context.Context, payload *Payload, opts ...RequestOption) (*TokenResponse, error)
}

// AppTicketsClient asks the platform to push a fresh app ticket.
type AppTicketsClient interface {
	Resend(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[Empty], error)
}

// AppCredentials is the body of self-built token calls.
type AppCredentials struct {
	AppID     string `json:"app_id"     yaml:"app_id"`
	AppSecret string `json:"app_secret" yaml:"app_secret"`
}

// MarketplaceAppCredentials is the body of marketplace app token calls.
type MarketplaceAppCredentials struct {
	AppID     string `json:"app_id"     yaml:"app_id"`
	AppSecret string `json:"app_secret" yaml:"app_secret"`
	AppTicket string `json:"app_ticket" yaml:"app_ticket"`
}

// TenantTokenRequest is the body of the marketplace tenant token call.
type TenantTokenRequest struct {
	AppAccessToken string `json:"app_access_token" yaml:"app_access_token"`
	TenantKey      string `json:"tenant_key"       yaml:"tenant_key"`
}

// TokenResponse is the body of the auth v3 token endpoints. Unlike other endpoints
// the token fields are top-level rather than under "data".
type TokenResponse struct {
	Code              int    `json:"code"                          yaml:"code"`
	Msg               string `json:"msg"                           yaml:"msg"`
	AppAccessToken    string `json:"app_access_token,omitempty"    yaml:"app_access_token,omitempty"`
	TenantAccessToken string `json:"tenant_access_token,omitempty" yaml:"tenant_access_token,omitempty"`
	// Expire is the token lifetime in seconds.
	Expire int `json:"expire" yaml:"expire"`

	LogID string `json:"-" yaml:"-"`
}

// Err returns an *APIError for a non-zero code, nil otherwise.
func (r *TokenResponse) Err() error {
	if r.Code == 0 {
		return nil
	}

	return &APIError{Code: r.Code, Msg: r.Msg, LogID: r.LogID}
}
