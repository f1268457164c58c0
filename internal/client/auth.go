package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// The auth endpoints take credentials in the body and no Authorization header.
var (
	authAppAccessTokenCreate      = &Endpoint{Method: http.MethodPost, Path: constants.APIPathAppAccessToken}
	authAppAccessTokenInternal    = &Endpoint{Method: http.MethodPost, Path: constants.APIPathAppAccessTokenInternal}
	authTenantAccessTokenCreate   = &Endpoint{Method: http.MethodPost, Path: constants.APIPathTenantAccessToken}
	authTenantAccessTokenInternal = &Endpoint{Method: http.MethodPost, Path: constants.APIPathTenantAccessTokenInternal}
	authAppTicketResend           = &Endpoint{Method: http.MethodPost, Path: constants.APIPathAppTicketResend}
)

// AuthClient implements lark.AuthClient.
type AuthClient struct {
	appAccessTokens    *AppAccessTokensClient
	tenantAccessTokens *TenantAccessTokensClient
	appTickets         *AppTicketsClient
}

// newAuthClient creates the auth resource group.
func newAuthClient(r *requester) *AuthClient {
	return &AuthClient{
		appAccessTokens:    &AppAccessTokensClient{r: r},
		tenantAccessTokens: &TenantAccessTokensClient{r: r},
		appTickets:         &AppTicketsClient{r: r},
	}
}

func (c *AuthClient) AppAccessTokens() lark.AppAccessTokensClient       { return c.appAccessTokens }
func (c *AuthClient) TenantAccessTokens() lark.TenantAccessTokensClient { return c.tenantAccessTokens }
func (c *AuthClient) AppTickets() lark.AppTicketsClient                 { return c.appTickets }

// AppAccessTokensClient implements lark.AppAccessTokensClient.
type AppAccessTokensClient struct {
	r *requester
}

// Create implements lark.AppAccessTokensClient.Create.
func (c *AppAccessTokensClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.TokenResponse, error) {
	return callToken(ctx, c.r, authAppAccessTokenCreate, payload, opts)
}

// Internal implements lark.AppAccessTokensClient.Internal.
func (c *AppAccessTokensClient) Internal(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.TokenResponse, error) {
	return callToken(ctx, c.r, authAppAccessTokenInternal, payload, opts)
}

// TenantAccessTokensClient implements lark.TenantAccessTokensClient.
type TenantAccessTokensClient struct {
	r *requester
}

// Create implements lark.TenantAccessTokensClient.Create.
func (c *TenantAccessTokensClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.TokenResponse, error) {
	return callToken(ctx, c.r, authTenantAccessTokenCreate, payload, opts)
}

// Internal implements lark.TenantAccessTokensClient.Internal.
func (c *TenantAccessTokensClient) Internal(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.TokenResponse, error) {
	return callToken(ctx, c.r, authTenantAccessTokenInternal, payload, opts)
}

// AppTicketsClient implements lark.AppTicketsClient.
type AppTicketsClient struct {
	r *requester
}

// Resend implements lark.AppTicketsClient.Resend.
func (c *AppTicketsClient) Resend(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.Empty], error) {
	return call[lark.Empty](ctx, c.r, authAppTicketResend, payload, opts)
}

// callToken calls an auth v3 endpoint, whose token fields are not wrapped in "data".
func callToken(ctx context.Context, r *requester, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption) (*lark.TokenResponse, error) {
	resp, logID, err := send[lark.TokenResponse](ctx, r, endpoint, payload, opts)
	if err != nil {
		return nil, err
	}

	resp.LogID = logID

	return resp, nil
}
