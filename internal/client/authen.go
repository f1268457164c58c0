package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

var (
	authenUserInfoGet              = &Endpoint{Method: http.MethodGet, Path: "/open-apis/authen/v1/user_info", AccessTokens: userToken}
	authenAccessTokenCreate        = &Endpoint{Method: http.MethodPost, Path: "/open-apis/authen/v1/access_token", AccessTokens: appToken}
	authenRefreshAccessTokenCreate = &Endpoint{Method: http.MethodPost, Path: "/open-apis/authen/v1/refresh_access_token", AccessTokens: appToken}
)

// AuthenClient implements lark.AuthenClient.
type AuthenClient struct {
	userInfo            *UserInfoClient
	accessTokens        *UserAccessTokensClient
	refreshAccessTokens *RefreshAccessTokensClient
}

// newAuthenClient creates the authen resource group.
func newAuthenClient(r *requester) *AuthenClient {
	return &AuthenClient{
		userInfo:            &UserInfoClient{r: r},
		accessTokens:        &UserAccessTokensClient{r: r},
		refreshAccessTokens: &RefreshAccessTokensClient{r: r},
	}
}

func (c *AuthenClient) UserInfo() lark.UserInfoClient                       { return c.userInfo }
func (c *AuthenClient) AccessTokens() lark.UserAccessTokensClient           { return c.accessTokens }
func (c *AuthenClient) RefreshAccessTokens() lark.RefreshAccessTokensClient { return c.refreshAccessTokens }

// UserInfoClient implements lark.UserInfoClient.
type UserInfoClient struct {
	r *requester
}

// Get requires lark.WithUserAccessToken.
func (c *UserInfoClient) Get(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserInfo], error) {
	return call[lark.UserInfo](ctx, c.r, authenUserInfoGet, payload, opts)
}

// UserAccessTokensClient implements lark.UserAccessTokensClient.
type UserAccessTokensClient struct {
	r *requester
}

// Create exchanges a login code (lark.UserAccessTokenCreate) for a user access token.
func (c *UserAccessTokensClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserAccessToken], error) {
	return call[lark.UserAccessToken](ctx, c.r, authenAccessTokenCreate, payload, opts)
}

// RefreshAccessTokensClient implements lark.RefreshAccessTokensClient.
type RefreshAccessTokensClient struct {
	r *requester
}

// Create implements lark.RefreshAccessTokensClient.Create.
func (c *RefreshAccessTokensClient) Create(ctx context.Context, payload *lark.Payload, opts ...lark.RequestOption) (*lark.Envelope[lark.UserAccessToken], error) {
	return call[lark.UserAccessToken](ctx, c.r, authenRefreshAccessTokenCreate, payload, opts)
}
