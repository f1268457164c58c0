package lark

import "context"

// AuthenClient groups the authen v1 resources (user identity).
type AuthenClient interface {
	UserInfo() UserInfoClient
	AccessTokens() UserAccessTokensClient
	RefreshAccessTokens() RefreshAccessTokensClient
}

// UserInfoClient returns the user a user access token belongs to.
type UserInfoClient interface {
	Get(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserInfo], error)
}

// UserAccessTokensClient exchanges a login code for a user access token.
type UserAccessTokensClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserAccessToken], error)
}

// RefreshAccessTokensClient renews a user access token.
type RefreshAccessTokensClient interface {
	Create(ctx context.Context, payload *Payload, opts ...RequestOption) (*Envelope[UserAccessToken], error)
}

// UserInfo describes the signed-in user.
type UserInfo struct {
	Name            string `json:"name"                       yaml:"name"`
	EnName          string `json:"en_name,omitempty"          yaml:"en_name,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"       yaml:"avatar_url,omitempty"`
	OpenID          string `json:"open_id"                    yaml:"open_id"`
	UnionID         string `json:"union_id"                   yaml:"union_id"`
	UserID          string `json:"user_id,omitempty"          yaml:"user_id,omitempty"`
	Email           string `json:"email,omitempty"            yaml:"email,omitempty"`
	EnterpriseEmail string `json:"enterprise_email,omitempty" yaml:"enterprise_email,omitempty"`
	Mobile          string `json:"mobile,omitempty"           yaml:"mobile,omitempty"`
	TenantKey       string `json:"tenant_key"                 yaml:"tenant_key"`
	EmployeeNo      string `json:"employee_no,omitempty"      yaml:"employee_no,omitempty"`
}

// UserAccessTokenCreate is the body of the authorization code exchange.
type UserAccessTokenCreate struct {
	GrantType string `json:"grant_type" yaml:"grant_type"`
	Code      string `json:"code"       yaml:"code"`
}

// RefreshAccessTokenCreate is the body of the refresh call.
type RefreshAccessTokenCreate struct {
	GrantType    string `json:"grant_type"    yaml:"grant_type"`
	RefreshToken string `json:"refresh_token" yaml:"refresh_token"`
}

// UserAccessToken is a user access token with its identity claims.
type UserAccessToken struct {
	UserInfo

	AccessToken      string `json:"access_token"       yaml:"access_token"`
	TokenType        string `json:"token_type"         yaml:"token_type"`
	ExpiresIn        int    `json:"expires_in"         yaml:"expires_in"`
	RefreshToken     string `json:"refresh_token"      yaml:"refresh_token"`
	RefreshExpiresIn int    `json:"refresh_expires_in" yaml:"refresh_expires_in"`
	Scope            string `json:"scope,omitempty"    yaml:"scope,omitempty"`
	SID              string `json:"sid,omitempty"      yaml:"sid,omitempty"`
}
