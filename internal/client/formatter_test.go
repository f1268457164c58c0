package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// stubTokens hands out fixed tokens and counts acquisitions.
type stubTokens struct {
	app, tenant atomic.Int32
	err         error
}

func (s *stubTokens) AppAccessToken(context.Context) (string, error) {
	s.app.Add(1)

	if s.err != nil {
		return "", s.err
	}

	return "app-token", nil
}

func (s *stubTokens) TenantAccessToken(_ context.Context, tenantKey string) (string, error) {
	s.tenant.Add(1)

	if s.err != nil {
		return "", s.err
	}

	return "tenant-token" + tenantKey, nil
}

func TestDefaultFormatter_Authorization(t *testing.T) {
	t.Parallel()

	tenantEndpoint := &Endpoint{Method: http.MethodGet, Path: "/t", AccessTokens: tenantToken}
	tenantUserEndpoint := &Endpoint{Method: http.MethodGet, Path: "/tu", AccessTokens: tenantUserToken}
	appEndpoint := &Endpoint{Method: http.MethodPost, Path: "/a", AccessTokens: appToken}
	userEndpoint := &Endpoint{Method: http.MethodGet, Path: "/u", AccessTokens: userToken}
	publicEndpoint := &Endpoint{Method: http.MethodPost, Path: "/p"}

	tests := []struct {
		name       string
		endpoint   *Endpoint
		opts       []lark.RequestOption
		wantAuth   string
		wantErr    error
		wantTenant int32
		wantApp    int32
	}{
		{
			name:       "tenant token acquired",
			endpoint:   tenantEndpoint,
			wantAuth:   "Bearer tenant-token",
			wantTenant: 1,
		},
		{
			name:       "tenant key passed through",
			endpoint:   tenantEndpoint,
			opts:       []lark.RequestOption{lark.WithTenantKey("-acme")},
			wantAuth:   "Bearer tenant-token-acme",
			wantTenant: 1,
		},
		{
			name:     "explicit tenant token skips acquisition",
			endpoint: tenantEndpoint,
			opts:     []lark.RequestOption{lark.WithTenantAccessToken("given")},
			wantAuth: "Bearer given",
		},
		{
			name:     "user token preferred",
			endpoint: tenantUserEndpoint,
			opts:     []lark.RequestOption{lark.WithUserAccessToken("u-1"), lark.WithTenantAccessToken("given")},
			wantAuth: "Bearer u-1",
		},
		{
			name:       "user token ignored when not accepted",
			endpoint:   tenantEndpoint,
			opts:       []lark.RequestOption{lark.WithUserAccessToken("u-1")},
			wantAuth:   "Bearer tenant-token",
			wantTenant: 1,
		},
		{
			name:     "app token acquired",
			endpoint: appEndpoint,
			wantAuth: "Bearer app-token",
			wantApp:  1,
		},
		{
			name:     "explicit app token",
			endpoint: appEndpoint,
			opts:     []lark.RequestOption{lark.WithAppAccessToken("given-app")},
			wantAuth: "Bearer given-app",
		},
		{
			name:     "user only endpoint without user token",
			endpoint: userEndpoint,
			wantErr:  lark.ErrUserAccessTokenRequired,
		},
		{
			name:     "user only endpoint",
			endpoint: userEndpoint,
			opts:     []lark.RequestOption{lark.WithUserAccessToken("u-2")},
			wantAuth: "Bearer u-2",
		},
		{
			name:     "no token types",
			endpoint: publicEndpoint,
		},
		{
			name:     "header override wins",
			endpoint: tenantEndpoint,
			opts: []lark.RequestOption{
				lark.WithTenantAccessToken("given"),
				lark.WithHeaders(map[string]string{constants.HeaderAuthorization: "Bearer override"}),
			},
			wantAuth: "Bearer override",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := &stubTokens{}
			formatter := NewDefaultFormatter(tokens, "", nil)

			resolved, err := formatter.Format(context.Background(), tt.endpoint, nil, lark.NewRequestOptions(tt.opts...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			auth, present := resolved.Headers[constants.HeaderAuthorization]
			if tt.wantAuth == "" {
				assert.False(t, present)
			} else {
				assert.Equal(t, tt.wantAuth, auth)
			}

			assert.Equal(t, tt.wantTenant, tokens.tenant.Load())
			assert.Equal(t, tt.wantApp, tokens.app.Load())
		})
	}
}

type staticUserTokens struct {
	token string
	err   error
}

func (s staticUserTokens) GetToken(context.Context) (string, error) {
	return s.token, s.err
}

func TestDefaultFormatter_ConfiguredUserToken(t *testing.T) {
	t.Parallel()

	tenantUserEndpoint := &Endpoint{Method: http.MethodPost, Path: "/tu", AccessTokens: tenantUserToken}
	userEndpoint := &Endpoint{Method: http.MethodGet, Path: "/u", AccessTokens: userToken}
	tenantEndpoint := &Endpoint{Method: http.MethodGet, Path: "/t", AccessTokens: tenantToken}

	tests := []struct {
		name     string
		users    staticUserTokens
		endpoint *Endpoint
		opts     []lark.RequestOption
		wantAuth string
		wantErr  error
	}{
		{name: "user endpoint", users: staticUserTokens{token: "u-conf"}, endpoint: userEndpoint, wantAuth: "Bearer u-conf"},
		{name: "tenant or user endpoint prefers user", users: staticUserTokens{token: "u-conf"}, endpoint: tenantUserEndpoint, wantAuth: "Bearer u-conf"},
		{name: "tenant endpoint ignores user token", users: staticUserTokens{token: "u-conf"}, endpoint: tenantEndpoint, wantAuth: "Bearer tenant-token"},
		{
			name: "call user token wins", users: staticUserTokens{token: "u-conf"}, endpoint: userEndpoint,
			opts: []lark.RequestOption{lark.WithUserAccessToken("u-call")}, wantAuth: "Bearer u-call",
		},
		{
			name: "call tenant token wins", users: staticUserTokens{token: "u-conf"}, endpoint: tenantUserEndpoint,
			opts: []lark.RequestOption{lark.WithTenantAccessToken("given")}, wantAuth: "Bearer given",
		},
		{
			name: "expired token falls back to tenant", users: staticUserTokens{err: lark.ErrUserAccessTokenExpired},
			endpoint: tenantUserEndpoint, wantAuth: "Bearer tenant-token",
		},
		{
			name: "expired token fails user endpoint", users: staticUserTokens{err: lark.ErrUserAccessTokenExpired},
			endpoint: userEndpoint, wantErr: lark.ErrUserAccessTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			formatter := NewDefaultFormatter(&stubTokens{}, "", nil).WithUserTokens(tt.users)

			resolved, err := formatter.Format(context.Background(), tt.endpoint, nil, lark.NewRequestOptions(tt.opts...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, resolved.Headers[constants.HeaderAuthorization])
		})
	}
}

func TestDefaultFormatter_TokenFailure(t *testing.T) {
	t.Parallel()

	errDown := errors.New("auth service down")

	formatter := NewDefaultFormatter(&stubTokens{err: errDown}, "", nil)

	_, err := formatter.Format(context.Background(), attendanceGroupsList, nil, nil)
	require.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "acquiring tenant access token")

	_, err = formatter.Format(context.Background(), authenAccessTokenCreate, nil, nil)
	require.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "acquiring app access token")
}

func TestDefaultFormatter_NoTokenProvider(t *testing.T) {
	t.Parallel()

	formatter := NewDefaultFormatter(nil, "", nil)

	_, err := formatter.Format(context.Background(), attendanceGroupsList, nil, nil)
	require.ErrorIs(t, err, lark.ErrAppCredentialsRequired)

	_, err = formatter.Format(context.Background(), authenRefreshAccessTokenCreate, nil, nil)
	require.ErrorIs(t, err, lark.ErrAppCredentialsRequired)

	resolved, err := formatter.Format(context.Background(), authAppAccessTokenInternal, nil, nil)
	require.NoError(t, err)
	assert.NotContains(t, resolved.Headers, constants.HeaderAuthorization)
}

func TestDefaultFormatter_Headers(t *testing.T) {
	t.Parallel()

	configured := map[string]string{"X-Team": "attendance", constants.HeaderUserAgent: "configured-agent"}
	formatter := NewDefaultFormatter(nil, "custom-agent/2.0", configured)

	// the formatter keeps its own copy
	configured["X-Team"] = "changed"

	resolved, err := formatter.Format(context.Background(), publicTestEndpoint(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "attendance", resolved.Headers["X-Team"])
	assert.Equal(t, "configured-agent", resolved.Headers[constants.HeaderUserAgent])

	_, err = uuid.Parse(resolved.Headers[constants.HeaderRequestID])
	require.NoError(t, err)

	again, err := formatter.Format(context.Background(), publicTestEndpoint(), nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, resolved.Headers[constants.HeaderRequestID], again.Headers[constants.HeaderRequestID])

	withID, err := formatter.Format(context.Background(), publicTestEndpoint(), nil, lark.NewRequestOptions(
		lark.WithRequestID("req-1"),
		lark.WithHeaders(map[string]string{"X-Team": "override"}),
	))
	require.NoError(t, err)
	assert.Equal(t, "req-1", withID.Headers[constants.HeaderRequestID])
	assert.Equal(t, "override", withID.Headers["X-Team"])

	plain := NewDefaultFormatter(nil, "", nil)

	resolved, err = plain.Format(context.Background(), publicTestEndpoint(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultUserAgent, resolved.Headers[constants.HeaderUserAgent])
}

func TestDefaultFormatter_CopiesPayload(t *testing.T) {
	t.Parallel()

	payload := &lark.Payload{
		Data:   &lark.GroupSearch{GroupName: "Eng"},
		Params: lark.Params{"employee_type": "employee_id"},
		Path:   map[string]string{"group_id": "g1"},
	}

	resolved, err := NewDefaultFormatter(nil, "", nil).Format(context.Background(), publicTestEndpoint(), payload, nil)
	require.NoError(t, err)

	resolved.Params["page_token"] = "T1"
	resolved.Path["group_id"] = "g2"

	assert.Equal(t, lark.Params{"employee_type": "employee_id"}, payload.Params)
	assert.Equal(t, map[string]string{"group_id": "g1"}, payload.Path)
	assert.Same(t, payload.Data, resolved.Data)
}

func publicTestEndpoint() *Endpoint {
	return &Endpoint{Method: http.MethodPost, Path: "/open-apis/public"}
}
