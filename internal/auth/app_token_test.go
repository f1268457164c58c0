package auth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/internal/auth"
	larkhttp "github.com/fivetwenty-io/lark-client/internal/http"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

type tokenServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func newTokenServer(t *testing.T, handler func(w http.ResponseWriter, path string, body map[string]string)) *tokenServer {
	t.Helper()

	srv := &tokenServer{calls: map[string]int{}}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)

		srv.mu.Lock()
		srv.calls[r.URL.Path]++
		srv.mu.Unlock()

		handler(w, r.URL.Path, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func (s *tokenServer) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[path]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTokenSource_SelfBuilt(t *testing.T) {
	t.Parallel()

	t.Run("acquires and caches the tenant token", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			assert.Equal(t, "/open-apis/auth/v3/tenant_access_token/internal", path)
			assert.Equal(t, "cli_app", body["app_id"])
			assert.Equal(t, "secret", body["app_secret"])
			writeJSON(w, map[string]interface{}{"code": 0, "msg": "ok", "tenant_access_token": "t-123", "expire": 7200})
		})

		cache := lark.NewMemoryCache(10)
		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "secret", Cache: cache}, larkhttp.NewClient(server.URL))

		for range 3 {
			token, err := source.TenantAccessToken(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, "t-123", token)
		}

		assert.Equal(t, 1, server.count("/open-apis/auth/v3/tenant_access_token/internal"))

		entry, err := cache.Get(context.Background(), "tenant_access_token:cli_app")
		require.NoError(t, err)
		assert.Equal(t, "t-123", string(entry.Data))
		assert.WithinDuration(t, time.Now().Add(2*time.Hour-3*time.Minute), entry.ExpiresAt, 5*time.Second)
	})

	t.Run("acquires the app token", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			assert.Equal(t, "/open-apis/auth/v3/app_access_token/internal", path)
			writeJSON(w, map[string]interface{}{"code": 0, "app_access_token": "a-123", "expire": 7200})
		})

		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "secret"}, larkhttp.NewClient(server.URL))

		token, err := source.AppAccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a-123", token)
	})

	t.Run("disabled cache fetches every time", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			writeJSON(w, map[string]interface{}{"code": 0, "tenant_access_token": "t-1", "expire": 7200})
		})

		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "secret", DisableCache: true}, larkhttp.NewClient(server.URL))

		for range 2 {
			_, err := source.TenantAccessToken(context.Background(), "")
			require.NoError(t, err)
		}

		assert.Equal(t, 2, server.count("/open-apis/auth/v3/tenant_access_token/internal"))
	})

	t.Run("non-zero code is an error", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			writeJSON(w, map[string]interface{}{"code": 10014, "msg": "app secret invalid"})
		})

		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "wrong"}, larkhttp.NewClient(server.URL))

		_, err := source.TenantAccessToken(context.Background(), "")
		require.Error(t, err)

		apiErr := &lark.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 10014, apiErr.Code)
	})

	t.Run("empty token is an error", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			writeJSON(w, map[string]interface{}{"code": 0, "expire": 7200})
		})

		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "secret"}, larkhttp.NewClient(server.URL))

		_, err := source.TenantAccessToken(context.Background(), "")
		require.ErrorIs(t, err, lark.ErrEmptyTokenResponse)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		source := auth.NewTokenSource(&auth.Config{AppID: "cli_app"}, larkhttp.NewClient("http://127.0.0.1:0"))

		_, err := source.AppAccessToken(context.Background())
		require.ErrorIs(t, err, lark.ErrAppCredentialsRequired)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTokenSource_Marketplace(t *testing.T) {
	t.Parallel()

	t.Run("requires a tenant key", func(t *testing.T) {
		t.Parallel()

		source := auth.NewTokenSource(&auth.Config{
			AppID: "cli_app", AppSecret: "secret", AppType: lark.AppTypeMarketplace,
		}, larkhttp.NewClient("http://127.0.0.1:0"))

		_, err := source.TenantAccessToken(context.Background(), "")
		require.ErrorIs(t, err, lark.ErrTenantKeyRequired)
	})

	t.Run("missing ticket triggers a resend", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			assert.Equal(t, "/open-apis/auth/v3/app_ticket/resend", path)
			writeJSON(w, map[string]interface{}{"code": 0, "msg": "ok"})
		})

		source := auth.NewTokenSource(&auth.Config{
			AppID: "cli_app", AppSecret: "secret", AppType: lark.AppTypeMarketplace,
		}, larkhttp.NewClient(server.URL))

		_, err := source.TenantAccessToken(context.Background(), "tenant-1")
		require.ErrorIs(t, err, lark.ErrAppTicketNotFound)
		assert.Equal(t, 1, server.count("/open-apis/auth/v3/app_ticket/resend"))
	})

	t.Run("uses the pushed ticket", func(t *testing.T) {
		t.Parallel()

		server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
			switch path {
			case "/open-apis/auth/v3/app_access_token":
				assert.Equal(t, "ticket-1", body["app_ticket"])
				writeJSON(w, map[string]interface{}{"code": 0, "app_access_token": "a-1", "expire": 7200})
			case "/open-apis/auth/v3/tenant_access_token":
				assert.Equal(t, "a-1", body["app_access_token"])
				assert.Equal(t, "tenant-1", body["tenant_key"])
				writeJSON(w, map[string]interface{}{"code": 0, "tenant_access_token": "t-1", "expire": 7200})
			default:
				t.Errorf("unexpected path %s", path)
			}
		})

		cache := lark.NewMemoryCache(10)
		source := auth.NewTokenSource(&auth.Config{
			AppID: "cli_app", AppSecret: "secret", AppType: lark.AppTypeMarketplace, Cache: cache,
		}, larkhttp.NewClient(server.URL))

		require.NoError(t, source.SetAppTicket(context.Background(), "ticket-1"))

		token, err := source.TenantAccessToken(context.Background(), "tenant-1")
		require.NoError(t, err)
		assert.Equal(t, "t-1", token)
		assert.True(t, cache.Has(context.Background(), "tenant_access_token:cli_app:tenant-1"))
		assert.True(t, cache.Has(context.Background(), "app_access_token:cli_app"))
	})
}

func TestAppTokenManager(t *testing.T) {
	t.Parallel()

	var issued atomic.Int32

	server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
		n := issued.Add(1)
		writeJSON(w, map[string]interface{}{"code": 0, "tenant_access_token": fmt.Sprintf("t-%d", n), "expire": 7200})
	})

	source := auth.NewTokenSource(&auth.Config{AppID: "cli_app", AppSecret: "secret"}, larkhttp.NewClient(server.URL))
	manager := auth.NewAppTokenManager(source, lark.AccessTokenTypeTenant, "")

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-1", token)

	require.NoError(t, manager.RefreshToken(context.Background()))

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-2", token)

	manager.SetToken("t-manual", time.Now().Add(time.Hour))

	token, err = manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t-manual", token)
}

func TestAppTokenManager_SetTokenExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		expiresIn    time.Duration
		disableCache bool
		want         string
	}{
		{name: "seeded token served", expiresIn: time.Hour, want: "t-manual"},
		{name: "token inside the expiry delta is not cached", expiresIn: time.Minute, want: "t-1"},
		{name: "expired token is not cached", expiresIn: -time.Minute, want: "t-1"},
		{name: "disabled cache ignores seeded token", expiresIn: time.Hour, disableCache: true, want: "t-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var issued atomic.Int32

			server := newTokenServer(t, func(w http.ResponseWriter, path string, body map[string]string) {
				n := issued.Add(1)
				writeJSON(w, map[string]interface{}{"code": 0, "tenant_access_token": fmt.Sprintf("t-%d", n), "expire": 7200})
			})

			source := auth.NewTokenSource(&auth.Config{
				AppID:        "cli_app",
				AppSecret:    "secret",
				DisableCache: tt.disableCache,
			}, larkhttp.NewClient(server.URL))
			manager := auth.NewAppTokenManager(source, lark.AccessTokenTypeTenant, "")

			manager.SetToken("t-manual", time.Now().Add(tt.expiresIn))

			token, err := manager.GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestCacheKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "app_access_token:cli_a", auth.AppAccessTokenKey("cli_a"))
	assert.Equal(t, "tenant_access_token:cli_a", auth.TenantAccessTokenKey("cli_a", ""))
	assert.Equal(t, "tenant_access_token:cli_a:t1", auth.TenantAccessTokenKey("cli_a", "t1"))
	assert.Equal(t, "app_ticket:cli_a", auth.AppTicketKey("cli_a"))
}
