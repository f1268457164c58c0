package lark

import (
	"context"
	"net/http"
	"time"

	"github.com/fivetwenty-io/lark-client/internal/constants"
)

// Base URLs of the open platform.
const (
	DomainFeishu = constants.DomainFeishu
	DomainLark   = constants.DomainLark
)

// AppType distinguishes self-built apps from marketplace apps. The two use different
// grant flows when acquiring app and tenant access tokens.
type AppType string

const (
	// AppTypeSelfBuilt apps obtain tokens directly from their credentials.
	AppTypeSelfBuilt AppType = "self_built"

	// AppTypeMarketplace apps need an app ticket and a tenant key to obtain tenant tokens.
	AppTypeMarketplace AppType = "marketplace"
)

// Client provides access to every resource group of the open platform.
type Client interface {
	Attendance() AttendanceClient
	Auth() AuthClient
	Authen() AuthenClient
	PersonalSettings() PersonalSettingsClient
	Report() ReportClient

	// SetAppTicket stores an app ticket pushed by the platform (marketplace apps only).
	SetAppTicket(ctx context.Context, ticket string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a lark.Client.
//
// # Authentication
//
// AppID and AppSecret are used to acquire app and tenant access tokens on demand. Tokens
// are cached in Cache (an in-memory cache when nil) until shortly before they expire.
// Per-call tokens passed through RequestOptions always take precedence, and endpoints
// that require a user access token must receive one through WithUserAccessToken.
//
// # Timeouts and retries
//
// Every endpoint method issues exactly one HTTP request. RetryMax enables transport-level
// retries for callers that explicitly want them; it is zero by default.
type Config struct {
	// AppID and AppSecret identify the calling app.
	AppID     string
	AppSecret string
	// AppType selects the token grant flow. Defaults to AppTypeSelfBuilt.
	AppType AppType
	// UserAccessToken is sent to endpoints that accept user access tokens when a call
	// carries no access token of its own. Replace it through
	// TokenManager(AccessTokenTypeUser, "").SetToken after a refresh.
	UserAccessToken string

	// Domain is the platform base URL. Defaults to DomainFeishu. New normalizes it by
	// trimming a trailing slash and adding "https://" when no scheme is present.
	Domain string

	// HTTPTimeout bounds a single HTTP exchange. Defaults to 30s.
	HTTPTimeout time.Duration
	// RetryMax enables transport retries for 5xx, 429 and connection errors when > 0.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// HTTPClient replaces the underlying *http.Client (its Transport is reused).
	HTTPClient *http.Client
	// EnableTracing wraps the HTTP transport with OpenTelemetry instrumentation.
	EnableTracing bool

	// Logger receives request failures and, with Debug, request/response traces.
	// When nil a logrus logger writing to stderr at LogLevel is used.
	Logger Logger
	// LogLevel is the level of the default logger ("debug", "info", "warn", "error").
	LogLevel string
	// Debug enables verbose HTTP request/response logging.
	Debug bool
	// ErrorFormatter turns transport failures into log fields. Defaults to FormatError.
	ErrorFormatter ErrorFormatter

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Headers are added to every request before per-call headers.
	Headers map[string]string

	// Cache stores access tokens and app tickets. Defaults to a MemoryCache.
	Cache Cache
	// DisableTokenCache makes the client fetch a fresh token for every call.
	DisableTokenCache bool

	// Interceptors run around every HTTP exchange.
	Interceptors *InterceptorChain
	// Metrics records request counts and latencies when set.
	Metrics *PrometheusMetrics
}
