package client

import (
	"context"
	"strings"
	"time"

	"github.com/fivetwenty-io/lark-client/internal/auth"
	"github.com/fivetwenty-io/lark-client/internal/constants"
	larkhttp "github.com/fivetwenty-io/lark-client/internal/http"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// Client implements the lark.Client interface. Every resource client shares one
// requester; there is no hierarchy between them.
type Client struct {
	domain     string
	httpClient *larkhttp.Client
	tokens     *auth.TokenSource
	userTokens *auth.UserTokenManager
	logger     lark.Logger
	config     *lark.Config

	attendance       *AttendanceClient
	auth             *AuthClient
	authen           *AuthenClient
	personalSettings *PersonalSettingsClient
	report           *ReportClient
}

// Option customizes a Client built by New.
type Option func(*options)

type options struct {
	transport Transport
	formatter PayloadFormatter
}

// WithTransport sends requests through transport instead of the HTTP client built
// from the configuration.
func WithTransport(transport Transport) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// WithFormatter replaces the default payload formatter.
func WithFormatter(formatter PayloadFormatter) Option {
	return func(o *options) {
		o.formatter = formatter
	}
}

// New creates a client from config.
func New(config *lark.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, lark.ErrConfigRequired
	}

	var o options

	for _, opt := range opts {
		opt(&o)
	}

	domain := strings.TrimSuffix(config.Domain, "/")
	if domain == "" {
		domain = lark.DomainFeishu
	}

	logger := config.Logger
	if logger == nil {
		logger = lark.NewDefaultLogger(config.LogLevel)
	}

	httpClient := larkhttp.NewClient(domain, createHTTPClientOptions(config, logger)...)

	client := &Client{
		domain:     domain,
		httpClient: httpClient,
		logger:     logger,
		config:     config,
	}

	transport := o.transport
	if transport == nil {
		transport = httpClient
	}

	if config.AppID != "" && config.AppSecret != "" {
		client.tokens = auth.NewTokenSource(&auth.Config{
			AppID:        config.AppID,
			AppSecret:    config.AppSecret,
			AppType:      config.AppType,
			Cache:        config.Cache,
			DisableCache: config.DisableTokenCache,
			Logger:       logger,
		}, transport)
	}

	if config.UserAccessToken != "" {
		client.userTokens = auth.NewUserTokenManager(config.UserAccessToken, time.Time{})
	}

	formatter := o.formatter
	if formatter == nil {
		var provider TokenProvider
		if client.tokens != nil {
			provider = client.tokens
		}

		defaultFormatter := NewDefaultFormatter(provider, config.UserAgent, config.Headers)
		if client.userTokens != nil {
			defaultFormatter.WithUserTokens(client.userTokens)
		}

		formatter = defaultFormatter
	}

	r := newRequester(domain, transport, formatter, logger, config.ErrorFormatter)

	client.attendance = newAttendanceClient(r)
	client.auth = newAuthClient(r)
	client.authen = newAuthenClient(r)
	client.personalSettings = newPersonalSettingsClient(r)
	client.report = newReportClient(r)

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *lark.Config, logger lark.Logger) []larkhttp.Option {
	httpOpts := []larkhttp.Option{
		larkhttp.WithLogger(logger),
		larkhttp.WithDebug(config.Debug),
		larkhttp.WithHTTPClient(config.HTTPClient),
		larkhttp.WithTracing(config.EnableTracing),
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, larkhttp.WithUserAgent(config.UserAgent))
	}

	timeout := config.HTTPTimeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	// WithTimeout must follow WithHTTPClient, which replaces the http.Client.
	httpOpts = append(httpOpts, larkhttp.WithTimeout(timeout))

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, larkhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil || config.Metrics != nil {
		chain := config.Interceptors.Clone()
		if config.Metrics != nil {
			chain = chain.WithMetrics(config.Metrics)
		}

		httpOpts = append(httpOpts, larkhttp.WithInterceptors(chain))
	}

	return httpOpts
}

// Domain returns the base URL requests are sent to.
func (c *Client) Domain() string {
	return c.domain
}

// Logger returns the logger the client reports failures to.
func (c *Client) Logger() lark.Logger {
	return c.logger
}

// TokenManager returns a manager for the app's tenant or app access token, or for the
// configured user access token. It returns nil when the client has no credentials for
// tokenType.
func (c *Client) TokenManager(tokenType lark.AccessTokenType, tenantKey string) auth.TokenManager {
	if tokenType == lark.AccessTokenTypeUser {
		if c.userTokens == nil {
			return nil
		}

		return c.userTokens
	}

	if c.tokens == nil {
		return nil
	}

	return auth.NewAppTokenManager(c.tokens, tokenType, tenantKey)
}

// SetAppTicket implements lark.Client.SetAppTicket.
func (c *Client) SetAppTicket(ctx context.Context, ticket string) error {
	if c.tokens == nil {
		return lark.ErrAppCredentialsRequired
	}

	return c.tokens.SetAppTicket(ctx, ticket)
}

// Attendance implements lark.Client.Attendance.
func (c *Client) Attendance() lark.AttendanceClient {
	return c.attendance
}

// Auth implements lark.Client.Auth.
func (c *Client) Auth() lark.AuthClient {
	return c.auth
}

// Authen implements lark.Client.Authen.
func (c *Client) Authen() lark.AuthenClient {
	return c.authen
}

// PersonalSettings implements lark.Client.PersonalSettings.
func (c *Client) PersonalSettings() lark.PersonalSettingsClient {
	return c.personalSettings
}

// Report implements lark.Client.Report.
func (c *Client) Report() lark.ReportClient {
	return c.report
}

var _ lark.Client = (*Client)(nil)
