package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// Client sends requests to the open platform. Each Do issues exactly one HTTP
// exchange unless retries were enabled with WithRetryConfig.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	logger       lark.Logger
	debug        bool
	userAgent    string
	interceptors *lark.InterceptorChain
	tracing      bool
}

// Request is a single API request.
type Request struct {
	Method string
	// Path is appended to the base URL unless it is already absolute.
	Path string
	// Route is the unfilled path template, used by interceptors and metrics.
	Route   string
	Query   url.Values
	Headers map[string]string
	// Body is JSON encoded unless it is a *lark.FormData (multipart) or []byte.
	Body interface{}
	// Stream leaves a successful response body open in Response.Stream.
	Stream bool
}

// Response is a completed API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	// Stream is set instead of Body for successful streamed requests.
	Stream io.ReadCloser
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger lark.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the default User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries of 5xx, 429 and connection errors.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout bounds a single HTTP exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			copied := *client
			c.httpClient.HTTPClient = &copied
		}
	}
}

// WithTracing wraps the transport with OpenTelemetry instrumentation.
func WithTracing(enabled bool) Option {
	return func(c *Client) {
		c.tracing = enabled
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *lark.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		logger:     lark.NopLogger{},
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Applied last so it wraps a transport installed by WithHTTPClient.
	if client.tracing {
		base := client.httpClient.HTTPClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}

		client.httpClient.HTTPClient.Transport = otelhttp.NewTransport(base)
	}

	return client
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req. For non-2xx statuses it returns both the response and an
// *lark.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.resolveURL(req)

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	intercepted := &lark.Request{
		Method:  req.Method,
		Route:   req.Route,
		URL:     fullURL,
		Headers: make(http.Header),
	}

	intercepted.Headers.Set(constants.HeaderUserAgent, c.userAgent)

	if contentType != "" {
		intercepted.Headers.Set(constants.HeaderContentType, contentType)
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq.Header = intercepted.Headers

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &lark.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	success := httpResp.StatusCode >= http.StatusOK && httpResp.StatusCode < http.StatusMultipleChoices

	if req.Stream && success {
		resp.Stream = httpResp.Body
	} else {
		resp.Body, err = io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()

		if err != nil {
			_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &lark.Response{
				StatusCode: resp.StatusCode,
				Headers:    resp.Headers,
				Error:      err,
			})

			return nil, fmt.Errorf("reading response body: %w", err)
		}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
			"log_id": resp.Headers.Get(constants.HeaderLogID),
		})
	}

	var respErr error

	if !success {
		apiErr := lark.ParseAPIError(resp.StatusCode, resp.Body)
		apiErr.Method = req.Method
		apiErr.URL = fullURL

		if apiErr.LogID == "" {
			apiErr.LogID = resp.Headers.Get(constants.HeaderLogID)
		}

		respErr = apiErr
	}

	_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &lark.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Error:      respErr,
	})

	if respErr != nil {
		return resp, respErr
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) resolveURL(req *Request) string {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + fullURL
	}

	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

func encodeBody(body interface{}) (interface{}, string, error) {
	switch typed := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return typed, "", nil
	case *lark.FormData:
		return encodeMultipart(typed)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		return data, "application/json; charset=utf-8", nil
	}
}

func encodeMultipart(form *lark.FormData) (interface{}, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		err := writer.WriteField(name, value)
		if err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	for name, file := range form.Files {
		part, err := writer.CreateFormFile(name, file.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("creating form file %s: %w", name, err)
		}

		_, err = io.Copy(part, file.Reader)
		if err != nil {
			return nil, "", fmt.Errorf("writing form file %s: %w", name, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
