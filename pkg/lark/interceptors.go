package lark

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fivetwenty-io/lark-client/internal/constants"
)

// Request represents an HTTP request that can be intercepted.
type Request struct {
	Method string
	// Route is the endpoint path template, e.g. /open-apis/attendance/v1/groups/:group_id.
	Route    string
	URL      string
	Headers  http.Header
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// Clone returns an independent copy of the chain. A nil chain clones to an empty one.
func (c *InterceptorChain) Clone() *InterceptorChain {
	if c == nil {
		return NewInterceptorChain()
	}

	return &InterceptorChain{
		requestInterceptors:  append([]RequestInterceptor(nil), c.requestInterceptors...),
		responseInterceptors: append([]ResponseInterceptor(nil), c.responseInterceptors...),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing requests at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"route":  req.Route,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"route":       req.Route,
			"status_code": resp.StatusCode,
		}

		if logID := resp.Headers.Get(constants.HeaderLogID); logID != "" {
			fields["log_id"] = logID
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

const metadataStartTime = "start_time"

// MetricsRequestInterceptor records the request start time.
func MetricsRequestInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor observes the request on metrics. Pair it with
// MetricsRequestInterceptor for latency.
func MetricsResponseInterceptor(metrics *PrometheusMetrics) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		var elapsed time.Duration

		if startTime, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			elapsed = time.Since(startTime)
		}

		metrics.Observe(req.Method, req.Route, resp.StatusCode, elapsed)

		return nil
	}
}

// WithMetrics returns a chain that records every request on metrics.
func (c *InterceptorChain) WithMetrics(metrics *PrometheusMetrics) *InterceptorChain {
	c.AddRequestInterceptor(MetricsRequestInterceptor())
	c.AddResponseInterceptor(MetricsResponseInterceptor(metrics))

	return c
}
