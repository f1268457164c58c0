package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	larkhttp "github.com/fivetwenty-io/lark-client/internal/http"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

const testDomain = "https://open.example.com"

var errTestTransport = errors.New("connection reset by peer")

// fakeTransport records requests and replays scripted responses. Requests beyond the
// script get an empty success envelope.
type fakeTransport struct {
	mu        sync.Mutex
	requests  []*larkhttp.Request
	responses []fakeResponse
}

type fakeResponse struct {
	resp *larkhttp.Response
	err  error
}

func (f *fakeTransport) Do(_ context.Context, req *larkhttp.Request) (*larkhttp.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)

	i := len(f.requests) - 1
	if i >= len(f.responses) {
		return jsonResponse(`{"code":0,"msg":"success","data":{}}`), nil
	}

	return f.responses[i].resp, f.responses[i].err
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeTransport) request(i int) *larkhttp.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[i]
}

func jsonResponse(body string) *larkhttp.Response {
	return &larkhttp.Response{
		StatusCode: http.StatusOK,
		Headers: http.Header{
			"Content-Type": {"application/json; charset=utf-8"},
			"X-Tt-Logid":   {"log-123"},
		},
		Body: []byte(body),
	}
}

func okResponse(body string) fakeResponse {
	return fakeResponse{resp: jsonResponse(body)}
}

func failResponse(err error) fakeResponse {
	return fakeResponse{err: err}
}

// formatterFunc adapts a function to PayloadFormatter.
type formatterFunc func(ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts *lark.RequestOptions) (*ResolvedRequest, error)

func (f formatterFunc) Format(ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts *lark.RequestOptions) (*ResolvedRequest, error) {
	return f(ctx, endpoint, payload, opts)
}

// passthroughFormatter resolves a payload without headers or tokens.
func passthroughFormatter() PayloadFormatter {
	return formatterFunc(func(_ context.Context, _ *Endpoint, payload *lark.Payload, _ *lark.RequestOptions) (*ResolvedRequest, error) {
		if payload == nil {
			payload = &lark.Payload{}
		}

		return &ResolvedRequest{
			Headers: map[string]string{},
			Params:  payload.Params,
			Data:    payload.Data,
			Path:    payload.Path,
		}, nil
	})
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every log call.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func (l *recordingLogger) entriesAt(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry

	for _, entry := range l.entries {
		if entry.level == level {
			out = append(out, entry)
		}
	}

	return out
}

func (l *recordingLogger) errorEntries() []logEntry {
	return l.entriesAt("error")
}

func newTestRequester(transport Transport, logger lark.Logger) *requester {
	return newRequester(testDomain, transport, passthroughFormatter(), logger, nil)
}

// NewTestClient creates a client against baseURL without app credentials; calls must
// carry their own access token.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&lark.Config{
		Domain: baseURL,
		Logger: lark.NopLogger{},
	})
	require.NoError(t, err)

	return client
}

// TestEndpointOperation describes one endpoint method call and the request it must send.
type TestEndpointOperation struct {
	Name         string
	Method       string
	ExpectedPath string
	// ExpectedAuth is the expected Authorization header, "" for none.
	ExpectedAuth string
	Response     string
	Call         func(ctx context.Context, c *Client) error
}

// RunEndpointTests runs each operation against an httptest server that checks method,
// path and Authorization header.
func RunEndpointTests(t *testing.T, tests []TestEndpointOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.ExpectedAuth, request.Header.Get(constants.HeaderAuthorization))
				assert.NotEmpty(t, request.Header.Get(constants.HeaderRequestID))

				response := testCase.Response
				if response == "" {
					response = `{"code":0,"msg":"success","data":{}}`
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.Header().Set(constants.HeaderLogID, "log-"+testCase.Name)
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write([]byte(response))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			require.NoError(t, testCase.Call(context.Background(), client))
		})
	}
}

// envelopeErr turns a call result into a single error for RunEndpointTests.
func envelopeErr[T any](env *lark.Envelope[T], err error) error {
	if err != nil {
		return err
	}

	return env.Err()
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}
