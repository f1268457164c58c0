package lark_test

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &lark.APIError{StatusCode: 400, Code: 99991663, Msg: "Invalid access token", LogID: "log-1"}
	assert.Equal(t, "Invalid access token (code: 99991663, status: 400, log_id: log-1)", err.Error())

	err = &lark.APIError{Code: 1220001, Msg: "group not found"}
	assert.Equal(t, "group not found (code: 1220001, log_id: )", err.Error())
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected *lark.APIError
	}{
		{
			name:     "platform error body",
			status:   400,
			body:     `{"code":99991663,"msg":"Invalid access token","error":{"log_id":"log-9"}}`,
			expected: &lark.APIError{StatusCode: 400, Code: 99991663, Msg: "Invalid access token", LogID: "log-9"},
		},
		{
			name:     "no error object",
			status:   429,
			body:     `{"code":99991400,"msg":"too many requests"}`,
			expected: &lark.APIError{StatusCode: 429, Code: 99991400, Msg: "too many requests"},
		},
		{
			name:     "non-JSON body",
			status:   502,
			body:     "Bad Gateway",
			expected: &lark.APIError{StatusCode: 502, Msg: "Bad Gateway"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, lark.ParseAPIError(testCase.status, []byte(testCase.body)))
		})
	}
}

func TestIsTokenInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "invalid token", err: &lark.APIError{Code: lark.ErrorCodeAccessTokenInvalid}, expected: true},
		{name: "wrapped expired user token", err: fmt.Errorf("calling: %w", &lark.APIError{Code: lark.ErrorCodeUserTokenExpired}), expected: true},
		{name: "other api error", err: &lark.APIError{Code: 1220001}, expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, lark.IsTokenInvalid(testCase.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lark.FormatError(nil))
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()

		fields := lark.FormatError(fmt.Errorf("wrapped: %w", &lark.APIError{
			StatusCode: 400, Code: 1, Msg: "bad", LogID: "log", Method: "GET", URL: "https://open.feishu.cn/x",
		}))

		assert.Equal(t, 400, fields["status_code"])
		assert.Equal(t, 1, fields["code"])
		assert.Equal(t, "bad", fields["msg"])
		assert.Equal(t, "log", fields["log_id"])
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "https://open.feishu.cn/x", fields["url"])
	})

	t.Run("url error", func(t *testing.T) {
		t.Parallel()

		fields := lark.FormatError(&url.Error{Op: "Post", URL: "https://open.feishu.cn/y", Err: errors.New("refused")})

		assert.Equal(t, "Post", fields["method"])
		assert.Equal(t, "https://open.feishu.cn/y", fields["url"])
		assert.Contains(t, fields["error"], "refused")
	})
}
