package lark

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// APIError represents an error reported by the platform, either through a non-2xx HTTP
// status or through a non-zero code in the response envelope.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	LogID      string `json:"-"`
	Method     string `json:"-"`
	URL        string `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (code: %d, status: %d, log_id: %s)", e.Msg, e.Code, e.StatusCode, e.LogID)
	}

	return fmt.Sprintf("%s (code: %d, log_id: %s)", e.Msg, e.Code, e.LogID)
}

// Common error codes.
const (
	ErrorCodeAccessTokenMissing   = 99991661
	ErrorCodeAccessTokenInvalid   = 99991663
	ErrorCodeAppTicketInvalid     = 10012
	ErrorCodeUserTokenInvalid     = 99991668
	ErrorCodeUserTokenExpired     = 99991677
	ErrorCodeAppAccessTokenFailed = 99991664
	ErrorCodeTooManyRequests      = 99991400
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrAppCredentialsRequired   = errors.New("app id and app secret are required to acquire access tokens")
	ErrUserAccessTokenRequired  = errors.New("endpoint requires a user access token")
	ErrUserAccessTokenExpired   = errors.New("user access token expired")
	ErrTenantKeyRequired        = errors.New("tenant key is required for marketplace apps")
	ErrAppTicketNotFound        = errors.New("app ticket not found, a resend has been requested")
	ErrMissingPathParam         = errors.New("missing path parameter")
	ErrStreamConsumed           = errors.New("stream already consumed")
	ErrStaticTokenCannotRefresh = errors.New("user access token cannot be refreshed by the client")
	ErrCacheMiss                = errors.New("key not found in cache")
	ErrCacheDisabled            = errors.New("cache disabled")
	ErrUnsupportedCacheType     = errors.New("unsupported cache type")
	ErrNATSConfigRequired       = errors.New("NATS configuration required for NATS cache")
	ErrRedisConfigRequired      = errors.New("redis configuration required for redis cache")
	ErrKeyNotFoundInAnyCache    = errors.New("key not found in any cache")
	ErrInvalidPageData          = errors.New("page data is not a JSON object")
	ErrEmptyTokenResponse       = errors.New("token response did not contain a token")
)

// IsAPIError reports whether err carries an *APIError.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsTokenInvalid reports whether err signals a missing, invalid or expired access token.
func IsTokenInvalid(err error) bool {
	apiErr := &APIError{}
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case ErrorCodeAccessTokenMissing, ErrorCodeAccessTokenInvalid, ErrorCodeUserTokenInvalid, ErrorCodeUserTokenExpired:
		return true
	default:
		return false
	}
}

// ParseAPIError builds an APIError from an error response body. Bodies that are not
// JSON still produce an error carrying the status code and the raw body as message.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var body struct {
		Code  int    `json:"code"`
		Msg   string `json:"msg"`
		Error *struct {
			LogID string `json:"log_id"`
		} `json:"error"`
	}

	err := json.Unmarshal(data, &body)
	if err != nil {
		apiErr.Msg = string(data)

		return apiErr
	}

	apiErr.Code = body.Code
	apiErr.Msg = body.Msg

	if body.Error != nil {
		apiErr.LogID = body.Error.LogID
	}

	return apiErr
}

// ErrorFormatter turns an error into structured log fields.
type ErrorFormatter func(err error) map[string]interface{}

// FormatError is the default ErrorFormatter.
func FormatError(err error) map[string]interface{} {
	fields := map[string]interface{}{}
	if err == nil {
		return fields
	}

	fields["error"] = err.Error()

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		fields["code"] = apiErr.Code
		fields["msg"] = apiErr.Msg

		if apiErr.StatusCode != 0 {
			fields["status_code"] = apiErr.StatusCode
		}

		if apiErr.LogID != "" {
			fields["log_id"] = apiErr.LogID
		}

		if apiErr.Method != "" {
			fields["method"] = apiErr.Method
		}

		if apiErr.URL != "" {
			fields["url"] = apiErr.URL
		}

		return fields
	}

	urlErr := &url.Error{}
	if errors.As(err, &urlErr) {
		fields["method"] = urlErr.Op
		fields["url"] = urlErr.URL
	}

	return fields
}
