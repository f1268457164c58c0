package lark

// Params holds query parameters. Slice values are sent as repeated keys (k=a&k=b).
type Params map[string]interface{}

// Payload is the per-call input of an endpoint method. All parts are optional.
type Payload struct {
	// Data is the request body, encoded as JSON (or multipart for *FormData).
	Data interface{}
	// Params are the query parameters.
	Params Params
	// Path holds the values of the endpoint's ":name" placeholders.
	Path map[string]string
}

// AccessTokenType identifies which access token an endpoint accepts.
type AccessTokenType string

const (
	AccessTokenTypeApp    AccessTokenType = "app_access_token"
	AccessTokenTypeTenant AccessTokenType = "tenant_access_token"
	AccessTokenTypeUser   AccessTokenType = "user_access_token"
)

// RequestOptions are per-call overrides.
type RequestOptions struct {
	// Headers override every other header, including Authorization.
	Headers map[string]string
	// UserAccessToken makes the call on behalf of a user.
	UserAccessToken string
	// TenantAccessToken and AppAccessToken skip token acquisition.
	TenantAccessToken string
	AppAccessToken    string
	// TenantKey selects the tenant for marketplace apps.
	TenantKey string
	// RequestID is sent as X-Request-Id; a random one is generated when empty.
	RequestID string
}

// RequestOption configures RequestOptions.
type RequestOption func(*RequestOptions)

// NewRequestOptions applies opts to an empty RequestOptions.
func NewRequestOptions(opts ...RequestOption) *RequestOptions {
	options := &RequestOptions{}

	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	return options
}

// WithHeaders adds per-call headers.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(headers))
		}

		for key, value := range headers {
			o.Headers[key] = value
		}
	}
}

// WithUserAccessToken sets the user access token for the call.
func WithUserAccessToken(token string) RequestOption {
	return func(o *RequestOptions) { o.UserAccessToken = token }
}

// WithTenantAccessToken sets the tenant access token for the call.
func WithTenantAccessToken(token string) RequestOption {
	return func(o *RequestOptions) { o.TenantAccessToken = token }
}

// WithAppAccessToken sets the app access token for the call.
func WithAppAccessToken(token string) RequestOption {
	return func(o *RequestOptions) { o.AppAccessToken = token }
}

// WithTenantKey selects the tenant of a marketplace app.
func WithTenantKey(tenantKey string) RequestOption {
	return func(o *RequestOptions) { o.TenantKey = tenantKey }
}

// WithRequestID sets the X-Request-Id header.
func WithRequestID(requestID string) RequestOption {
	return func(o *RequestOptions) { o.RequestID = requestID }
}

// Envelope is the {code, msg, data} wrapper every JSON endpoint responds with.
type Envelope[T any] struct {
	Code int    `json:"code"           yaml:"code"`
	Msg  string `json:"msg"            yaml:"msg"`
	Data *T     `json:"data,omitempty" yaml:"data,omitempty"`

	// LogID is the platform's trace id taken from the X-Tt-Logid response header.
	LogID string `json:"-" yaml:"-"`
}

// Success reports whether the platform accepted the call.
func (e *Envelope[T]) Success() bool {
	return e.Code == 0
}

// Err returns an *APIError for a non-zero code, nil otherwise.
func (e *Envelope[T]) Err() error {
	if e.Success() {
		return nil
	}

	return &APIError{Code: e.Code, Msg: e.Msg, LogID: e.LogID}
}

// Empty is the data type of endpoints that return no data.
type Empty struct{}
