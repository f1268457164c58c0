package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for files written by download handles.
	DownloadFilePerm = 0640
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for token acquisition calls.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. The request pipeline never retries on its own; these only apply when a
// caller opts into transport retries through the client configuration.
const (
	// DefaultRetryWaitMin is the minimum wait time between transport retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between transport retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token lifetimes.
const (
	// TokenExpiryDelta is subtracted from a token's server-side lifetime before caching it.
	TokenExpiryDelta = 3 * time.Minute

	// AppTicketTTL is how long a pushed app ticket is kept in the cache.
	AppTicketTTL = 12 * time.Hour

	// DefaultCacheSize is the default number of entries kept by the memory cache.
	DefaultCacheSize = 1000
)

// Open platform domains.
const (
	// DomainFeishu is the base URL of the Feishu open platform.
	DomainFeishu = "https://open.feishu.cn"

	// DomainLark is the base URL of the Lark open platform.
	DomainLark = "https://open.larksuite.com"
)

// Header names.
const (
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-Id"
	HeaderLogID         = "X-Tt-Logid"
	HeaderContentType   = "Content-Type"
	HeaderDisposition   = "Content-Disposition"

	// DefaultUserAgent is sent when the configuration does not override it.
	DefaultUserAgent = "lark-client-go/1.0"
)

// Pagination wire keys.
const (
	// PageTokenKey is the query parameter and response field carrying the cursor.
	PageTokenKey = "page_token"

	// NextPageTokenKey is the alternative response field some endpoints use for the cursor.
	NextPageTokenKey = "next_page_token"

	// HasMoreKey is the response field reporting whether another page exists.
	HasMoreKey = "has_more"

	// PageSizeKey is the query parameter selecting the page size.
	PageSizeKey = "page_size"

	// DefaultPageSize is the page size used by the CLI when none is given.
	DefaultPageSize = 50
)

// Auth API paths.
const (
	APIPathAppAccessToken            = "/open-apis/auth/v3/app_access_token"
	APIPathAppAccessTokenInternal    = "/open-apis/auth/v3/app_access_token/internal"
	APIPathTenantAccessToken         = "/open-apis/auth/v3/tenant_access_token"
	APIPathTenantAccessTokenInternal = "/open-apis/auth/v3/tenant_access_token/internal"
	APIPathAppTicketResend           = "/open-apis/auth/v3/app_ticket/resend"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI configuration.
	ConfigDirName = ".lark"

	// ConfigFileName is the CLI configuration file.
	ConfigFileName = "config.yml"

	// EnvPrefix is the prefix of environment variables read by the CLI, e.g. LARK_APP_ID.
	EnvPrefix = "LARK"

	// YAMLIndent is the indentation of YAML output.
	YAMLIndent = 2
)
