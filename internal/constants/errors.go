package constants

import "errors"

// Configuration errors.
var (
	ErrNoAppConfigured    = errors.New("no app configured, use 'lark config set app_id <id>' first")
	ErrNoSecretConfigured = errors.New("no app secret configured, use 'lark config set app_secret'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptySecret        = errors.New("app secret cannot be empty")
	ErrNoUserToken        = errors.New("no user access token configured, use 'lark config set user_access_token <token>'")
)

// Output errors.
var (
	ErrUnsupportedOutput = errors.New("unsupported output format")
	ErrOutputPathMissing = errors.New("--out flag is required")
)

// Command errors.
var (
	ErrInvalidConfigValue      = errors.New("invalid configuration value")
	ErrValueRequired           = errors.New("a value is required for this key")
	ErrTokenManagerUnavailable = errors.New("client does not expose token managers")
)
