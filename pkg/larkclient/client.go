package larkclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/lark-client/internal/client"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// New creates a new open platform client.
func New(ctx context.Context, config *lark.Config) (lark.Client, error) {
	if config == nil {
		return nil, lark.ErrConfigRequired
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	// The caller's config is left untouched.
	cfg := *config
	cfg.Domain = NormalizeDomain(cfg.Domain)

	if (cfg.AppID == "") != (cfg.AppSecret == "") {
		return nil, fmt.Errorf("failed to create new client: %w", lark.ErrAppCredentialsRequired)
	}

	larkClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return larkClient, nil
}

// NewWithCredentials creates a client for a self-built app.
func NewWithCredentials(ctx context.Context, domain, appID, appSecret string) (lark.Client, error) {
	return New(ctx, &lark.Config{
		Domain:    domain,
		AppID:     appID,
		AppSecret: appSecret,
	})
}

// NewMarketplace creates a client for a marketplace app. A non-empty appTicket is
// stored right away so the first token request does not have to wait for a push.
func NewMarketplace(ctx context.Context, config *lark.Config, appTicket string) (lark.Client, error) {
	if config == nil {
		return nil, lark.ErrConfigRequired
	}

	cfg := *config
	cfg.AppType = lark.AppTypeMarketplace

	larkClient, err := New(ctx, &cfg)
	if err != nil {
		return nil, err
	}

	if appTicket != "" {
		err = larkClient.SetAppTicket(ctx, appTicket)
		if err != nil {
			return nil, fmt.Errorf("failed to store app ticket: %w", err)
		}
	}

	return larkClient, nil
}

// NewWithCache creates a client whose tokens and app tickets live in the cache
// described by cacheConfig, for example a Redis or NATS KV store shared between
// replicas.
func NewWithCache(ctx context.Context, config *lark.Config, cacheConfig *lark.CacheConfig) (lark.Client, error) {
	if config == nil {
		return nil, lark.ErrConfigRequired
	}

	cache, err := lark.NewCacheFromConfig(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	cfg := *config
	cfg.Cache = cache

	return New(ctx, &cfg)
}

// NormalizeDomain resolves the "feishu" and "lark" shorthands, adds an https scheme
// when none is given and trims a trailing slash. An empty domain stays empty.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)

	switch strings.ToLower(domain) {
	case "":
		return ""
	case "feishu":
		return lark.DomainFeishu
	case "lark", "larksuite":
		return lark.DomainLark
	}

	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}

	return strings.TrimSuffix(domain, "/")
}
