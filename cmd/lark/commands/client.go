package commands

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
	"github.com/fivetwenty-io/lark-client/pkg/larkclient"
)

// CreateClient builds a client from the effective configuration.
func CreateClient(ctx context.Context) (lark.Client, error) {
	config := loadConfig()

	if config.AppID == "" {
		return nil, constants.ErrNoAppConfigured
	}

	if config.AppSecret == "" {
		return nil, constants.ErrNoSecretConfigured
	}

	logLevel := "warn"
	if viper.GetBool("verbose") {
		logLevel = "debug"
	}

	client, err := larkclient.New(ctx, &lark.Config{
		AppID:           config.AppID,
		AppSecret:       config.AppSecret,
		AppType:         lark.AppType(config.AppType),
		UserAccessToken: config.UserAccessToken,
		Domain:          config.Domain,
		LogLevel:        logLevel,
		Debug:           viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// tenantOptions adds the configured tenant key, needed by marketplace apps.
func tenantOptions() []lark.RequestOption {
	tenantKey := viper.GetString("tenant_key")
	if tenantKey == "" {
		return nil
	}

	return []lark.RequestOption{lark.WithTenantKey(tenantKey)}
}
