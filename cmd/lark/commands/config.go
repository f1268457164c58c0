package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
	"github.com/fivetwenty-io/lark-client/pkg/larkclient"
)

const (
	appSecretKey       = "app_secret"
	userAccessTokenKey = "user_access_token"
)

// Config represents the CLI configuration.
type Config struct {
	Domain          string `json:"domain,omitempty"            yaml:"domain,omitempty"`
	AppID           string `json:"app_id,omitempty"            yaml:"app_id,omitempty"`
	AppSecret       string `json:"app_secret,omitempty"        yaml:"app_secret,omitempty"`
	AppType         string `json:"app_type,omitempty"          yaml:"app_type,omitempty"`
	TenantKey       string `json:"tenant_key,omitempty"        yaml:"tenant_key,omitempty"`
	UserAccessToken string `json:"user_access_token,omitempty" yaml:"user_access_token,omitempty"`
	Output          string `json:"output,omitempty"            yaml:"output,omitempty"`
}

// configKeys lists the keys accepted by config set and unset.
var configKeys = []string{"domain", "app_id", appSecretKey, "app_type", "tenant_key", userAccessTokenKey, "output"}

// readSecret reads a secret from the terminal without echo. Tests replace it.
var readSecret = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the app credentials, domain and output settings of the CLI",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the app secret masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.AppSecret != "" {
				config.AppSecret = constants.MaskedSecret
			}

			if config.UserAccessToken != "" {
				config.UserAccessToken = constants.MaskedSecret
			}

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Domain", valueOrNA(config.Domain))
				_ = table.Append("App ID", valueOrNA(config.AppID))
				_ = table.Append("App Secret", valueOrNA(config.AppSecret))
				_ = table.Append("App Type", valueOrNA(config.AppType))
				_ = table.Append("Tenant Key", valueOrNA(config.TenantKey))
				_ = table.Append("User Access Token", valueOrNA(config.UserAccessToken))
				_ = table.Append("Output", valueOrNA(config.Output))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys: domain, app_id, app_secret, app_type,
tenant_key, user_access_token, output. When app_secret is given without a value it is read from
the terminal.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string

			switch {
			case len(args) == 2:
				value = args[1]
			case key == appSecretKey:
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "App secret: ")

				secret, err := readSecret()
				if err != nil {
					return fmt.Errorf("failed to read app secret: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				value = strings.TrimSpace(string(secret))

				if value == "" {
					return constants.ErrEmptySecret
				}
			default:
				return fmt.Errorf("%w: %s", constants.ErrValueRequired, key)
			}

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			shown := value
			if key == appSecretKey || key == userAccessTokenKey {
				shown = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, shown)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := setConfigValue(config, key, "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

// loadConfig reads the effective configuration: flags, then LARK_* environment
// variables, then the config file.
func loadConfig() *Config {
	return &Config{
		Domain:          viper.GetString("domain"),
		AppID:           viper.GetString("app_id"),
		AppSecret:       viper.GetString(appSecretKey),
		AppType:         viper.GetString("app_type"),
		TenantKey:       viper.GetString("tenant_key"),
		UserAccessToken: viper.GetString(userAccessTokenKey),
		Output:          viper.GetString("output"),
	}
}

// setConfigValue validates and applies one key. An empty value clears the key.
func setConfigValue(config *Config, key, value string) error {
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	switch key {
	case "domain":
		config.Domain = larkclient.NormalizeDomain(value)
	case "app_id":
		config.AppID = value
	case appSecretKey:
		config.AppSecret = value
	case "app_type":
		if value != "" && value != string(lark.AppTypeSelfBuilt) && value != string(lark.AppTypeMarketplace) {
			return fmt.Errorf("%w: app_type must be %s or %s", constants.ErrInvalidConfigValue, lark.AppTypeSelfBuilt, lark.AppTypeMarketplace)
		}

		config.AppType = value
	case "tenant_key":
		config.TenantKey = value
	case userAccessTokenKey:
		config.UserAccessToken = value
	case "output":
		if value != "" && value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, value)
		}

		config.Output = value
	}

	return nil
}

// configFilePath returns the file config changes are written to.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// saveConfigStruct writes config to the config file.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
