package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/lark-client/internal/auth"
	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// tokenManagerProvider is implemented by clients built with app credentials.
type tokenManagerProvider interface {
	TokenManager(tokenType lark.AccessTokenType, tenantKey string) auth.TokenManager
}

// TokenInfo is the output of the token commands.
type TokenInfo struct {
	Type  string `json:"type"  yaml:"type"`
	Token string `json:"token" yaml:"token"`
}

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print access tokens",
		Long:  "Acquire and print the app's tenant or app access token, or the configured user access token",
	}

	cmd.AddCommand(newTokenPrintCommand("tenant", lark.AccessTokenTypeTenant))
	cmd.AddCommand(newTokenPrintCommand("app", lark.AccessTokenTypeApp))
	cmd.AddCommand(newTokenPrintCommand("user", lark.AccessTokenTypeUser))

	return cmd
}

func newTokenPrintCommand(use string, tokenType lark.AccessTokenType) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Print the %s access token", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			provider, ok := client.(tokenManagerProvider)
			if !ok {
				return constants.ErrTokenManagerUnavailable
			}

			manager := provider.TokenManager(tokenType, viper.GetString("tenant_key"))
			if manager == nil {
				if tokenType == lark.AccessTokenTypeUser {
					return constants.ErrNoUserToken
				}

				return constants.ErrNoSecretConfigured
			}

			if refresh {
				err = manager.RefreshToken(ctx)
				if err != nil {
					return fmt.Errorf("failed to refresh %s access token: %w", use, err)
				}
			}

			token, err := manager.GetToken(ctx)
			if err != nil {
				return fmt.Errorf("failed to get %s access token: %w", use, err)
			}

			info := TokenInfo{Type: string(tokenType), Token: token}

			return renderOutput(cmd.OutOrStdout(), info, func(table *tablewriter.Table) {
				table.Header("Type", "Token")
				_ = table.Append(info.Type, info.Token)
			})
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "discard the cached token first")

	return cmd
}
