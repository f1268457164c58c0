package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// NewReportCommand creates the report command group.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage reports",
		Long:  "Query report rules",
	}

	rules := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"rule"},
		Short:   "Manage report rules",
	}
	rules.AddCommand(newReportRulesQueryCommand())

	cmd.AddCommand(rules)

	return cmd
}

func newReportRulesQueryCommand() *cobra.Command {
	var (
		name           string
		includeDeleted bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query report rules by name",
		Long:  "Find the report rules with the given name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := lark.Params{"rule_name": name}
			if includeDeleted {
				params["include_deleted"] = 1
			}

			result, err := envelopeData(client.Report().Rules().Query(ctx, &lark.Payload{Params: params}, tenantOptions()...))
			if err != nil {
				return fmt.Errorf("failed to query report rules: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result.Rules, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Owner", "Created", "Deleted")

				for _, rule := range result.Rules {
					created := time.Unix(int64(rule.CreatedAt), 0).UTC().Format(time.RFC3339)
					_ = table.Append(rule.RuleID, rule.Name, valueOrNA(rule.OwnerUserName), created, strconv.FormatBool(rule.IsDeleted != 0))
				}
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().BoolVar(&includeDeleted, "include-deleted", false, "include deleted rules")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
