package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// NewPersonalSettingsCommand creates the personal-settings command group.
func NewPersonalSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "personal-settings",
		Aliases: []string{"ps"},
		Short:   "Manage personal settings",
		Long:    "Manage the tenant's system statuses",
	}

	statuses := &cobra.Command{
		Use:     "statuses",
		Aliases: []string{"status"},
		Short:   "Manage system statuses",
	}
	statuses.AddCommand(newSystemStatusesListCommand())

	cmd.AddCommand(statuses)

	return cmd
}

func newSystemStatusesListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List system statuses",
		Long:  "List the system statuses defined for the tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			statusesClient := client.PersonalSettings().SystemStatuses()

			var statuses []*lark.SystemStatus

			if opts.AllPages {
				pages, err := collectPages(statusesClient.ListWithIterator(ctx, opts.payload(), tenantOptions()...), "list system statuses")
				if err != nil {
					return err
				}

				for _, page := range pages {
					statuses = append(statuses, page.Items...)
				}
			} else {
				page, err := envelopeData(statusesClient.List(ctx, opts.payload(), tenantOptions()...))
				if err != nil {
					return fmt.Errorf("failed to list system statuses: %w", err)
				}

				statuses = page.Items
			}

			return renderOutput(cmd.OutOrStdout(), statuses, func(table *tablewriter.Table) {
				table.Header("ID", "Title", "Icon", "Color", "Priority")

				for _, status := range statuses {
					_ = table.Append(status.SystemStatusID, status.Title, status.IconKey, valueOrNA(status.Color), strconv.Itoa(status.Priority))
				}
			})
		},
	}

	addListFlags(cmd, &opts)

	return cmd
}
