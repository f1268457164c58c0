package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// NewAttendanceCommand creates the attendance command group.
func NewAttendanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "Manage attendance",
		Long:    "List and inspect attendance groups and shifts, and download attendance files",
	}

	cmd.AddCommand(newAttendanceGroupsCommand())
	cmd.AddCommand(newAttendanceShiftsCommand())
	cmd.AddCommand(newAttendanceFilesCommand())

	return cmd
}

// ListOptions holds the paging options shared by list commands.
type ListOptions struct {
	AllPages bool
	PageSize int
}

func addListFlags(cmd *cobra.Command, opts *ListOptions) {
	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", constants.DefaultPageSize, "results per page")
}

func (o ListOptions) payload() *lark.Payload {
	return &lark.Payload{Params: lark.Params{constants.PageSizeKey: o.PageSize}}
}

func newAttendanceGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage attendance groups",
	}

	cmd.AddCommand(newAttendanceGroupsListCommand())
	cmd.AddCommand(newAttendanceGroupsGetCommand())

	return cmd
}

func newAttendanceGroupsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance groups",
		Long:  "List the tenant's attendance groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			groups, err := fetchGroups(ctx, opts)
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), groups, func(table *tablewriter.Table) {
				table.Header("ID", "Name")

				for _, group := range groups {
					_ = table.Append(group.GroupID, group.GroupName)
				}
			})
		},
	}

	addListFlags(cmd, &opts)

	return cmd
}

func fetchGroups(ctx context.Context, opts ListOptions) ([]*lark.GroupMeta, error) {
	client, err := CreateClient(ctx)
	if err != nil {
		return nil, err
	}

	groupsClient := client.Attendance().Groups()

	if !opts.AllPages {
		page, err := envelopeData(groupsClient.List(ctx, opts.payload(), tenantOptions()...))
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance groups: %w", err)
		}

		return page.GroupList, nil
	}

	pages, err := collectPages(groupsClient.ListWithIterator(ctx, opts.payload(), tenantOptions()...), "list attendance groups")
	if err != nil {
		return nil, err
	}

	var groups []*lark.GroupMeta
	for _, page := range pages {
		groups = append(groups, page.GroupList...)
	}

	return groups, nil
}

func newAttendanceGroupsGetCommand() *cobra.Command {
	var employeeType, deptType string

	cmd := &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Get attendance group details",
		Long:  "Display detailed information about a specific attendance group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			group, err := envelopeData(client.Attendance().Groups().Get(ctx, &lark.Payload{
				Path:   map[string]string{"group_id": args[0]},
				Params: lark.Params{"employee_type": employeeType, "dept_type": deptType},
			}, tenantOptions()...))
			if err != nil {
				return fmt.Errorf("failed to get attendance group %s: %w", args[0], err)
			}

			return renderOutput(cmd.OutOrStdout(), group, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", valueOrNA(group.GroupID))
				_ = table.Append("Name", valueOrNA(group.GroupName))
				_ = table.Append("Time Zone", valueOrNA(group.TimeZone))
				_ = table.Append("Type", strconv.Itoa(group.GroupType))
				_ = table.Append("Shifts", strconv.Itoa(len(group.PunchDayShiftIDs)))
				_ = table.Append("Locations", strconv.Itoa(len(group.Locations)))
			})
		},
	}

	cmd.Flags().StringVar(&employeeType, "employee-type", "employee_id", "user id type in the response")
	cmd.Flags().StringVar(&deptType, "dept-type", "od", "department id type in the response")

	return cmd
}

func newAttendanceShiftsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shifts",
		Aliases: []string{"shift"},
		Short:   "Manage attendance shifts",
	}

	cmd.AddCommand(newAttendanceShiftsListCommand())

	return cmd
}

func newAttendanceShiftsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shifts",
		Long:  "List the tenant's attendance shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			shiftsClient := client.Attendance().Shifts()

			var shifts []*lark.Shift

			if opts.AllPages {
				err = shiftsClient.ListWithIterator(ctx, opts.payload(), tenantOptions()...).ForEach(func(page *lark.ShiftPage) error {
					shifts = append(shifts, page.ShiftList...)

					return nil
				})
				if err != nil {
					return fmt.Errorf("failed to list shifts: %w", err)
				}
			} else {
				page, err := envelopeData(shiftsClient.List(ctx, opts.payload(), tenantOptions()...))
				if err != nil {
					return fmt.Errorf("failed to list shifts: %w", err)
				}

				shifts = page.ShiftList
			}

			return renderOutput(cmd.OutOrStdout(), shifts, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Punch Times")

				for _, shift := range shifts {
					_ = table.Append(shift.ShiftID, shift.ShiftName, strconv.Itoa(shift.PunchTimes))
				}
			})
		},
	}

	addListFlags(cmd, &opts)

	return cmd
}

func newAttendanceFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "Manage attendance files",
	}

	cmd.AddCommand(newAttendanceFilesDownloadCommand())

	return cmd
}

func newAttendanceFilesDownloadCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "download FILE_ID",
		Short: "Download an attendance file",
		Long:  "Download an attendance file such as a face photo to a local path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return constants.ErrOutputPathMissing
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			file, err := client.Attendance().Files().Download(ctx, &lark.Payload{
				Path: map[string]string{"file_id": args[0]},
			}, tenantOptions()...)
			if err != nil {
				return fmt.Errorf("failed to download file %s: %w", args[0], err)
			}

			err = file.WriteFile(out)
			if err != nil {
				return fmt.Errorf("failed to save file %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s to %s\n", args[0], out)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "path to write the file to")

	return cmd
}
