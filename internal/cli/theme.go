package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/files"
)

func newThemeCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Pick the dashboard color theme.",
	}
	cmd.AddCommand(
		newThemeListCommand(ctx, manager),
		newThemeShowCommand(ctx, manager),
		newThemeSetCommand(ctx, manager),
	)
	return cmd
}

func newThemeListCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			active := rt.controller.Theme.Active()
			tbl := newTable()
			for _, theme := range dashboard.Themes {
				mark := " "
				id := string(theme)
				if theme == active {
					mark = green.Sprint("*")
					id = bold.Sprint(id)
				}
				tbl.AddRow(mark, id, faint.Sprint(theme.Label()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func newThemeShowCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active theme.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			fmt.Fprintln(cmd.OutOrStdout(), rt.controller.Theme.Active())
			return nil
		},
	}
}

func newThemeSetCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:       "set <theme>",
		Short:     "Activate a theme.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: themeIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionThemeSet, Text: args[0]})
			if err != nil {
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}
}

func themeIDs() []string {
	ids := make([]string, len(dashboard.Themes))
	for i, theme := range dashboard.Themes {
		ids[i] = string(theme)
	}
	return ids
}
