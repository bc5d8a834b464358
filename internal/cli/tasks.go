package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/files"
)

func newTaskCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage the task list.",
	}
	cmd.AddCommand(
		newTaskAddCommand(ctx, manager),
		newTaskListCommand(ctx, manager),
		newTaskToggleCommand(ctx, manager),
		newTaskDeleteCommand(ctx, manager),
		newTaskStatsCommand(ctx, manager),
	)
	return cmd
}

func newTaskAddCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text ...>",
		Short: "Append a pending task.",
		Long:  "add trims the text and rejects empty, overlong (over 200 characters) or duplicate tasks. Duplicates are matched case-insensitively.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionTaskAdd, Text: joinArgs(args)})
			if err != nil {
				return err
			}
			tasks := rt.controller.Tasks.Tasks()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d. %s\n", notice.Message, len(tasks), tasks[len(tasks)-1].Text)
			return nil
		},
	}
}

func newTaskListCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	var filterFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show tasks, optionally filtered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := dashboard.ParseFilter(filterFlag)
			if err != nil {
				return err
			}

			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.handle(dashboard.Command{Action: dashboard.ActionTaskFilter, Filter: filter}); err != nil {
				return err
			}
			snap := rt.controller.Snapshot()
			out := cmd.OutOrStdout()
			printTasks(out, snap.Tasks)
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatStats(snap.Stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "all", "Which tasks to show: all|completed|pending")

	return cmd
}

func newTaskToggleCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <index>",
		Short: "Flip a task between pending and completed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionTaskToggle, Index: index})
			if err != nil {
				return err
			}
			task := rt.controller.Tasks.Tasks()[index]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n", notice.Message, index+1, formatTask(task))
			return nil
		},
	}
}

func newTaskDeleteCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Remove a task by index.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			task, ok := taskAt(rt.controller.Tasks.Tasks(), index)
			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionTaskDelete, Index: index})
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d: %s\n", notice.Message, index+1, formatTask(task))
			}
			return nil
		},
	}
}

func newTaskStatsCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize task completion.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			stats := rt.controller.Tasks.Stats()
			tbl := newTable()
			tbl.AddRow(bold.Sprint("Total"), stats.Total)
			tbl.AddRow(bold.Sprint("Completed"), stats.Completed)
			tbl.AddRow(bold.Sprint("Pending"), stats.Pending)
			tbl.AddRow(bold.Sprint("Progress"), fmt.Sprintf("%d%%", stats.PercentComplete))
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func taskAt(tasks []dashboard.Task, index int) (dashboard.Task, bool) {
	if index < 0 || index >= len(tasks) {
		return dashboard.Task{}, false
	}
	return tasks[index], true
}
