package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/clock"
	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/files"
)

func newFocusCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run focus (pomodoro) sessions.",
	}
	cmd.AddCommand(
		newFocusStartCommand(ctx, manager),
		newFocusStatusCommand(ctx, manager),
		newFocusPresetsCommand(ctx, manager),
	)
	return cmd
}

func newFocusStartCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		preset   int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Count down one focus session in the terminal.",
		Long:  "start runs a single countdown and records it when it reaches zero. Interrupting it (Ctrl+C) abandons the session without counting it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loop := clock.NewLoop(interval)
			rt, err := openRuntime(manager, loop)
			if err != nil {
				return err
			}
			defer rt.Close()

			if preset != 0 {
				if _, err := rt.handle(dashboard.Command{Action: dashboard.ActionTimerPreset, Minutes: preset}); err != nil {
					return err
				}
			}
			if _, err := rt.handle(dashboard.Command{Action: dashboard.ActionTimerStart}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			timer := rt.controller.Timer
			fmt.Fprintf(out, "Focus for %d minutes\n", timer.Preset())
			render := func() {
				if timer.State() == dashboard.TimerRunning {
					fmt.Fprintf(out, "\r%s ", timer.Snapshot().Clock())
				}
			}
			render()

			err = loop.Run(ctx, render)
			fmt.Fprintln(out)
			if errors.Is(err, context.Canceled) {
				rt.controller.Handle(dashboard.Command{Action: dashboard.ActionTimerReset})
				fmt.Fprintln(out, "Session abandoned")
				return nil
			}
			if err != nil {
				return err
			}

			for _, notice := range rt.controller.TakeNotices() {
				printNotice(cmd, notice)
			}
			fmt.Fprintf(out, "Sessions completed: %d\n", timer.Sessions())
			return nil
		},
	}

	cmd.Flags().IntVarP(&preset, "preset", "p", 0, "Session length in minutes (default from config)")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Tick interval")
	_ = cmd.Flags().MarkHidden("interval")

	return cmd
}

func newFocusStatusCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show completed sessions and the current preset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			snap := rt.controller.Timer.Snapshot()
			tbl := newTable()
			tbl.AddRow(bold.Sprint("Sessions"), snap.Sessions)
			tbl.AddRow(bold.Sprint("Preset"), fmt.Sprintf("%d min", snap.Preset))
			tbl.AddRow(bold.Sprint("Timer"), snap.Clock())
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func newFocusPresetsCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the configured session lengths.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			labels := make([]string, 0, len(rt.cfg.Timer.Presets))
			for _, minutes := range rt.cfg.Timer.Presets {
				label := strconv.Itoa(minutes)
				if minutes == rt.cfg.Timer.Preset {
					label = green.Sprint(label + "*")
				}
				labels = append(labels, label)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (minutes)\n", strings.Join(labels, " "))
			return nil
		},
	}
}
