package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/files"
	"github.com/faizmokh/productify/internal/ui"
	"github.com/faizmokh/productify/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "productify",
		Short:   "Tasks, notes and focus sessions from your terminal.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticker := ui.NewTicker()
			rt, err := openRuntime(manager, ticker)
			if err != nil {
				return err
			}
			defer rt.Close()

			m := ui.NewModel(ctx, rt.controller, rt.feeds, ticker, rt.cfg.Timer.Presets)
			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newTaskCommand(ctx, manager),
		newNotesCommand(ctx, manager),
		newFocusCommand(ctx, manager),
		newThemeCommand(ctx, manager),
		newQuotesCommand(ctx, manager),
		newWeatherCommand(ctx, manager),
		newQuoteCommand(ctx, manager),
		newConfigCommand(ctx, manager),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, manager)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/productify/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
