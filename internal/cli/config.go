package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/config"
	"github.com/faizmokh/productify/internal/files"
)

func newConfigCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect productify configuration.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML.",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(manager.ConfigPath())
				if err != nil {
					return err
				}
				out, err := cfg.YAML()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print where productify keeps its files.",
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "home:   %s\n", manager.BasePath())
				fmt.Fprintf(out, "config: %s\n", manager.ConfigPath())
				return nil
			},
		},
	)
	return cmd
}
