package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"github.com/faizmokh/productify/internal/version"
)

func newVersionCommand() *cobra.Command {
	var (
		shortened bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print productify build information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := goversion.FuncWithOutput(shortened, version.Version, version.Commit, version.Date, output)
			fmt.Fprint(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	return cmd
}
