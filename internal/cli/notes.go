package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/files"
)

func newNotesCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Read and edit the notes buffer.",
	}
	cmd.AddCommand(
		newNotesShowCommand(ctx, manager),
		newNotesSetCommand(ctx, manager),
		newNotesClearCommand(ctx, manager),
		newNotesCopyCommand(ctx, manager),
	)
	return cmd
}

func newNotesShowCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the notes buffer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			notes := rt.controller.Notes
			if notes.Text() == "" {
				fmt.Fprintln(out, "(no notes)")
				return nil
			}
			fmt.Fprintln(out, notes.Text())
			fmt.Fprintln(out, faint.Sprintf("%d characters", notes.Count()))
			return nil
		},
	}
}

func newNotesSetCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "set [text ...]",
		Short: "Replace the notes buffer.",
		Long:  "set replaces the whole buffer with the given text, or with standard input when no text is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := joinArgs(args)
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read notes: %w", err)
				}
				text = string(data)
			}

			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.handle(dashboard.Command{Action: dashboard.ActionNotesSet, Text: text}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notes saved (%d characters)\n", rt.controller.Notes.Count())
			return nil
		},
	}
}

func newNotesClearCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the notes buffer after confirmation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			ask := func() bool {
				return yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Clear all notes")
			}
			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionNotesClear, Confirm: ask})
			switch {
			case errors.Is(err, dashboard.ErrNotConfirmed):
				fmt.Fprintln(cmd.OutOrStdout(), "Notes kept")
				return nil
			case errors.Is(err, dashboard.ErrNotesEmpty):
				printNotice(cmd, notice)
				return nil
			case err != nil:
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Clear without asking")

	return cmd
}

func newNotesCopyCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the notes buffer to the system clipboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionNotesCopy})
			if err != nil {
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}
}
