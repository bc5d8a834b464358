package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/files"
)

func newQuotesCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Keep a book of saved quotes.",
	}
	cmd.AddCommand(
		newQuotesAddCommand(ctx, manager),
		newQuotesListCommand(ctx, manager),
		newQuotesDeleteCommand(ctx, manager),
	)
	return cmd
}

func newQuotesAddCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	var author, category string

	cmd := &cobra.Command{
		Use:   "add <text ...>",
		Short: "Save a quote.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			q := dashboard.SavedQuote{Text: joinArgs(args), Author: author, Category: category}
			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionQuoteSave, Quote: q})
			if err != nil {
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Who said it (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category, e.g. wisdom (required)")

	return cmd
}

func newQuotesListCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved quotes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			tbl := newTable()
			tbl.AddRow(bold.Sprint("#"), bold.Sprint("Quote"), bold.Sprint("Author"), bold.Sprint("Category"))
			rows := 0
			for i, q := range rt.controller.Quotes.Search(search) {
				tbl.AddRow(strconv.Itoa(i+1), q.Text, q.Author, faint.Sprint(q.Category))
				rows++
			}
			if rows == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no quotes)")
				return nil
			}
			tbl.RightAlign(0)
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show quotes whose text, author or category contains this")

	return cmd
}

func newQuotesDeleteCommand(_ context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved quote by index.",
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

			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionQuoteDelete, Index: index})
			if err != nil {
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}
}
