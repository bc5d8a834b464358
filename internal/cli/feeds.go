package cli

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/feeds"
	"github.com/faizmokh/productify/internal/files"
)

func newWeatherCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Show current weather for your approximate location.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			w, err := rt.feeds.Weather(ctx)
			if err != nil {
				desc, detail := feeds.Unavailable(err)
				fmt.Fprintf(out, "🌡️ --°C  %s\n%s\n", desc, faint.Sprint(detail))
				return nil
			}

			fmt.Fprintf(out, "%s %s  %s\n", w.Icon(), bold.Sprint(w.TemperatureLabel()), w.Description())
			tbl := newTable()
			tbl.AddRow(faint.Sprint("Location"), w.Location.String())
			tbl.AddRow(faint.Sprint("Humidity"), fmt.Sprintf("%d%%", w.Humidity))
			tbl.AddRow(faint.Sprint("Wind"), w.WindLabel())
			fmt.Fprintln(out, tbl)
			return nil
		},
	}
}

func newQuoteCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		save     bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show a random inspirational quote.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(manager, nil)
			if err != nil {
				return err
			}
			defer rt.Close()

			q, err := rt.feeds.RandomQuote(ctx)
			if err != nil {
				q = feeds.FallbackQuote(rand.IntN(len(feeds.FallbackQuotes)))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n", q.Content, faint.Sprint("— "+q.Author))

			if !save {
				return nil
			}
			saved := dashboard.SavedQuote{Text: q.Content, Author: q.Author, Category: category}
			notice, err := rt.handle(dashboard.Command{Action: dashboard.ActionQuoteSave, Quote: saved})
			if err != nil {
				return err
			}
			printNotice(cmd, notice)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Also save the quote to your quote book")
	cmd.Flags().StringVarP(&category, "category", "c", "inspiration", "Category used with --save")

	return cmd
}
