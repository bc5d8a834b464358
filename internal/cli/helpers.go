package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/faizmokh/productify/internal/dashboard"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	faint = color.New(color.Faint)
)

// parseIndex converts a 1-based CLI index into a 0-based store index.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index <= 0 {
		return 0, fmt.Errorf("index must be a positive integer")
	}
	return index - 1, nil
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	return tbl
}

func formatTask(task dashboard.Task) string {
	if task.Completed {
		return "[done] " + task.Text
	}
	return "[todo] " + task.Text
}

func printTasks(out io.Writer, tasks []dashboard.IndexedTask) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "(no tasks)")
		return
	}
	tbl := newTable()
	tbl.AddRow(bold.Sprint("#"), bold.Sprint(""), bold.Sprint("Task"))
	for _, t := range tasks {
		mark := faint.Sprint("○")
		if t.Completed {
			mark = green.Sprint("✓")
		}
		tbl.AddRow(strconv.Itoa(t.Index+1), mark, t.Text)
	}
	tbl.RightAlign(0)
	fmt.Fprintln(out, tbl)
}

func formatStats(stats dashboard.Stats) string {
	return fmt.Sprintf("%d/%d completed (%d%%), %d pending",
		stats.Completed, stats.Total, stats.PercentComplete, stats.Pending)
}

func printNotice(cmd *cobra.Command, notice dashboard.Notice) {
	if notice.Quiet() {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), notice.Message)
}
