package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/core/entry"
	"github.com/temps-cli/temps/internal/core/report"
	"github.com/temps-cli/temps/internal/data/logfile"
	"github.com/temps-cli/temps/internal/data/watcher"
	"github.com/temps-cli/temps/internal/presentation/display"
	"github.com/temps-cli/temps/internal/presentation/formatter"
	"github.com/temps-cli/temps/internal/util"
)

type summaryMode int

const (
	modeDaily summaryMode = iota
	modeWeekly
	modeFull
)

var (
	summaryFull   bool
	summaryWeekly bool
	summaryDaily  bool
	summaryOutput string
	summaryWatch  bool

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Display a summary of the time tracked per project",
		RunE:  runSummary,
	}
)

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().BoolVarP(&summaryFull, "full", "f", false,
		"Time tracked forever")
	summaryCmd.Flags().BoolVarP(&summaryWeekly, "weekly", "w", false,
		"Time tracked in the past week")
	summaryCmd.Flags().BoolVarP(&summaryDaily, "daily", "d", false,
		"Time tracked today (default)")
	summaryCmd.MarkFlagsMutuallyExclusive("full", "weekly", "daily")

	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "table",
		"Output format (table, json)")
	summaryCmd.Flags().BoolVar(&summaryWatch, "watch", false,
		"Re-render whenever the tracking file changes")
}

func runSummary(cmd *cobra.Command, args []string) error {
	mode := modeDaily
	switch {
	case summaryFull:
		mode = modeFull
	case summaryWeekly:
		mode = modeWeekly
	}

	if summaryWatch {
		return runSummaryWatch(cmd, mode, summaryOutput)
	}
	return runSummaryMode(cmd, mode, summaryOutput)
}

func runSummaryMode(cmd *cobra.Command, mode summaryMode, output string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}
	return renderSummary(cmd.OutOrStdout(), entries, clockNow(), mode, output)
}

func runSummaryWatch(cmd *cobra.Command, mode summaryMode, output string) error {
	w, err := watcher.New(opts.path)
	if err != nil {
		return fmt.Errorf("could not watch tracking file: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	repaint := func() error {
		if f, ok := out.(*os.File); ok && display.IsTerminal(f) {
			display.Clear(out)
		}
		entries, err := logfile.Read(opts.path, opts.loc)
		if err != nil {
			return err
		}
		return renderSummary(out, entries, clockNow(), mode, output)
	}

	if err := repaint(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Events():
			// Editors and our own atomic rewrite produce bursts of
			// events; let them settle before re-reading.
			timer := time.NewTimer(200 * time.Millisecond)
		settle:
			for {
				select {
				case <-w.Events():
				case <-timer.C:
					break settle
				case <-ctx.Done():
					timer.Stop()
					return nil
				}
			}
			if err := repaint(); err != nil {
				return err
			}
		}
	}
}

func renderSummary(w io.Writer, entries []entry.Entry, now time.Time, mode summaryMode, output string) error {
	switch mode {
	case modeFull:
		return renderFull(w, entries, now, output)
	case modeWeekly:
		return renderWeekly(w, entries, now, output)
	default:
		return renderDaily(w, entries, now, output)
	}
}

func renderFull(w io.Writer, entries []entry.Entry, now time.Time, output string) error {
	totals := report.Full(entries, now)
	ongoing := report.OngoingOf(entries, now)

	if output == "json" {
		return formatter.WriteJSON(w, struct {
			Projects []report.ProjectTotal `json:"projects"`
			Ongoing  *report.Ongoing       `json:"ongoing,omitempty"`
		}{totals, ongoing})
	}

	table := formatter.NewTable("Project", "Hours").
		Align(formatter.AlignLeft, formatter.AlignRight)
	for _, t := range totals {
		table.Row(t.Project, util.FormatHours(t.Total))
	}
	fmt.Fprint(w, table)

	printOngoing(w, ongoing)
	return nil
}

func renderDaily(w io.Writer, entries []entry.Entry, now time.Time, output string) error {
	summary := report.Daily(entries, now, opts.offset)
	ongoing := report.OngoingOf(entries, now)

	if output == "json" {
		return formatter.WriteJSON(w, struct {
			report.DailySummary
			Ongoing *report.Ongoing `json:"ongoing,omitempty"`
		}{summary, ongoing})
	}

	fmt.Fprintf(w, "Summary for today (%s)\n\n", summary.Date.Format("Jan 02"))

	table := formatter.NewTable("Project", "Hours").
		Align(formatter.AlignLeft, formatter.AlignRight)
	for _, t := range summary.Projects {
		table.Row(t.Project, util.FormatHours(t.Total))
	}
	table.Row("", "")
	table.Row("TOTAL", util.FormatHours(summary.Total))
	fmt.Fprint(w, table)

	printOngoing(w, ongoing)
	return nil
}

func renderWeekly(w io.Writer, entries []entry.Entry, now time.Time, output string) error {
	summary := report.Weekly(entries, now, opts.offset)
	ongoing := report.OngoingOf(entries, now)

	if output == "json" {
		return formatter.WriteJSON(w, struct {
			report.WeeklySummary
			Ongoing *report.Ongoing `json:"ongoing,omitempty"`
		}{summary, ongoing})
	}

	fmt.Fprint(w, "Summary for the past week\n\n")

	// Days render oldest first; the report indexes them newest first.
	headers := make([]string, 0, report.DaysPerWeek+1)
	alignments := make([]formatter.Alignment, 0, report.DaysPerWeek+1)
	headers = append(headers, "Project")
	alignments = append(alignments, formatter.AlignLeft)
	for delta := report.DaysPerWeek - 1; delta >= 0; delta-- {
		day := summary.Date.AddDate(0, 0, -delta)
		headers = append(headers, day.Format("Monday"))
		alignments = append(alignments, formatter.AlignRight)
	}

	table := formatter.NewTable(headers...).Align(alignments...)
	for _, p := range summary.Projects {
		row := make([]string, 0, report.DaysPerWeek+1)
		row = append(row, p.Project)
		for delta := report.DaysPerWeek - 1; delta >= 0; delta-- {
			row = append(row, util.FormatHours(p.Days[delta]))
		}
		table.Row(row...)
	}
	table.Row()
	totals := make([]string, 0, report.DaysPerWeek+1)
	totals = append(totals, "TOTAL")
	for delta := report.DaysPerWeek - 1; delta >= 0; delta-- {
		totals = append(totals, util.FormatHours(summary.DayTotals[delta]))
	}
	table.Row(totals...)
	fmt.Fprint(w, table)

	fmt.Fprintf(w, "\nWeekly total: %s hours\n", util.FormatHours(summary.Total))

	printOngoing(w, ongoing)
	return nil
}

func printOngoing(w io.Writer, ongoing *report.Ongoing) {
	if ongoing == nil {
		return
	}
	fmt.Fprintf(w, "\nOngoing: %s (%s)\n", ongoing.Project, util.FormatDuration(ongoing.Elapsed))
}
