package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Review journal entries as Org-mode text",
	Long: `Print journal entries as Org-mode text for a day of trading.

Subcommands:
  today  - Trades entered today
  day    - Trades entered on a specific day

Examples:
  fxjournal journal today
  fxjournal journal day 2024-01-15`,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List trades entered today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades entered on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as CSV or Org-mode",
	Long: `Write every trade, latest first, to stdout or a file.

Examples:
  fxjournal export --format csv -o trades.csv
  fxjournal export --format org`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or org")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return printDay(cmd, time.Now().Format(journal.DateLayout))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return printDay(cmd, args[0])
}

// printDay matches on the wall-clock entry date, which trades store without
// a zone, so the bounds are taken in UTC like Trade.EntryAt.
func printDay(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.UTC, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	views, err := j.List(cmd.Context(), journal.SortByEarliest)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	recs := journal.EnteredBetween(tradesOf(views), start, end)
	if len(recs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No trades entered on %s.\n", day)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(journal.DateLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "org" {
		return fmt.Errorf("unknown export format %q (want csv or org)", exportFormat)
	}

	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	views, err := j.List(cmd.Context(), journal.SortByDate)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	trades := tradesOf(views)

	var out io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOutput, err)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "org":
		_, err = fmt.Fprintln(out, journal.FormatTradesOrg(trades))
	default:
		err = journal.WriteCSV(out, trades)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d trades to %s\n", len(trades), exportOutput)
	}
	return nil
}
