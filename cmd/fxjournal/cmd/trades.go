package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/pnl"
	"github.com/rustyeddy/fxjournal/server"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Long: `Record a trade in the journal. Leave out --exit for a trade that is
still open; open trades show 0 pips and $0.00 until an exit is recorded.

Examples:
  fxjournal add -i EUR/USD -s buy --entry 1.1000 --exit 1.1050 --lots 1
  fxjournal add -i USD/JPY -s sell --entry 151.20 --lots 0.5 --timeframe M15 --notes "fade the spike"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "history"},
	Short:   "List recorded trades",
	Long: `List trades with their pips and P&L.

Sort orders:
  date      Latest First (default)
  earliest  Earliest First
  profit    Highest Profit
  loss      Highest Loss`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show one trade as an Org entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <trade-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a trade",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var addReq server.AddTradeRequest

var (
	addExit float64
	addStop float64
	listBy  string
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)

	f := addCmd.Flags()
	f.StringVarP(&addReq.Instrument, "instrument", "i", "", "currency pair, e.g. EUR/USD (required)")
	f.StringVarP(&addReq.TradeType, "side", "s", string(market.Buy), "buy or sell")
	f.Float64Var(&addReq.EntryPrice, "entry", 0, "entry price (required)")
	f.Float64Var(&addExit, "exit", 0, "exit price; omit for an open trade")
	f.Float64Var(&addStop, "stop", 0, "stop loss price")
	f.Float64VarP(&addReq.LotSize, "lots", "l", 0, "lot size, 1.0 = 100,000 units (required)")
	f.StringVarP(&addReq.Timeframe, "timeframe", "t", string(market.H1), "chart timeframe")
	f.StringVar(&addReq.EntryDate, "date", "", "entry date YYYY-MM-DD (default today)")
	f.StringVar(&addReq.EntryTime, "time", "", "entry time HH:MM (default now)")
	f.StringVarP(&addReq.Notes, "notes", "n", "", "trade notes")
	f.StringVar(&addReq.Strategy, "strategy", "", "strategy tag")
	addCmd.MarkFlagRequired("instrument")
	addCmd.MarkFlagRequired("entry")
	addCmd.MarkFlagRequired("lots")

	listCmd.Flags().StringVar(&listBy, "sort", string(journal.SortByDate), "date|earliest|profit|loss")
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := addReq
	if cmd.Flags().Changed("exit") {
		req.ExitPrice = journal.Price(addExit)
	}
	if cmd.Flags().Changed("stop") {
		req.StopLoss = journal.Price(addStop)
	}

	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	v, err := j.Add(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Recorded %s %s %g lots @ %.5f\n", v.Instrument, strings.ToUpper(string(v.TradeType)), v.LotSize, v.EntryPrice)
	fmt.Fprintf(out, "  ID: %s\n", v.ID)
	if !v.Open {
		fmt.Fprintf(out, "  Result: %s / %s\n", v.PipsText, v.PnLText)
	}
	if v.Risk != nil {
		fmt.Fprintf(out, "  Risk: %s pips / %s", pnl.FormatPips(v.Risk.StopPips), pnl.FormatCurrency(v.Risk.AtRisk))
		if !v.Open && v.Risk.StopPips > 0 {
			fmt.Fprintf(out, " (%sR)", pnl.FormatRatio(v.Risk.RMultiple))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	by, err := journal.ParseSortBy(listBy)
	if err != nil {
		return err
	}

	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	views, err := j.List(cmd.Context(), by)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(views) == 0 {
		fmt.Fprintln(out, "No trades recorded yet.")
		return nil
	}
	fmt.Fprintf(out, "Trade History (%s)\n\n", by.Label())
	return writeTradeTable(out, views)
}

func writeTradeTable(out io.Writer, views []server.TradeView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPAIR\tSIDE\tLOTS\tENTRY\tEXIT\tPIPS\tP&L")
	for _, v := range views {
		exit := "open"
		if !v.Open {
			exit = fmt.Sprintf("%.5f", v.Exit())
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%g\t%.5f\t%s\t%s\t%s\n",
			v.ID, v.EntryDate, v.EntryTime, v.Instrument, strings.ToUpper(string(v.TradeType)),
			v.LotSize, v.EntryPrice, exit, v.PipsText, v.PnLText)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	v, err := j.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(v.Trade))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted trade %s\n", args[0])
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	j, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer j.Close()

	st, err := j.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	out := cmd.OutOrStdout()
	if st.TotalTrades == 0 {
		fmt.Fprintln(out, "No trades recorded yet.")
		return nil
	}

	s := st.Formatted
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total P&L\t%s\n", s.TotalPnL)
	fmt.Fprintf(w, "Total Pips\t%s\n", s.TotalPips)
	fmt.Fprintf(w, "Trades\t%d (%d wins, %d losses)\n", st.TotalTrades, st.WinningTrades, st.LosingTrades)
	fmt.Fprintf(w, "Win Rate\t%s\n", s.WinRate)
	fmt.Fprintf(w, "Avg Win\t%s\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss\t%s\n", s.AvgLoss)
	fmt.Fprintf(w, "Best Trade\t%s\n", s.BestTrade)
	fmt.Fprintf(w, "Worst Trade\t%s\n", s.WorstTrade)
	fmt.Fprintf(w, "Profit Factor\t%s\n", s.ProfitFactor)
	fmt.Fprintf(w, "Avg Pips\t%s\n", s.AvgPips)
	return w.Flush()
}
