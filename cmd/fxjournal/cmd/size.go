package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/pnl"
	"github.com/rustyeddy/fxjournal/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a position from account equity and a stop",
	Long: `Work out the lot size that risks a percentage of the account if the
stop is hit. Lots are rounded down to micro lots (0.01).

Example:
  fxjournal size -i EUR/USD --entry 1.1000 --stop 1.0950 --equity 10000 --risk 1`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

var sizeIn risk.Inputs

func init() {
	rootCmd.AddCommand(sizeCmd)

	f := sizeCmd.Flags()
	f.StringVarP(&sizeIn.Instrument, "instrument", "i", "", "currency pair (required)")
	f.Float64Var(&sizeIn.EntryPrice, "entry", 0, "entry price (required)")
	f.Float64Var(&sizeIn.StopPrice, "stop", 0, "stop loss price (required)")
	f.Float64Var(&sizeIn.Equity, "equity", 0, "account equity (required)")
	f.Float64Var(&sizeIn.RiskPct, "risk", 1, "percent of equity to risk")
	sizeCmd.MarkFlagRequired("instrument")
	sizeCmd.MarkFlagRequired("entry")
	sizeCmd.MarkFlagRequired("stop")
	sizeCmd.MarkFlagRequired("equity")
}

func runSize(cmd *cobra.Command, args []string) error {
	res, err := risk.Calculate(sizeIn)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lots:      %.2f\n", res.Lots)
	fmt.Fprintf(out, "Stop:      %.1f pips\n", res.StopPips)
	fmt.Fprintf(out, "Budget:    %s (%g%% of %s)\n", pnl.FormatCurrency(res.Budget), sizeIn.RiskPct, pnl.FormatCurrency(sizeIn.Equity))
	fmt.Fprintf(out, "At risk:   %s\n", pnl.FormatCurrency(res.RiskAmount))
	if res.Lots < risk.MinLot {
		fmt.Fprintln(out, "⚠ Stop is too wide for this budget; even a micro lot risks more.")
	}
	return nil
}
