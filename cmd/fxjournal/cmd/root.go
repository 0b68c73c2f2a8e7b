package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/config"
	"github.com/rustyeddy/fxjournal/internal/logger"
)

var (
	cfgFile   string
	remoteURL string
	apiToken  string
	logLevel  string

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fxjournal",
	Short: "A forex trade journal with P&L and pip statistics",
	Long: `fxjournal records forex trades and reports pips, P&L and performance
statistics for them.

It provides tools for:
  - Recording trades and reviewing the history in several orders
  - Win rate, profit factor, best/worst trade and average pips
  - Exporting the journal to CSV or Org-mode
  - Serving the journal over HTTP with a live statistics stream
  - Weekly "check the markets" reminders

Trades are kept in a JSON file by default; sqlite, redis and postgres are
available through the storage section of the config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "use a running fxjournal server at this URL instead of local storage")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "bearer token for --remote")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logger.level: debug|info|warn|error")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Logger.Level = logLevel
	}
	cfg = c

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.File)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log = l
	return nil
}
