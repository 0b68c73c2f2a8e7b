package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/reminder"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the weekly trading reminders",
	Long: `Send a reminder on each configured weekday at the configured time.

The schedule comes from the reminder section of the config file:

  reminder:
    enabled: true
    days: [1, 2, 3, 4, 5]   # 0 = Sunday
    hour: 17
    minute: 0
    notifier: log           # or telegram

Use --list to print the upcoming reminders and exit.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

var remindList bool

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().BoolVar(&remindList, "list", false, "print the next reminders and exit")
}

func newScheduler() (*reminder.Scheduler, error) {
	sch, err := reminder.FromConfig(cfg.Reminder)
	if err != nil {
		return nil, err
	}

	var n reminder.Notifier
	switch cfg.Reminder.Notifier {
	case "telegram":
		tn, err := reminder.NewTelegramNotifier(cfg.Telegram, log)
		if err != nil {
			return nil, err
		}
		n = tn
	default:
		n = reminder.NewLogNotifier(log)
	}
	return reminder.NewScheduler(sch, n, log)
}

func runRemind(cmd *cobra.Command, args []string) error {
	if !cfg.Reminder.Enabled {
		fmt.Fprintln(cmd.OutOrStdout(), "Reminders are disabled (set reminder.enabled: true).")
		return nil
	}

	sched, err := newScheduler()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tNEXT")
	for _, e := range sched.Entries() {
		fmt.Fprintf(w, "%s\t%s\n", e.Day, e.Next.Format("Mon 2006-01-02 15:04 MST"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if remindList {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, "\nWaiting for reminders. Press Ctrl+C to stop.")
	return sched.Run(ctx)
}
