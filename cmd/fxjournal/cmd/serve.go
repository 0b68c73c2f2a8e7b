package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal over HTTP",
	Long: `Serve the journal API on server.addr.

Routes:
  GET    /health
  GET    /api/v1/trades?sort=date|earliest|profit|loss
  POST   /api/v1/trades
  GET    /api/v1/trades/:id
  DELETE /api/v1/trades/:id
  GET    /api/v1/stats
  GET    /api/v1/summary
  GET    /api/v1/ws       (websocket, live statistics)

When server.jwt_secret is set, /api/v1 requires a bearer token; mint one
with "fxjournal token".`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr      string
	serveReminders bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveReminders, "reminders", false, "also run the reminder scheduler")
}

func runServe(cmd *cobra.Command, args []string) error {
	if remoteURL != "" {
		return errors.New("serve uses local storage; drop --remote")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	sc := cfg.Server
	if serveAddr != "" {
		sc.Addr = serveAddr
	}
	gin.SetMode(sc.Mode)

	if serveReminders {
		sched, err := newScheduler()
		if err != nil {
			return err
		}
		go func() {
			if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("reminder scheduler stopped", zap.Error(err))
			}
		}()
	}

	return server.New(repo, sc, log).Run(ctx)
}
