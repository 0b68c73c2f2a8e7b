// Package server exposes the journal over HTTP: trade CRUD, statistics and
// a websocket stream of statistics updates.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/config"
	"github.com/rustyeddy/fxjournal/journal"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	repo   *journal.Repository
	cfg    config.ServerConfig
	log    *zap.Logger
	engine *gin.Engine
	http   *http.Server

	done     chan struct{}
	stopOnce sync.Once
}

// New wires the routes. The caller sets the gin mode beforehand.
func New(repo *journal.Repository, cfg config.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		repo: repo,
		cfg:  cfg,
		log:  log,
		done: make(chan struct{}),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	if cfg.JWTSecret != "" {
		v1.Use(authMiddleware(cfg.JWTSecret))
	}
	{
		v1.GET("/trades", s.listTrades)
		v1.POST("/trades", s.addTrade)
		v1.GET("/trades/:id", s.getTrade)
		v1.DELETE("/trades/:id", s.deleteTrade)
		v1.GET("/stats", s.stats)
		v1.GET("/summary", s.summary)
		v1.GET("/ws", s.streamStats)
	}

	s.engine = router
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.http.RegisterOnShutdown(s.stop)
	return s
}

// Handler returns the routed engine, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
