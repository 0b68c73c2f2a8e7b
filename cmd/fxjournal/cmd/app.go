package cmd

import (
	"context"

	"github.com/rustyeddy/fxjournal/client"
	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/server"
)

// journalAPI is what the trade commands need, served either by a local
// repository or by a remote server.
type journalAPI interface {
	List(ctx context.Context, by journal.SortBy) ([]server.TradeView, error)
	Get(ctx context.Context, id string) (server.TradeView, error)
	Add(ctx context.Context, req server.AddTradeRequest) (server.TradeView, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (server.StatsView, error)
	Close() error
}

func openJournal(ctx context.Context) (journalAPI, error) {
	if remoteURL != "" {
		return &remoteJournal{c: client.New(remoteURL, apiToken, log)}, nil
	}
	repo, err := openRepository(ctx)
	if err != nil {
		return nil, err
	}
	return &localJournal{repo: repo}, nil
}

func openRepository(ctx context.Context) (*journal.Repository, error) {
	store, err := journal.OpenStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	repo := journal.NewRepository(store, log)
	if err := repo.Load(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}

type localJournal struct {
	repo *journal.Repository
}

func (l *localJournal) List(ctx context.Context, by journal.SortBy) ([]server.TradeView, error) {
	return server.NewTradeViews(l.repo.Sorted(by)), nil
}

func (l *localJournal) Get(ctx context.Context, id string) (server.TradeView, error) {
	t, err := l.repo.Get(id)
	if err != nil {
		return server.TradeView{}, err
	}
	return server.NewTradeView(t), nil
}

func (l *localJournal) Add(ctx context.Context, req server.AddTradeRequest) (server.TradeView, error) {
	t, err := req.Trade()
	if err != nil {
		return server.TradeView{}, err
	}
	added, err := l.repo.Add(ctx, t)
	if err != nil {
		return server.TradeView{}, err
	}
	return server.NewTradeView(added), nil
}

func (l *localJournal) Delete(ctx context.Context, id string) error {
	return l.repo.Delete(ctx, id)
}

func (l *localJournal) Stats(ctx context.Context) (server.StatsView, error) {
	return server.NewStatsView(l.repo.Stats()), nil
}

func (l *localJournal) Close() error {
	return l.repo.Close()
}

type remoteJournal struct {
	c *client.Client
}

func (r *remoteJournal) List(ctx context.Context, by journal.SortBy) ([]server.TradeView, error) {
	return r.c.ListTrades(ctx, by)
}

func (r *remoteJournal) Get(ctx context.Context, id string) (server.TradeView, error) {
	return r.c.GetTrade(ctx, id)
}

func (r *remoteJournal) Add(ctx context.Context, req server.AddTradeRequest) (server.TradeView, error) {
	return r.c.AddTrade(ctx, req)
}

func (r *remoteJournal) Delete(ctx context.Context, id string) error {
	return r.c.DeleteTrade(ctx, id)
}

func (r *remoteJournal) Stats(ctx context.Context) (server.StatsView, error) {
	return r.c.Stats(ctx)
}

func (r *remoteJournal) Close() error {
	return nil
}

func tradesOf(views []server.TradeView) []journal.Trade {
	out := make([]journal.Trade, len(views))
	for i, v := range views {
		out[i] = v.Trade
	}
	return out
}
