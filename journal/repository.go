package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/pkg/id"
	"github.com/rustyeddy/fxjournal/pnl"
)

// Event is sent to subscribers after the trade list changes.
type Event struct {
	Kind  string // "add" or "delete"
	Trade Trade
}

// Repository holds the process-wide trade list. Every mutation is written
// to the Store before the in-memory list is replaced.
type Repository struct {
	mu     sync.RWMutex
	store  Store
	log    *zap.Logger
	now    func() time.Time
	trades []Trade

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

func NewRepository(store Store, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{
		store: store,
		log:   log,
		now:   time.Now,
		subs:  make(map[chan Event]struct{}),
	}
}

// Load replaces the in-memory list with what the store holds.
func (r *Repository) Load(ctx context.Context) error {
	trades, err := r.store.Load(ctx)
	if err != nil {
		r.log.Error("load trades", zap.Error(err))
		return fmt.Errorf("load trades: %w", err)
	}

	r.mu.Lock()
	r.trades = trades
	r.mu.Unlock()

	r.log.Debug("trades loaded", zap.Int("count", len(trades)))
	return nil
}

// Add fills defaults, validates and appends t. The stored trade is returned.
func (r *Repository) Add(ctx context.Context, t Trade) (Trade, error) {
	now := r.now()
	t = t.withDefaults(now)
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}
	t.ID = id.NewAt(now)
	t.CreatedAt = now.UTC()

	r.mu.Lock()
	next := make([]Trade, len(r.trades), len(r.trades)+1)
	copy(next, r.trades)
	next = append(next, t)
	if err := r.store.Save(ctx, next); err != nil {
		r.mu.Unlock()
		r.log.Error("save trades", zap.String("op", "add"), zap.Error(err))
		return Trade{}, fmt.Errorf("save trades: %w", err)
	}
	r.trades = next
	r.mu.Unlock()

	r.log.Info("trade added",
		zap.String("id", t.ID),
		zap.String("instrument", t.Instrument),
		zap.String("side", string(t.TradeType)),
	)
	r.publish(Event{Kind: "add", Trade: t})
	return t, nil
}

// Delete removes the trade with the given id.
func (r *Repository) Delete(ctx context.Context, tradeID string) error {
	r.mu.Lock()
	idx := -1
	for i, t := range r.trades {
		if t.ID == tradeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return fmt.Errorf("trade %q: %w", tradeID, ErrTradeNotFound)
	}

	removed := r.trades[idx]
	next := make([]Trade, 0, len(r.trades)-1)
	next = append(next, r.trades[:idx]...)
	next = append(next, r.trades[idx+1:]...)
	if err := r.store.Save(ctx, next); err != nil {
		r.mu.Unlock()
		r.log.Error("save trades", zap.String("op", "delete"), zap.Error(err))
		return fmt.Errorf("save trades: %w", err)
	}
	r.trades = next
	r.mu.Unlock()

	r.log.Info("trade deleted", zap.String("id", tradeID))
	r.publish(Event{Kind: "delete", Trade: removed})
	return nil
}

func (r *Repository) Get(tradeID string) (Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.trades {
		if t.ID == tradeID {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrTradeNotFound)
}

// Trades returns a copy of the list in insertion order.
func (r *Repository) Trades() []Trade {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Trade(nil), r.trades...)
}

func (r *Repository) Sorted(by SortBy) []Trade {
	return Sort(r.Trades(), by)
}

func (r *Repository) Find(f Filter) []Trade {
	return f.Apply(r.Trades())
}

func (r *Repository) Stats() pnl.Stats {
	return Stats(r.Trades())
}

func (r *Repository) Summary() pnl.Summary {
	return r.Stats().Summary()
}

// Subscribe returns a channel of change events and a cancel func. Events
// are dropped for subscribers that are not keeping up.
func (r *Repository) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	r.subMu.Lock()
	r.subs[ch] = struct{}{}
	r.subMu.Unlock()

	return ch, func() {
		r.subMu.Lock()
		defer r.subMu.Unlock()
		if _, ok := r.subs[ch]; ok {
			delete(r.subs, ch)
			close(ch)
		}
	}
}

func (r *Repository) publish(ev Event) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- ev:
		default:
			r.log.Warn("dropping event for slow subscriber", zap.String("kind", ev.Kind))
		}
	}
}

func (r *Repository) Close() error {
	r.subMu.Lock()
	for ch := range r.subs {
		delete(r.subs, ch)
		close(ch)
	}
	r.subMu.Unlock()
	return r.store.Close()
}
