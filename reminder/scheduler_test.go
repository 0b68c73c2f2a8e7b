package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu    sync.Mutex
	got   []Reminder
	limit int
	stop  context.CancelFunc
	err   error
}

func (r *recorder) Notify(ctx context.Context, rem Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, rem)
	if len(r.got) >= r.limit {
		r.stop()
	}
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

// newTestScheduler runs on a frozen clock where every wait completes
// immediately until rec has seen its limit.
func newTestScheduler(t *testing.T, s Schedule, rec *recorder) (*Scheduler, *[]time.Duration) {
	t.Helper()

	sc, err := NewScheduler(s, nil, zap.NewNop())
	require.NoError(t, err)

	waits := &[]time.Duration{}
	sc.notifier = rec
	sc.now = func() time.Time { return monday(10, 0) }
	sc.after = func(d time.Duration) <-chan time.Time {
		*waits = append(*waits, d)
		if rec.count() >= rec.limit {
			return nil
		}
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}
	sc.plan()
	return sc, waits
}

func TestSchedulerEntries(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	s.Days = []time.Weekday{time.Friday, time.Monday, time.Sunday}

	sc, _ := newTestScheduler(t, s, &recorder{})
	entries := sc.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, time.Monday, entries[0].Day)
	assert.Equal(t, monday(17, 0), entries[0].Next)
	assert.Equal(t, time.Friday, entries[1].Day)
	assert.Equal(t, time.Sunday, entries[2].Day)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestSchedulerRunDeliversWeekly(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := DefaultSchedule()
	s.Days = []time.Weekday{time.Monday, time.Wednesday}
	s.Message = "plan the week"

	rec := &recorder{limit: 3, stop: cancel}
	sc, waits := newTestScheduler(t, s, rec)

	require.NoError(t, sc.Run(ctx))
	require.Len(t, rec.got, 3)

	assert.Equal(t, monday(17, 0), rec.got[0].At)
	assert.Equal(t, monday(17, 0).AddDate(0, 0, 2), rec.got[1].At)
	assert.Equal(t, monday(17, 0).AddDate(0, 0, 7), rec.got[2].At)
	assert.Equal(t, rec.got[0].ID, rec.got[2].ID)

	for _, r := range rec.got {
		assert.Equal(t, "Trading Reminder 📊", r.Title)
		assert.Equal(t, "plan the week", r.Body)
	}

	assert.Equal(t, 7*time.Hour, (*waits)[0])

	// Monday has moved two weeks out, Wednesday one.
	entries := sc.Entries()
	assert.Equal(t, monday(17, 0).AddDate(0, 0, 9), entries[0].Next)
	assert.Equal(t, monday(17, 0).AddDate(0, 0, 14), entries[1].Next)
}

func TestSchedulerRunContinuesAfterDeliveryError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{limit: 2, stop: cancel, err: errors.New("offline")}
	sc, _ := newTestScheduler(t, DefaultSchedule(), rec)

	require.NoError(t, sc.Run(ctx))
	assert.Len(t, rec.got, 2)
}

func TestSchedulerDisabled(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	s.Enabled = false
	s.Days = nil

	sc, err := NewScheduler(s, NewLogNotifier(zap.NewNop()), nil)
	require.NoError(t, err)
	assert.Empty(t, sc.Entries())
	assert.NoError(t, sc.Run(context.Background()))
}

func TestNewSchedulerRejectsEmptyDays(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	s.Days = nil
	_, err := NewScheduler(s, NewLogNotifier(zap.NewNop()), nil)
	assert.True(t, errors.Is(err, ErrNoDays))
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	t.Parallel()

	sc, err := NewScheduler(DefaultSchedule(), NewLogNotifier(zap.NewNop()), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sc.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var got Reminder
	n := NotifierFunc(func(ctx context.Context, r Reminder) error {
		got = r
		return nil
	})
	require.NoError(t, n.Notify(context.Background(), Reminder{ID: "x"}))
	assert.Equal(t, "x", got.ID)
}
