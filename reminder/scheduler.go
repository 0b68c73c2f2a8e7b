package reminder

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is the scheduled reminder for one weekday.
type Entry struct {
	ID   string       `json:"id"`
	Day  time.Weekday `json:"day"`
	Next time.Time    `json:"next"`
}

type Scheduler struct {
	schedule Schedule
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time

	mu      sync.Mutex
	entries []Entry
}

// NewScheduler builds one entry per scheduled weekday. A disabled schedule
// yields a scheduler with no entries.
func NewScheduler(s Schedule, n Notifier, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sc := &Scheduler{
		schedule: s,
		notifier: n,
		log:      log,
		now:      time.Now,
		after:    time.After,
	}
	if !s.Enabled {
		return sc, nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sc.plan()
	return sc, nil
}

func (s *Scheduler) plan() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
	for _, d := range s.schedule.Days {
		s.entries = append(s.entries, Entry{
			ID:   uuid.NewString(),
			Day:  d,
			Next: NextOccurrence(now, d, s.schedule.Hour, s.schedule.Minute),
		})
	}
}

// Entries returns the scheduled entries, soonest first.
func (s *Scheduler) Entries() []Entry {
	s.mu.Lock()
	out := append([]Entry(nil), s.entries...)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Next.Before(out[j].Next) })
	return out
}

// Run delivers reminders until ctx is cancelled. Each entry repeats weekly.
// Delivery errors are logged and the entry still moves to next week.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.schedule.Enabled {
		s.log.Info("reminders disabled")
		return nil
	}
	s.log.Info("reminder scheduler started", zap.String("schedule", s.schedule.String()))

	for {
		idx, next := s.soonest()
		wait := next.Sub(s.now())
		if wait < 0 {
			wait = 0
		}

		select {
		case <-ctx.Done():
			s.log.Info("reminder scheduler stopped")
			return nil
		case <-s.after(wait):
		}

		s.mu.Lock()
		e := s.entries[idx]
		s.entries[idx].Next = e.Next.AddDate(0, 0, 7)
		s.mu.Unlock()

		r := Reminder{
			ID:    e.ID,
			Title: Title,
			Body:  s.schedule.Message,
			At:    e.Next,
		}
		if err := s.notifier.Notify(ctx, r); err != nil {
			s.log.Error("deliver reminder", zap.String("id", e.ID), zap.Error(err))
			continue
		}
		s.log.Debug("reminder delivered", zap.String("id", e.ID), zap.Stringer("day", e.Day))
	}
}

func (s *Scheduler) soonest() (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := 0
	for i, e := range s.entries {
		if e.Next.Before(s.entries[idx].Next) {
			idx = i
		}
	}
	return idx, s.entries[idx].Next
}
