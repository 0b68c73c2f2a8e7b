// Package reminder delivers the weekly "check the markets" reminder on the
// configured weekdays.
package reminder

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rustyeddy/fxjournal/config"
)

const (
	Title          = "Trading Reminder 📊"
	DefaultMessage = "Time to check the markets and plan your trades! 📈"
	DefaultHour    = 17
	DefaultMinute  = 0
)

var ErrNoDays = errors.New("please select at least one day for notifications")

// Schedule is a weekly reminder: every listed weekday at Hour:Minute local time.
type Schedule struct {
	Enabled bool
	Days    []time.Weekday
	Hour    int
	Minute  int
	Message string
}

// DefaultSchedule is Monday through Friday at 17:00.
func DefaultSchedule() Schedule {
	return Schedule{
		Enabled: true,
		Days:    []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		Hour:    DefaultHour,
		Minute:  DefaultMinute,
		Message: DefaultMessage,
	}
}

// FromConfig converts the config section. Days are sorted and deduplicated.
func FromConfig(cfg config.ReminderConfig) (Schedule, error) {
	s := Schedule{
		Enabled: cfg.Enabled,
		Hour:    cfg.Hour,
		Minute:  cfg.Minute,
		Message: cfg.Message,
	}
	if s.Message == "" {
		s.Message = DefaultMessage
	}

	seen := map[int]bool{}
	for _, d := range cfg.Days {
		if d < 0 || d > 6 {
			return Schedule{}, fmt.Errorf("invalid weekday %d (0=Sunday .. 6=Saturday)", d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		s.Days = append(s.Days, time.Weekday(d))
	}
	sort.Slice(s.Days, func(i, j int) bool { return s.Days[i] < s.Days[j] })

	if s.Enabled {
		if err := s.Validate(); err != nil {
			return Schedule{}, err
		}
	}
	return s, nil
}

func (s Schedule) Validate() error {
	if len(s.Days) == 0 {
		return ErrNoDays
	}
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23, got %d", s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("minute must be between 0 and 59, got %d", s.Minute)
	}
	return nil
}

// String reads like "Mon, Wed, Fri at 17:00".
func (s Schedule) String() string {
	names := make([]string, len(s.Days))
	for i, d := range s.Days {
		names[i] = d.String()[:3]
	}
	return fmt.Sprintf("%s at %02d:%02d", strings.Join(names, ", "), s.Hour, s.Minute)
}

// NextOccurrence returns the next time day at hour:minute falls at or after
// now, in now's location. If that moment is exactly now or already passed
// today it moves to the same weekday next week.
func NextOccurrence(now time.Time, day time.Weekday, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	days := int(day) - int(now.Weekday())
	if days == 0 && !now.Before(target) {
		days = 7
	}
	if days < 0 {
		days += 7
	}
	return target.AddDate(0, 0, days)
}
