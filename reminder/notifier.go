package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Reminder is one delivery of a scheduled entry.
type Reminder struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, r Reminder) error

func (f NotifierFunc) Notify(ctx context.Context, r Reminder) error {
	return f(ctx, r)
}

// LogNotifier writes reminders to the log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, r Reminder) error {
	n.log.Info(r.Title,
		zap.String("id", r.ID),
		zap.String("body", r.Body),
		zap.Time("at", r.At),
	)
	return nil
}
