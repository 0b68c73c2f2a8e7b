package reminder

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rustyeddy/fxjournal/config"
)

// TelegramNotifier sends reminders to a chat through a bot.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewTelegramNotifier(cfg config.TelegramConfig, log *zap.Logger) (*TelegramNotifier, error) {
	return NewTelegramNotifierWithEndpoint(cfg, tgbotapi.APIEndpoint, &http.Client{}, log)
}

// NewTelegramNotifierWithEndpoint talks to endpoint, a format string like
// tgbotapi.APIEndpoint ("https://api.telegram.org/bot%s/%s").
func NewTelegramNotifierWithEndpoint(cfg config.TelegramConfig, endpoint string, client *http.Client, log *zap.Logger) (*TelegramNotifier, error) {
	if cfg.BotToken == "" {
		return nil, errors.New("telegram bot token is required")
	}
	if cfg.ChatID == 0 {
		return nil, errors.New("telegram chat id is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	log.Info("telegram bot connected", zap.String("username", bot.Self.UserName))

	// rate.Limit is messages per second.
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &TelegramNotifier{
		bot:     bot,
		chatID:  cfg.ChatID,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, r Reminder) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("*%s*\n%s", r.Title, r.Body))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
