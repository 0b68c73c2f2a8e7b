package reminder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/config"
)

type fakeTelegram struct {
	mu   sync.Mutex
	sent []map[string]string
}

func (f *fakeTelegram) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		var result any
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			result = map[string]any{"id": 1, "is_bot": true, "first_name": "fx", "username": "fxjournal_bot"}
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			f.mu.Lock()
			f.sent = append(f.sent, map[string]string{
				"chat_id":    r.PostForm.Get("chat_id"),
				"text":       r.PostForm.Get("text"),
				"parse_mode": r.PostForm.Get("parse_mode"),
			})
			f.mu.Unlock()
			result = map[string]any{
				"message_id": 7,
				"date":       0,
				"chat":       map[string]any{"id": 42, "type": "private"},
				"text":       r.PostForm.Get("text"),
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error_code": 404, "description": "Not Found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": result})
	}
}

func TestTelegramNotifier(t *testing.T) {
	t.Parallel()

	fake := &fakeTelegram{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	n, err := NewTelegramNotifierWithEndpoint(
		config.TelegramConfig{BotToken: "TOKEN", ChatID: 42, RateLimit: 100},
		server.URL+"/bot%s/%s", server.Client(), zap.NewNop(),
	)
	require.NoError(t, err)

	err = n.Notify(context.Background(), Reminder{ID: "r1", Title: Title, Body: DefaultMessage})
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "42", fake.sent[0]["chat_id"])
	assert.Equal(t, "Markdown", fake.sent[0]["parse_mode"])
	assert.Contains(t, fake.sent[0]["text"], "Trading Reminder 📊")
	assert.Contains(t, fake.sent[0]["text"], DefaultMessage)
}

func TestTelegramNotifierRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewTelegramNotifier(config.TelegramConfig{ChatID: 1}, nil)
	assert.Error(t, err)

	_, err = NewTelegramNotifier(config.TelegramConfig{BotToken: "x"}, nil)
	assert.Error(t, err)
}

func TestTelegramNotifierCancelledContext(t *testing.T) {
	t.Parallel()

	fake := &fakeTelegram{}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	n, err := NewTelegramNotifierWithEndpoint(
		config.TelegramConfig{BotToken: "TOKEN", ChatID: 42, RateLimit: 0.001},
		server.URL+"/bot%s/%s", server.Client(), nil,
	)
	require.NoError(t, err)

	// the first message uses the burst, the second has to wait far longer
	// than the context allows
	require.NoError(t, n.Notify(context.Background(), Reminder{Title: Title}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, n.Notify(ctx, Reminder{Title: Title}))
}
