package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// StreamMessage is pushed on the stats stream.
type StreamMessage struct {
	Type    string    `json:"type"`            // "stats"
	Event   string    `json:"event,omitempty"` // add, delete; empty on connect
	TradeID string    `json:"tradeId,omitempty"`
	Data    StatsView `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamStats sends the current stats on connect and again after every
// change to the journal, until the client goes away or the server stops.
func (s *Server) streamStats(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := s.repo.Subscribe(16)
	defer cancel()

	// The read side only handles control frames; it ends when the peer closes.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Debug("websocket read", zap.Error(err))
				}
				return
			}
		}
	}()

	send := func(msg StreamMessage) error {
		msg.Type = "stats"
		msg.Data = NewStatsView(s.repo.Stats())
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(msg)
	}

	if err := send(StreamMessage{}); err != nil {
		return
	}
	s.log.Debug("stats stream opened", zap.String("remote", c.ClientIP()))

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-s.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-gone:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := send(StreamMessage{Event: ev.Kind, TradeID: ev.Trade.ID}); err != nil {
				s.log.Debug("websocket write", zap.Error(err))
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
