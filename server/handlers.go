package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/market"
	"github.com/rustyeddy/fxjournal/pkg/response"
)

// AddTradeRequest is the body of POST /api/v1/trades.
type AddTradeRequest struct {
	Instrument string   `json:"instrument" binding:"required"`
	TradeType  string   `json:"tradeType"`
	EntryPrice float64  `json:"entryPrice" binding:"required"`
	ExitPrice  *float64 `json:"exitPrice"`
	StopLoss   *float64 `json:"stopLoss"`
	LotSize    float64  `json:"lotSize" binding:"required"`
	Timeframe  string   `json:"timeframe"`
	EntryDate  string   `json:"entryDate"`
	EntryTime  string   `json:"entryTime"`
	Notes      string   `json:"notes"`
	Strategy   string   `json:"strategy"`
}

// Trade converts the request into an unsaved trade.
func (r AddTradeRequest) Trade() (journal.Trade, error) {
	side, err := market.ParseSide(r.TradeType)
	if err != nil {
		return journal.Trade{}, err
	}
	tf, err := market.ParseTimeframe(r.Timeframe)
	if err != nil {
		return journal.Trade{}, err
	}
	return journal.Trade{
		Instrument: r.Instrument,
		TradeType:  side,
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		StopLoss:   r.StopLoss,
		LotSize:    r.LotSize,
		Timeframe:  tf,
		EntryDate:  r.EntryDate,
		EntryTime:  r.EntryTime,
		Notes:      r.Notes,
		Strategy:   r.Strategy,
	}, nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"trades": len(s.repo.Trades()),
	})
}

// listTrades handles GET /api/v1/trades?sort=date|earliest|profit|loss
func (s *Server) listTrades(c *gin.Context) {
	by, err := journal.ParseSortBy(c.Query("sort"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, NewTradeViews(s.repo.Sorted(by)))
}

func (s *Server) getTrade(c *gin.Context) {
	t, err := s.repo.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	response.Success(c, NewTradeView(t))
}

func (s *Server) addTrade(c *gin.Context) {
	var req AddTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := req.Trade()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	added, err := s.repo.Add(c.Request.Context(), t)
	if err != nil {
		s.fail(c, err)
		return
	}
	response.Created(c, NewTradeView(added))
}

func (s *Server) deleteTrade(c *gin.Context) {
	if err := s.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id")})
}

func (s *Server) stats(c *gin.Context) {
	response.Success(c, NewStatsView(s.repo.Stats()))
}

func (s *Server) summary(c *gin.Context) {
	response.Success(c, s.repo.Summary())
}

// fail maps journal errors onto the envelope.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, journal.ErrTradeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, journal.ErrInvalidTrade):
		response.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.InternalError(c, "storage error")
	}
}
