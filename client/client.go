// Package client talks to a running fxjournal server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/pkg/response"
	"github.com/rustyeddy/fxjournal/pnl"
	"github.com/rustyeddy/fxjournal/server"
)

const apiPrefix = "/api/v1"

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (code %d): %s", e.Status, e.Code, e.Message)
}

// Unwrap maps statuses back onto journal errors so callers can use errors.Is
// the same way for local and remote journals.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return journal.ErrTradeNotFound
	case http.StatusBadRequest:
		return journal.ErrInvalidTrade
	}
	return nil
}

type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// New returns a client for baseURL. token, if set, is sent as a bearer token.
func New(baseURL, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Accept", "application/json")
	if token != "" {
		rc.SetAuthToken(token)
	}
	return &Client{http: rc, log: log}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(&response.Response{}).
		SetError(&response.Response{})
	if body != nil {
		req.SetBody(body)
	}

	c.log.Debug("executing request", zap.String("method", method), zap.String("path", path))
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Message: resp.Status()}
		if env, ok := resp.Error().(*response.Response); ok && env.Message != "" {
			apiErr.Code = env.Code
			apiErr.Message = env.Message
		}
		return apiErr
	}

	env, ok := resp.Result().(*response.Response)
	if !ok {
		return errors.New("unexpected response body")
	}
	if err := env.Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) ListTrades(ctx context.Context, sort journal.SortBy) ([]server.TradeView, error) {
	path := apiPrefix + "/trades"
	if sort != "" {
		path += "?sort=" + url.QueryEscape(string(sort))
	}
	var views []server.TradeView
	if err := c.do(ctx, http.MethodGet, path, nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (c *Client) GetTrade(ctx context.Context, id string) (server.TradeView, error) {
	var view server.TradeView
	err := c.do(ctx, http.MethodGet, apiPrefix+"/trades/"+url.PathEscape(id), nil, &view)
	return view, err
}

func (c *Client) AddTrade(ctx context.Context, req server.AddTradeRequest) (server.TradeView, error) {
	var view server.TradeView
	err := c.do(ctx, http.MethodPost, apiPrefix+"/trades", req, &view)
	return view, err
}

func (c *Client) DeleteTrade(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, apiPrefix+"/trades/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Stats(ctx context.Context) (server.StatsView, error) {
	var view server.StatsView
	err := c.do(ctx, http.MethodGet, apiPrefix+"/stats", nil, &view)
	return view, err
}

func (c *Client) Summary(ctx context.Context) (pnl.Summary, error) {
	var sum pnl.Summary
	err := c.do(ctx, http.MethodGet, apiPrefix+"/summary", nil, &sum)
	return sum, err
}
