package coindcx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the production trade API.
	DefaultBaseURL = "https://api.coindcx.com"
	// DefaultPublicURL is the production market-data API.
	DefaultPublicURL = "https://public.coindcx.com"

	// DefaultTimeout bounds every HTTP call; a stalled request surfaces as
	// a TransportError once it fires.
	DefaultTimeout = 30 * time.Second

	DefaultTradeLimit   = 30
	DefaultCandleLimit  = 100
	DefaultHistoryLimit = 500
)

// Client talks to the CoinDCX REST API. Credentials are immutable after
// construction; a client built without credentials still serves the public
// endpoints and fails private calls with ErrMissingCredentials before any
// request leaves the process.
//
// Every operation is a single stateless request/response round trip. The
// client never retries: transport failures, exchange rejections (including
// HTTP 429), and malformed bodies are all surfaced typed so the caller can
// pick a policy.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	publicURL  string
	httpClient *http.Client
	now        func() time.Time
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the trade API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithPublicURL overrides the market-data API base URL.
func WithPublicURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.publicURL = u
		}
	}
}

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a CoinDCX client. Empty credentials are allowed; only
// private endpoints require them.
func NewClient(apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   DefaultBaseURL,
		publicURL: DefaultPublicURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasCredentials reports whether private endpoints are usable.
func (c *Client) HasCredentials() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// do executes the request and maps the outcome onto the error taxonomy.
// Successful JSON passes through verbatim.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Message:    exchangeMessage(body),
		}
	}

	if !json.Valid(body) {
		return nil, &DecodeError{
			Err:  fmt.Errorf("%d bytes of non-JSON content", len(body)),
			Body: body,
		}
	}

	return json.RawMessage(body), nil
}

// exchangeMessage extracts the message field from a JSON error body, falling
// back to the raw text. CoinDCX mixes both styles across endpoints.
func exchangeMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(bytes.TrimSpace(body))
}

// getPublic issues an unauthenticated GET against the given absolute URL.
func (c *Client) getPublic(ctx context.Context, rawURL string, params url.Values) (json.RawMessage, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return c.do(req)
}

// postPrivate builds and sends a signed request. The payload gains a fresh
// millisecond timestamp, is marshaled exactly once, and those same bytes are
// both signed and transmitted.
func (c *Client) postPrivate(ctx context.Context, path string, payload map[string]any) (json.RawMessage, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	if payload == nil {
		payload = map[string]any{}
	}
	payload["timestamp"] = c.now().UnixMilli()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("coindcx: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-AUTH-APIKEY", c.apiKey)
	req.Header.Set("X-AUTH-SIGNATURE", Sign(c.apiSecret, body))

	log.Debug().Str("path", path).Msg("Sending signed request")
	return c.do(req)
}

// GetTicker returns ticker data for all markets.
func (c *Client) GetTicker(ctx context.Context) (json.RawMessage, error) {
	return c.getPublic(ctx, c.baseURL+"/exchange/ticker", nil)
}

// GetMarkets returns all available market symbols.
func (c *Client) GetMarkets(ctx context.Context) (json.RawMessage, error) {
	return c.getPublic(ctx, c.baseURL+"/exchange/v1/markets", nil)
}

// GetMarketDetails returns the details record for one trading pair, matched
// against the coindcx_name, symbol, and pair aliases the exchange publishes.
// An unknown pair yields an exchange-style error object rather than a Go
// error, mirroring what the exchange itself does for bad symbols.
func (c *Client) GetMarketDetails(ctx context.Context, pair string) (json.RawMessage, error) {
	raw, err := c.getPublic(ctx, c.baseURL+"/exchange/v1/markets_details", nil)
	if err != nil {
		return nil, err
	}
	if pair == "" {
		return raw, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &DecodeError{Err: err, Body: raw}
	}

	for _, entry := range entries {
		var d marketDetail
		if err := json.Unmarshal(entry, &d); err != nil {
			continue
		}
		if d.matches(pair) {
			return entry, nil
		}
	}

	return json.Marshal(map[string]string{
		"error": fmt.Sprintf("Trading pair '%s' not found", pair),
	})
}

// GetTrades returns recent trades for a market from the public data API.
func (c *Client) GetTrades(ctx context.Context, pair string, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultTradeLimit
	}
	params := url.Values{}
	params.Set("pair", c.formatPublicPair(ctx, pair))
	params.Set("limit", strconv.Itoa(limit))
	return c.getPublic(ctx, c.publicURL+"/market_data/trade_history", params)
}

// GetOrderBook returns current bids and asks for a market.
func (c *Client) GetOrderBook(ctx context.Context, pair string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("pair", c.formatPublicPair(ctx, pair))
	return c.getPublic(ctx, c.publicURL+"/market_data/orderbook", params)
}

// GetCandles returns OHLCV data. An explicit time range is only forwarded
// when it falls within the last year and not in the future - the exchange
// silently returns nothing for out-of-range queries. If a forwarded range
// matches no candles, the query is retried unranged and the result annotated
// so the caller knows it got recent data instead.
func (c *Client) GetCandles(ctx context.Context, p CandleParams) (json.RawMessage, error) {
	if p.Limit <= 0 {
		p.Limit = DefaultCandleLimit
	}

	params := url.Values{}
	params.Set("pair", c.formatPublicPair(ctx, p.Pair))
	params.Set("interval", p.Interval)
	params.Set("limit", strconv.Itoa(p.Limit))

	nowMs := c.now().UnixMilli()
	yearAgo := nowMs - 365*24*time.Hour.Milliseconds()
	ranged := p.StartTime >= yearAgo && p.StartTime <= nowMs &&
		p.EndTime > 0 && p.EndTime <= nowMs
	if ranged {
		params.Set("startTime", strconv.FormatInt(p.StartTime, 10))
		params.Set("endTime", strconv.FormatInt(p.EndTime, 10))
	}

	raw, err := c.getPublic(ctx, c.publicURL+"/market_data/candles", params)
	if err != nil || !ranged {
		return raw, err
	}

	var candles []json.RawMessage
	if json.Unmarshal(raw, &candles) != nil || len(candles) > 0 {
		return raw, nil
	}

	params.Del("startTime")
	params.Del("endTime")
	retry, err := c.getPublic(ctx, c.publicURL+"/market_data/candles", params)
	if err != nil {
		return nil, err
	}
	var recent []json.RawMessage
	if json.Unmarshal(retry, &recent) != nil || len(recent) == 0 {
		return raw, nil
	}

	return json.Marshal(map[string]any{
		"data": json.RawMessage(retry),
		"note": fmt.Sprintf("No data found for specified time range (%d to %d). Returning most recent %d candles instead.",
			p.StartTime, p.EndTime, len(recent)),
		"requested_start_time": p.StartTime,
		"requested_end_time":   p.EndTime,
	})
}

// GetBalances returns account balances for all assets.
func (c *Client) GetBalances(ctx context.Context) (json.RawMessage, error) {
	return c.postPrivate(ctx, "/exchange/v1/users/balances", nil)
}

// GetUserInfo returns account information.
func (c *Client) GetUserInfo(ctx context.Context) (json.RawMessage, error) {
	return c.postPrivate(ctx, "/exchange/v1/users/info", nil)
}

// CreateOrder places a new order.
func (c *Client) CreateOrder(ctx context.Context, p OrderParams) (json.RawMessage, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"side":       string(p.Side),
		"order_type": string(p.OrderType),
		"market":     p.Market,
	}
	if !p.Price.IsZero() {
		payload["price_per_unit"] = json.Number(p.Price.String())
	}
	if !p.Quantity.IsZero() {
		payload["quantity"] = json.Number(p.Quantity.String())
	}
	if !p.TotalQuantity.IsZero() {
		payload["total_quantity"] = json.Number(p.TotalQuantity.String())
	}
	if !p.StopPrice.IsZero() {
		payload["stop_price"] = json.Number(p.StopPrice.String())
	}
	if p.ClientOrderID != "" {
		payload["client_order_id"] = p.ClientOrderID
	}

	return c.postPrivate(ctx, "/exchange/v1/orders/create", payload)
}

func (p OrderParams) validate() error {
	switch p.Side {
	case SideBuy, SideSell:
	default:
		return fmt.Errorf("coindcx: invalid order side %q", p.Side)
	}
	switch p.OrderType {
	case MarketOrder, LimitOrder, StopLimit:
	default:
		return fmt.Errorf("coindcx: invalid order type %q", p.OrderType)
	}
	if p.Market == "" {
		return fmt.Errorf("coindcx: market is required")
	}
	if p.OrderType != MarketOrder && p.Price.IsZero() {
		return fmt.Errorf("coindcx: price is required for %s orders", p.OrderType)
	}
	return nil
}

// GetOrderStatus returns the current state of one order.
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.postPrivate(ctx, "/exchange/v1/orders/status", map[string]any{"id": orderID})
}

// CancelOrder cancels an open order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.postPrivate(ctx, "/exchange/v1/orders/cancel", map[string]any{"id": orderID})
}

// GetActiveOrders returns open orders, optionally filtered by market and side.
func (c *Client) GetActiveOrders(ctx context.Context, market string, side OrderSide) (json.RawMessage, error) {
	payload := map[string]any{}
	if market != "" {
		payload["market"] = market
	}
	if side != "" {
		payload["side"] = string(side)
	}
	return c.postPrivate(ctx, "/exchange/v1/orders/active_orders", payload)
}

// GetOrderHistory returns historical orders.
func (c *Client) GetOrderHistory(ctx context.Context, p OrderHistoryParams) (json.RawMessage, error) {
	if p.Limit <= 0 {
		p.Limit = DefaultHistoryLimit
	}
	payload := map[string]any{"limit": p.Limit}
	if p.Market != "" {
		payload["market"] = p.Market
	}
	if p.Side != "" {
		payload["side"] = string(p.Side)
	}
	if p.From > 0 {
		payload["from"] = p.From
	}
	if p.To > 0 {
		payload["to"] = p.To
	}
	return c.postPrivate(ctx, "/exchange/v1/orders", payload)
}
