package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dcxlabs/coindcx-mcp/internal/coindcx"
)

type handlers struct {
	client *coindcx.Client
}

// resultJSON renders a successful exchange response, pretty-printed so the
// assistant gets readable output.
func resultJSON(raw json.RawMessage) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return mcp.NewToolResultText(string(raw)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// resultError maps the client's error taxonomy onto tool error results. The
// wording keeps "exchange rejected the request" and "could not reach the
// exchange" distinguishable so the caller can pick a corrective action.
func resultError(name string, err error) (*mcp.CallToolResult, error) {
	var (
		exchangeErr  *coindcx.ExchangeError
		transportErr *coindcx.TransportError
		decodeErr    *coindcx.DecodeError
	)

	switch {
	case errors.Is(err, coindcx.ErrMissingCredentials):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s: CoinDCX API credentials not configured. Set COINDCX_API_KEY and COINDCX_SECRET_KEY.", name)), nil

	case errors.As(err, &exchangeErr):
		if exchangeErr.RateLimited() {
			return mcp.NewToolResultError(fmt.Sprintf(
				"%s: exchange rate limit exceeded (HTTP 429): %s. Retry later.", name, exchangeErr.Message)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s: exchange rejected the request (HTTP %d): %s", name, exchangeErr.StatusCode, exchangeErr.Message)), nil

	case errors.As(err, &transportErr):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s: could not reach the exchange: %v", name, transportErr.Err)), nil

	case errors.As(err, &decodeErr):
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s: exchange returned malformed JSON: %v", name, decodeErr.Err)), nil
	}

	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", name, err)), nil
}

func (h *handlers) finish(name string, raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		log.Debug().Err(err).Str("tool", name).Msg("Tool call failed")
		return resultError(name, err)
	}
	return resultJSON(raw)
}

func (h *handlers) getTicker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.client.GetTicker(ctx)
	return h.finish("get_ticker", raw, err)
}

func (h *handlers) getMarkets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.client.GetMarkets(ctx)
	return h.finish("get_markets", raw, err)
}

func (h *handlers) getMarketDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pair, err := req.RequireString("pair")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.client.GetMarketDetails(ctx, pair)
	return h.finish("get_market_details", raw, err)
}

func (h *handlers) getTrades(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pair, err := req.RequireString("pair")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.client.GetTrades(ctx, pair, req.GetInt("limit", coindcx.DefaultTradeLimit))
	return h.finish("get_trades", raw, err)
}

func (h *handlers) getOrderBook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pair, err := req.RequireString("pair")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.client.GetOrderBook(ctx, pair)
	return h.finish("get_order_book", raw, err)
}

func (h *handlers) getCandles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pair, err := req.RequireString("pair")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	interval, err := req.RequireString("interval")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Default to the last 24 hours when the caller gives no range.
	now := time.Now().UnixMilli()
	params := coindcx.CandleParams{
		Pair:      pair,
		Interval:  interval,
		StartTime: int64(req.GetFloat("start_time", float64(now-24*time.Hour.Milliseconds()))),
		EndTime:   int64(req.GetFloat("end_time", float64(now))),
		Limit:     req.GetInt("limit", coindcx.DefaultCandleLimit),
	}

	raw, err := h.client.GetCandles(ctx, params)
	return h.finish("get_candles", raw, err)
}

func (h *handlers) getBalances(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.client.GetBalances(ctx)
	return h.finish("get_balances", raw, err)
}

func (h *handlers) getUserInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.client.GetUserInfo(ctx)
	return h.finish("get_user_info", raw, err)
}

func (h *handlers) createOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	side, err := req.RequireString("side")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	orderType, err := req.RequireString("order_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	market, err := req.RequireString("market")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := coindcx.OrderParams{
		Side:          coindcx.OrderSide(side),
		OrderType:     coindcx.OrderType(orderType),
		Market:        market,
		Price:         decimal.NewFromFloat(req.GetFloat("price", 0)),
		Quantity:      decimal.NewFromFloat(req.GetFloat("quantity", 0)),
		TotalQuantity: decimal.NewFromFloat(req.GetFloat("total_quantity", 0)),
		StopPrice:     decimal.NewFromFloat(req.GetFloat("stop_price", 0)),
		ClientOrderID: req.GetString("client_order_id", ""),
	}

	raw, err := h.client.CreateOrder(ctx, params)
	return h.finish("create_order", raw, err)
}

func (h *handlers) getOrderStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := req.RequireString("order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.client.GetOrderStatus(ctx, orderID)
	return h.finish("get_order_status", raw, err)
}

func (h *handlers) cancelOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := req.RequireString("order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.client.CancelOrder(ctx, orderID)
	return h.finish("cancel_order", raw, err)
}

func (h *handlers) getActiveOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := h.client.GetActiveOrders(ctx,
		req.GetString("market", ""),
		coindcx.OrderSide(req.GetString("side", "")),
	)
	return h.finish("get_active_orders", raw, err)
}

func (h *handlers) getOrderHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := coindcx.OrderHistoryParams{
		Market: req.GetString("market", ""),
		Side:   coindcx.OrderSide(req.GetString("side", "")),
		From:   int64(req.GetFloat("from_timestamp", 0)),
		To:     int64(req.GetFloat("to_timestamp", 0)),
		Limit:  req.GetInt("limit", coindcx.DefaultHistoryLimit),
	}
	raw, err := h.client.GetOrderHistory(ctx, params)
	return h.finish("get_order_history", raw, err)
}
