// Package tools exposes the CoinDCX exchange client as MCP tools. Dispatch
// is a static registration of one handler per capability; the host runtime
// drives the protocol over stdio.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dcxlabs/coindcx-mcp/internal/coindcx"
)

// NewServer builds the MCP server with every supported exchange capability
// registered.
func NewServer(client *coindcx.Client, version string) *server.MCPServer {
	s := server.NewMCPServer("coindcx-mcp", version)
	h := &handlers{client: client}

	s.AddTool(mcp.NewTool("get_ticker",
		mcp.WithDescription("Get ticker data for all markets on CoinDCX"),
	), h.getTicker)

	s.AddTool(mcp.NewTool("get_markets",
		mcp.WithDescription("Get all available trading markets on CoinDCX"),
	), h.getMarkets)

	s.AddTool(mcp.NewTool("get_market_details",
		mcp.WithDescription("Get detailed information about a specific trading pair"),
		mcp.WithString("pair",
			mcp.Required(),
			mcp.Description("Trading pair symbol (e.g. 'BTCUSDT')"),
		),
	), h.getMarketDetails)

	s.AddTool(mcp.NewTool("get_trades",
		mcp.WithDescription("Get recent trades for a specific market"),
		mcp.WithString("pair",
			mcp.Required(),
			mcp.Description("Trading pair symbol (e.g. 'BTCUSDT')"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of trades to retrieve (default: 30, max: 5000)"),
		),
	), h.getTrades)

	s.AddTool(mcp.NewTool("get_order_book",
		mcp.WithDescription("Get order book (bids and asks) for a specific market"),
		mcp.WithString("pair",
			mcp.Required(),
			mcp.Description("Trading pair symbol (e.g. 'BTCUSDT')"),
		),
	), h.getOrderBook)

	s.AddTool(mcp.NewTool("get_candles",
		mcp.WithDescription("Get candlestick/OHLCV data for a specific market. "+
			"If start_time/end_time are omitted or out of range, returns the most recent candles."),
		mcp.WithString("pair",
			mcp.Required(),
			mcp.Description("Trading pair symbol (e.g. 'BTCUSDT')"),
		),
		mcp.WithString("interval",
			mcp.Required(),
			mcp.Description("Candle interval"),
			mcp.Enum("1m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "8h", "1d", "3d", "1w", "1M"),
		),
		mcp.WithNumber("start_time",
			mcp.Description("Start timestamp in milliseconds (optional, defaults to 24h ago)"),
		),
		mcp.WithNumber("end_time",
			mcp.Description("End timestamp in milliseconds (optional, defaults to now)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of candles to retrieve (default: 100, max: 1000)"),
		),
	), h.getCandles)

	s.AddTool(mcp.NewTool("get_balances",
		mcp.WithDescription("Get account balances for all assets"),
	), h.getBalances)

	s.AddTool(mcp.NewTool("get_user_info",
		mcp.WithDescription("Get user account information"),
	), h.getUserInfo)

	s.AddTool(mcp.NewTool("create_order",
		mcp.WithDescription("Create a new buy or sell order"),
		mcp.WithString("side",
			mcp.Required(),
			mcp.Description("Order side"),
			mcp.Enum("buy", "sell"),
		),
		mcp.WithString("order_type",
			mcp.Required(),
			mcp.Description("Order type"),
			mcp.Enum("market_order", "limit_order", "stop_limit"),
		),
		mcp.WithString("market",
			mcp.Required(),
			mcp.Description("Trading pair (e.g. 'BTCUSDT')"),
		),
		mcp.WithNumber("price",
			mcp.Description("Price per unit (required for limit orders)"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("Quantity to buy/sell"),
		),
		mcp.WithNumber("total_quantity",
			mcp.Description("Total quantity (for market orders)"),
		),
		mcp.WithNumber("stop_price",
			mcp.Description("Trigger price (for stop_limit orders)"),
		),
		mcp.WithString("client_order_id",
			mcp.Description("Custom order ID for tracking"),
		),
	), h.createOrder)

	s.AddTool(mcp.NewTool("get_order_status",
		mcp.WithDescription("Get status of a specific order"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Order ID to check status for"),
		),
	), h.getOrderStatus)

	s.AddTool(mcp.NewTool("cancel_order",
		mcp.WithDescription("Cancel an existing order"),
		mcp.WithString("order_id",
			mcp.Required(),
			mcp.Description("Order ID to cancel"),
		),
	), h.cancelOrder)

	s.AddTool(mcp.NewTool("get_active_orders",
		mcp.WithDescription("Get all active orders"),
		mcp.WithString("market",
			mcp.Description("Filter by trading pair (optional)"),
		),
		mcp.WithString("side",
			mcp.Description("Filter by order side (optional)"),
			mcp.Enum("buy", "sell"),
		),
	), h.getActiveOrders)

	s.AddTool(mcp.NewTool("get_order_history",
		mcp.WithDescription("Get historical orders"),
		mcp.WithString("market",
			mcp.Description("Filter by trading pair (optional)"),
		),
		mcp.WithString("side",
			mcp.Description("Filter by order side (optional)"),
			mcp.Enum("buy", "sell"),
		),
		mcp.WithNumber("from_timestamp",
			mcp.Description("Start timestamp in milliseconds (optional)"),
		),
		mcp.WithNumber("to_timestamp",
			mcp.Description("End timestamp in milliseconds (optional)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of orders to retrieve (default: 500, max: 1000)"),
		),
	), h.getOrderHistory)

	return s
}
