package coindcx

import "github.com/shopspring/decimal"

// OrderSide is the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderType selects the order execution mode.
type OrderType string

const (
	MarketOrder OrderType = "market_order"
	LimitOrder  OrderType = "limit_order"
	StopLimit   OrderType = "stop_limit"
)

// OrderParams describes a new order. Zero-valued optional fields are left
// out of the request payload entirely.
type OrderParams struct {
	Side          OrderSide
	OrderType     OrderType
	Market        string          // e.g. "BTCUSDT"
	Price         decimal.Decimal // price_per_unit, required for limit orders
	Quantity      decimal.Decimal
	TotalQuantity decimal.Decimal // quote-side quantity for market orders
	StopPrice     decimal.Decimal // trigger price for stop_limit orders
	ClientOrderID string
}

// CandleParams describes a candlestick query. StartTime/EndTime are
// millisecond epochs; a zero value means no explicit range.
type CandleParams struct {
	Pair      string
	Interval  string // 1m, 5m, 15m, 30m, 1h, 2h, 4h, 6h, 8h, 1d, 3d, 1w, 1M
	StartTime int64
	EndTime   int64
	Limit     int
}

// OrderHistoryParams filters the order history query. Zero values mean
// unfiltered.
type OrderHistoryParams struct {
	Market string
	Side   OrderSide
	From   int64 // millisecond epoch
	To     int64
	Limit  int
}
