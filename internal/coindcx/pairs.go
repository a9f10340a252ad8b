package coindcx

import (
	"context"
	"encoding/json"
	"strings"
)

// marketDetail is the subset of a /exchange/v1/markets_details record used
// for pair lookup. Full records pass through to callers untouched.
type marketDetail struct {
	CoinDCXName string `json:"coindcx_name"`
	Symbol      string `json:"symbol"`
	Pair        string `json:"pair"`
}

// matches reports whether this record is the one the user asked for, under
// any of the aliases the exchange publishes for a market.
func (d marketDetail) matches(pair string) bool {
	target := strings.ToUpper(pair)
	if strings.ToUpper(d.CoinDCXName) == target || strings.ToUpper(d.Symbol) == target {
		return true
	}
	dp := strings.ToUpper(d.Pair)
	return dp == "KC-"+strings.Replace(target, "USDT", "_USDT", 1) ||
		dp == "KC-"+strings.Replace(target, "BTC", "_BTC", 1)
}

// formatPublicPair translates an exchange symbol like BTCUSDT into the
// ecode-prefixed form the public market-data API expects (B-BTC_USDT).
// Market details are consulted first because they carry the authoritative
// pair string; the suffix fallback keeps lookups working when that call
// fails.
func (c *Client) formatPublicPair(ctx context.Context, pair string) string {
	// Already in B-BTC_USDT form.
	if strings.Contains(pair, "-") {
		return pair
	}

	if raw, err := c.getPublic(ctx, c.baseURL+"/exchange/v1/markets_details", nil); err == nil {
		var details []marketDetail
		if json.Unmarshal(raw, &details) == nil {
			for _, d := range details {
				if !d.matches(pair) {
					continue
				}
				if strings.HasPrefix(d.Pair, "KC-") {
					return "B-" + strings.TrimPrefix(d.Pair, "KC-")
				}
				if d.Pair != "" {
					return d.Pair
				}
			}
		}
	}

	return fallbackPublicPair(pair)
}

// fallbackPublicPair formats common quote currencies without a details
// lookup.
func fallbackPublicPair(pair string) string {
	p := strings.ToUpper(pair)
	switch {
	case strings.HasSuffix(p, "USDT"):
		return "B-" + strings.TrimSuffix(p, "USDT") + "_USDT"
	case strings.HasSuffix(p, "BTC"):
		return "B-" + strings.TrimSuffix(p, "BTC") + "_BTC"
	case strings.HasSuffix(p, "INR"):
		return "I-" + strings.TrimSuffix(p, "INR") + "_INR"
	default:
		return "B-" + p
	}
}
