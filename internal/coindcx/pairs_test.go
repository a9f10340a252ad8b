package coindcx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackPublicPair(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BTCUSDT", "B-BTC_USDT"},
		{"ethusdt", "B-ETH_USDT"},
		{"ETHBTC", "B-ETH_BTC"},
		{"BTCINR", "I-BTC_INR"},
		{"SOMETHING", "B-SOMETHING"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackPublicPair(tt.in), "pair %s", tt.in)
	}
}

func TestFormatPublicPairFromMarketDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/exchange/v1/markets_details", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"coindcx_name":"BTCUSDT","symbol":"BTCUSDT","pair":"KC-BTC_USDT"}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("", "", WithBaseURL(srv.URL), WithPublicURL(srv.URL))
	assert.Equal(t, "B-BTC_USDT", c.formatPublicPair(context.Background(), "BTCUSDT"))
}

func TestFormatPublicPairAlreadyFormatted(t *testing.T) {
	// Must not hit the network at all.
	c := NewClient("", "", WithBaseURL("http://127.0.0.1:1"), WithPublicURL("http://127.0.0.1:1"))
	assert.Equal(t, "B-BTC_USDT", c.formatPublicPair(context.Background(), "B-BTC_USDT"))
}

func TestFormatPublicPairFallsBackWhenUnreachable(t *testing.T) {
	c := NewClient("", "", WithBaseURL("http://127.0.0.1:1"), WithPublicURL("http://127.0.0.1:1"))
	assert.Equal(t, "B-ETH_USDT", c.formatPublicPair(context.Background(), "ETHUSDT"))
}
