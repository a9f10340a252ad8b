package coindcx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the HMAC-SHA256 signature CoinDCX expects on private
// endpoints: a lowercase hex digest over the exact bytes of the JSON body
// being transmitted. The body must be marshaled once and the same bytes
// passed here and sent on the wire - re-encoding can reorder keys or change
// whitespace and the exchange verifies byte-exact.
func Sign(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
