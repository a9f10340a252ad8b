package coindcx

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredentials is returned by private endpoints when the client was
// built without an API key and secret. It is raised before any network I/O.
var ErrMissingCredentials = errors.New("coindcx: API key and secret not configured")

// TransportError wraps failures that happened before an HTTP response was
// received: DNS lookup, connection refused, timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("coindcx: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExchangeError is a non-2xx response from the exchange, carrying the status
// code and the exchange's own message verbatim.
type ExchangeError struct {
	StatusCode int
	Message    string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("coindcx: API error %d: %s", e.StatusCode, e.Message)
}

// RateLimited reports whether the exchange rejected the request for
// exceeding its rate limit. The client never retries; whether and when to
// retry is the caller's decision.
func (e *ExchangeError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// DecodeError is a 2xx response whose body is not valid JSON.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("coindcx: invalid JSON in response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
