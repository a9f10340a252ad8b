package coindcx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignGoldenVector(t *testing.T) {
	got := Sign("testsecret", []byte(`{"timestamp":1700000000000}`))
	assert.Equal(t, "e8d13cd7e6fb3d411c1fb2f238360ee487ce3294f2a89ad9ed24bf99e5d2546d", got)
}

func TestSignDeterministic(t *testing.T) {
	body := []byte(`{"market":"BTCUSDT","timestamp":1700000000000}`)
	assert.Equal(t, Sign("testsecret", body), Sign("testsecret", body))
}

func TestSignBodySensitivity(t *testing.T) {
	a := Sign("testsecret", []byte(`{"timestamp":1700000000000}`))
	b := Sign("testsecret", []byte(`{"timestamp":1700000000001}`))
	assert.NotEqual(t, a, b)
}

func TestSignSecretSensitivity(t *testing.T) {
	body := []byte(`{"timestamp":1700000000000}`)
	assert.NotEqual(t, Sign("testsecret", body), Sign("othersecret", body))
}

// The exchange verifies byte-exact, so a structurally equal body with a
// different key order must not produce the same signature. Guards against
// accidental re-serialization between signing and transmission.
func TestSignKeyOrderSensitivity(t *testing.T) {
	a := Sign("testsecret", []byte(`{"market":"BTCUSDT","timestamp":1700000000000}`))
	b := Sign("testsecret", []byte(`{"timestamp":1700000000000,"market":"BTCUSDT"}`))

	assert.Equal(t, "37915fc821d6e0dfa06f5e3d2ac47d0842d7ce04c90ca9743c33ea468053ac00", a)
	assert.Equal(t, "220dab5dbd6bdd69d8fd4923b997dbfcd31c5434c9752b259c654f6af562f568", b)
	assert.NotEqual(t, a, b)
}
