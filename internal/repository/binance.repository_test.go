package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_GetLatestPrice(t *testing.T) {
	t.Run("parses a ticker quote", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/ticker/price", r.URL.Path)
			require.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
			w.Write([]byte(`{"symbol":"BTCUSDT","price":"67123.45000000"}`))
		}))
		defer server.Close()

		client := NewBinanceRepository(server.URL, time.Second)
		price, err := client.GetLatestPrice(context.Background(), "BTC")
		require.NoError(t, err)
		require.True(t, price.Equal(decimal.NewFromFloat(67123.45)))
	})

	t.Run("surfaces exchange errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(400)
			w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		}))
		defer server.Close()

		client := NewBinanceRepository(server.URL, time.Second)
		_, err := client.GetLatestPrice(context.Background(), "NOPE")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Invalid symbol.")
	})

	t.Run("rejects malformed prices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"symbol":"BTCUSDT","price":"not-a-number"}`))
		}))
		defer server.Close()

		client := NewBinanceRepository(server.URL, time.Second)
		_, err := client.GetLatestPrice(context.Background(), "BTC")
		require.Error(t, err)
	})
}
