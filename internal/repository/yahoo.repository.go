package repository

import (
	"context"
	"fmt"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type yahooRepositoryHandler struct{}

// NewYahooRepository returns a PriceRepository backed by Yahoo Finance.
// Crypto symbols are quoted as their USD pair ("BTC" -> "BTC-USD").
func NewYahooRepository() PriceRepository {
	return yahooRepositoryHandler{}
}

func (h yahooRepositoryHandler) GetLatestPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	q, err := quote.Get(symbol + "-USD")
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil {
		return decimal.Zero, fmt.Errorf("no quote returned for %s", symbol)
	}

	return decimal.NewFromFloat(q.RegularMarketPrice), nil
}
