package service

import (
	"context"
	"time"

	"cryptofolio/internal/logger"
	"cryptofolio/internal/repository"

	"github.com/shopspring/decimal"
)

// PriceService is the boundary around the external quote source.
// Lookups that fail or return garbage collapse to the zero sentinel
// here; callers never see an error. Zero means "unknown", and flows
// into valuation math as-is.
type PriceService interface {
	Quote(ctx context.Context, symbol string) decimal.Decimal
}

type priceServiceHandler struct {
	PriceRepository repository.PriceRepository
	Timeout         time.Duration
}

func NewPriceService(priceRepository repository.PriceRepository, timeout time.Duration) PriceService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return priceServiceHandler{
		PriceRepository: priceRepository,
		Timeout:         timeout,
	}
}

func (h priceServiceHandler) Quote(ctx context.Context, symbol string) decimal.Decimal {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	price, err := h.PriceRepository.GetLatestPrice(ctx, symbol)
	if err != nil {
		logger.FromContext(ctx).Warnw("price lookup failed, falling back to zero",
			"symbol", symbol,
			"error", err.Error(),
		)
		return decimal.Zero
	}
	if price.IsNegative() {
		logger.FromContext(ctx).Warnw("quote source returned negative price, falling back to zero",
			"symbol", symbol,
			"price", price.String(),
		)
		return decimal.Zero
	}

	return price
}
