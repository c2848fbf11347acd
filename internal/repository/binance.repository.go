package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// PriceRepository performs one outbound quote lookup. Failures come
// back as errors; collapsing them to the zero sentinel is the price
// service's job, not the repository's.
type PriceRepository interface {
	GetLatestPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

const binanceBaseUrl = "https://api.binance.com"

type binanceRepositoryHandler struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewBinanceRepository(baseUrl string, timeout time.Duration) PriceRepository {
	if baseUrl == "" {
		baseUrl = binanceBaseUrl
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return binanceRepositoryHandler{
		HttpClient: &http.Client{Timeout: timeout},
		BaseUrl:    baseUrl,
	}
}

type binanceTickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// GetLatestPrice quotes the symbol against USDT, mirroring how the
// exchange lists spot pairs ("BTC" -> "BTCUSDT").
func (c binanceRepositoryHandler) GetLatestPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%sUSDT", c.BaseUrl, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch price for %s: %w", symbol, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		type errResponse struct {
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return decimal.Zero, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return decimal.Zero, fmt.Errorf("quote for %s failed with status code %d: %s", symbol, response.StatusCode, errJson.Msg)
	}

	var responseJson binanceTickerResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse quote for %s: %w", symbol, err)
	}

	price, err := decimal.NewFromString(responseJson.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse quoted price %q for %s: %w", responseJson.Price, symbol, err)
	}

	return price, nil
}
