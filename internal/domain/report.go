package domain

import (
	"github.com/shopspring/decimal"
)

// AssetReport is the valuation of a single holding. NetCost sums
// price*quantity over every recorded transaction for the symbol,
// sells included - see PortfolioReport.
type AssetReport struct {
	Symbol         string
	Quantity       decimal.Decimal
	CurrentPrice   decimal.Decimal
	TotalValue     decimal.Decimal
	AveragePrice   decimal.Decimal
	NetCost        decimal.Decimal
	PerformanceAbs decimal.Decimal
	PerformanceRel decimal.Decimal
}

// PortfolioReport aggregates cash plus the market value of all holdings.
// Performance is measured against lifetime deposits, and per-asset
// performance against the unsigned sum of all trades in that symbol.
// Round-trip trading inflates that denominator; the behavior is kept
// as the product defines it.
type PortfolioReport struct {
	TotalAddedMoney decimal.Decimal
	AvailableMoney  decimal.Decimal
	TotalValue      decimal.Decimal
	PerformanceAbs  decimal.Decimal
	PerformanceRel  decimal.Decimal
	Assets          []AssetReport
}
