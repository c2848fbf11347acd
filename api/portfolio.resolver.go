package api

import (
	"cryptofolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type assetResponse struct {
	Symbol         string  `json:"symbol"`
	Quantity       float64 `json:"quantity"`
	CurrentPrice   float64 `json:"current_price"`
	TotalValue     float64 `json:"total_value"`
	AveragePrice   float64 `json:"average_price"`
	NetCost        float64 `json:"net_cost"`
	PerformanceAbs float64 `json:"performance_abs"`
	PerformanceRel float64 `json:"performance_rel"`
}

type portfolioResponse struct {
	TotalAddedMoney float64         `json:"total_added_money"`
	AvailableMoney  float64         `json:"available_money"`
	TotalValue      float64         `json:"total_value"`
	PerformanceAbs  float64         `json:"performance_abs"`
	PerformanceRel  float64         `json:"performance_rel"`
	Assets          []assetResponse `json:"assets"`
}

func portfolioReportToResponse(report domain.PortfolioReport) portfolioResponse {
	assets := []assetResponse{}
	for _, a := range report.Assets {
		assets = append(assets, assetResponse{
			Symbol:         a.Symbol,
			Quantity:       a.Quantity.InexactFloat64(),
			CurrentPrice:   a.CurrentPrice.InexactFloat64(),
			TotalValue:     a.TotalValue.InexactFloat64(),
			AveragePrice:   a.AveragePrice.InexactFloat64(),
			NetCost:        a.NetCost.InexactFloat64(),
			PerformanceAbs: a.PerformanceAbs.InexactFloat64(),
			PerformanceRel: a.PerformanceRel.InexactFloat64(),
		})
	}
	return portfolioResponse{
		TotalAddedMoney: report.TotalAddedMoney.InexactFloat64(),
		AvailableMoney:  report.AvailableMoney.InexactFloat64(),
		TotalValue:      report.TotalValue.InexactFloat64(),
		PerformanceAbs:  report.PerformanceAbs.InexactFloat64(),
		PerformanceRel:  report.PerformanceRel.InexactFloat64(),
		Assets:          assets,
	}
}

func (h ApiHandler) portfolio(c *gin.Context) {
	portfolioID, err := h.resolvePortfolioID(c)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	report, err := h.ValuationService.GetPortfolioReport(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioReportToResponse(*report))
}
