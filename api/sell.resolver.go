package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) sell(c *gin.Context) {
	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolioID, err := h.resolvePortfolioID(c)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(requestBody.Symbol))
	unitPrice := h.PriceService.Quote(c.Request.Context(), symbol)

	err = h.LedgerService.Sell(c.Request.Context(), portfolioID, symbol, requestBody.Quantity, unitPrice)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "ok",
	})
}
