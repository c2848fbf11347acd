package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addMoneyRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h ApiHandler) addMoney(c *gin.Context) {
	var requestBody addMoneyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolioID, err := h.resolvePortfolioID(c)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	err = h.LedgerService.Deposit(c.Request.Context(), portfolioID, requestBody.Amount)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "ok",
	})
}
