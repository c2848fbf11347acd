package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type transactionCsvRow struct {
	CreatedAt string `csv:"created_at"`
	Symbol    string `csv:"symbol"`
	Side      string `csv:"side"`
	Quantity  string `csv:"quantity"`
	Price     string `csv:"price"`
}

func (h ApiHandler) exportTransactions(c *gin.Context) {
	portfolioID, err := h.resolvePortfolioID(c)
	if err != nil {
		returnBusinessError(err, c)
		return
	}

	transactions, err := h.TransactionRepository.List(portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := []transactionCsvRow{}
	for _, t := range transactions {
		rows = append(rows, transactionCsvRow{
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
			Symbol:    t.Symbol,
			Side:      t.Side.String(),
			Quantity:  t.Quantity.String(),
			Price:     t.Price.String(),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transactions.csv")
	c.Data(200, "text/csv", []byte(out))
}
