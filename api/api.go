package api

import (
	"database/sql"
	"errors"
	"fmt"

	"cryptofolio/internal/domain"
	"cryptofolio/internal/logger"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                    *sql.DB
	JwtSecret             string
	UserAccountService    service.UserAccountService
	LedgerService         service.LedgerService
	ValuationService      service.ValuationService
	PriceService          service.PriceService
	PortfolioRepository   repository.PortfolioRepository
	TransactionRepository repository.TransactionRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cryptofolio"})
	})
	router.POST("/register", m.register)
	router.POST("/login", m.login)

	authorized := router.Group("/")
	authorized.Use(m.authMiddleware)
	authorized.POST("/add_money", m.addMoney)
	authorized.POST("/buy", m.buy)
	authorized.POST("/sell", m.sell)
	authorized.GET("/portfolio", m.portfolio)
	authorized.GET("/transactions/export", m.exportTransactions)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnBusinessError maps the domain error taxonomy onto status codes.
// Bad input and failed preconditions are the caller's fault (400),
// missing identity is 401, anything else is a server fault.
func returnBusinessError(err error, c *gin.Context) {
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientAssets),
		errors.Is(err, domain.ErrInvalidCredentials):
		returnErrorJsonCode(err, c, 400)
	case errors.Is(err, domain.ErrUnauthenticated):
		returnErrorJsonCode(err, c, 401)
	default:
		returnErrorJson(err, c)
	}
}
