package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"cryptofolio/api"
	"cryptofolio/internal/repository"
	"cryptofolio/internal/service"
	"cryptofolio/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	assetRepository := repository.NewAssetRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)

	quoteTimeout := time.Duration(secrets.Price.TimeoutMs) * time.Millisecond
	var priceRepository repository.PriceRepository
	if strings.EqualFold(secrets.Price.Provider, "yahoo") {
		priceRepository = repository.NewYahooRepository()
	} else {
		priceRepository = repository.NewBinanceRepository(secrets.Price.BaseUrl, quoteTimeout)
	}

	priceService := service.NewPriceService(priceRepository, quoteTimeout)
	userAccountService := service.NewUserAccountService(dbConn, userAccountRepository, portfolioRepository)
	ledgerService := service.NewLedgerService(dbConn, portfolioRepository, assetRepository, transactionRepository)
	valuationService := service.NewValuationService(portfolioRepository, assetRepository, transactionRepository, priceService)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		JwtSecret:             secrets.Jwt,
		UserAccountService:    userAccountService,
		LedgerService:         ledgerService,
		ValuationService:      valuationService,
		PriceService:          priceService,
		PortfolioRepository:   portfolioRepository,
		TransactionRepository: transactionRepository,
	}

	return apiHandler, nil
}
