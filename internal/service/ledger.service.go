package service

import (
	"context"
	"database/sql"
	"fmt"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/domain"
	"cryptofolio/internal/logger"
	"cryptofolio/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService owns a portfolio's cash balance and holdings. Each
// operation runs in a single transaction over a locked portfolio row,
// so either every mutation (balance, holding, trade record) commits
// or none does.
type LedgerService interface {
	Deposit(ctx context.Context, portfolioID uuid.UUID, amount decimal.Decimal) error
	Buy(ctx context.Context, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error
	Sell(ctx context.Context, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error
}

type ledgerServiceHandler struct {
	Db                    *sql.DB
	PortfolioRepository   repository.PortfolioRepository
	AssetRepository       repository.AssetRepository
	TransactionRepository repository.TransactionRepository
}

func NewLedgerService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	assetRepository repository.AssetRepository,
	transactionRepository repository.TransactionRepository,
) LedgerService {
	return ledgerServiceHandler{
		Db:                    db,
		PortfolioRepository:   portfolioRepository,
		AssetRepository:       assetRepository,
		TransactionRepository: transactionRepository,
	}
}

func (h ledgerServiceHandler) Deposit(ctx context.Context, portfolioID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.NewValidationError("amount", "must be greater than zero")
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.deposit(tx, portfolioID, amount)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infow("deposit applied",
		"portfolioID", portfolioID,
		"amount", amount.String(),
	)

	return tx.Commit()
}

func (h ledgerServiceHandler) deposit(tx *sql.Tx, portfolioID uuid.UUID, amount decimal.Decimal) error {
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID)
	if err != nil {
		return err
	}

	portfolio.AvailableMoney = portfolio.AvailableMoney.Add(amount)
	portfolio.TotalAddedMoney = portfolio.TotalAddedMoney.Add(amount)

	_, err = h.PortfolioRepository.UpdateBalances(tx, *portfolio)
	if err != nil {
		return err
	}

	return nil
}

func (h ledgerServiceHandler) Buy(ctx context.Context, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error {
	if symbol == "" {
		return domain.NewValidationError("symbol", "must not be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return domain.NewValidationError("quantity", "must be greater than zero")
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.buy(tx, portfolioID, symbol, quantity, unitPrice)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infow("buy applied",
		"portfolioID", portfolioID,
		"symbol", symbol,
		"quantity", quantity.String(),
		"unitPrice", unitPrice.String(),
	)

	return tx.Commit()
}

func (h ledgerServiceHandler) buy(tx *sql.Tx, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error {
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID)
	if err != nil {
		return err
	}

	cost := unitPrice.Mul(quantity)
	if cost.GreaterThan(portfolio.AvailableMoney) {
		return fmt.Errorf("cost %s exceeds available money %s: %w", cost.String(), portfolio.AvailableMoney.String(), domain.ErrInsufficientFunds)
	}

	portfolio.AvailableMoney = portfolio.AvailableMoney.Sub(cost)
	_, err = h.PortfolioRepository.UpdateBalances(tx, *portfolio)
	if err != nil {
		return err
	}

	asset, err := h.AssetRepository.Get(tx, portfolioID, symbol)
	if err != nil {
		return err
	}

	if asset == nil {
		_, err = h.AssetRepository.Create(tx, model.Asset{
			PortfolioID: portfolioID,
			Symbol:      symbol,
			Quantity:    quantity,
		})
	} else {
		_, err = h.AssetRepository.UpdateQuantity(tx, asset.AssetID, asset.Quantity.Add(quantity))
	}
	if err != nil {
		return err
	}

	_, err = h.TransactionRepository.Add(tx, model.PortfolioTransaction{
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Side:        model.TransactionSide_Buy,
		Quantity:    quantity,
		Price:       unitPrice,
	})
	if err != nil {
		return err
	}

	return nil
}

func (h ledgerServiceHandler) Sell(ctx context.Context, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error {
	if symbol == "" {
		return domain.NewValidationError("symbol", "must not be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return domain.NewValidationError("quantity", "must be greater than zero")
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.sell(tx, portfolioID, symbol, quantity, unitPrice)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Infow("sell applied",
		"portfolioID", portfolioID,
		"symbol", symbol,
		"quantity", quantity.String(),
		"unitPrice", unitPrice.String(),
	)

	return tx.Commit()
}

func (h ledgerServiceHandler) sell(tx *sql.Tx, portfolioID uuid.UUID, symbol string, quantity, unitPrice decimal.Decimal) error {
	// lock the portfolio row before touching holdings so concurrent
	// trades on one portfolio serialize in a fixed order
	portfolio, err := h.PortfolioRepository.GetForUpdate(tx, portfolioID)
	if err != nil {
		return err
	}

	asset, err := h.AssetRepository.Get(tx, portfolioID, symbol)
	if err != nil {
		return err
	}
	if asset == nil || asset.Quantity.LessThan(quantity) {
		return fmt.Errorf("not enough %s held to sell %s: %w", symbol, quantity.String(), domain.ErrInsufficientAssets)
	}

	remaining := asset.Quantity.Sub(quantity)
	if remaining.IsZero() {
		err = h.AssetRepository.Delete(tx, asset.AssetID)
	} else {
		_, err = h.AssetRepository.UpdateQuantity(tx, asset.AssetID, remaining)
	}
	if err != nil {
		return err
	}

	proceeds := unitPrice.Mul(quantity)
	portfolio.AvailableMoney = portfolio.AvailableMoney.Add(proceeds)
	_, err = h.PortfolioRepository.UpdateBalances(tx, *portfolio)
	if err != nil {
		return err
	}

	_, err = h.TransactionRepository.Add(tx, model.PortfolioTransaction{
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Side:        model.TransactionSide_Sell,
		Quantity:    quantity,
		Price:       unitPrice,
	})
	if err != nil {
		return err
	}

	return nil
}
