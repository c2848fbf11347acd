package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/domain"
	mock_repository "cryptofolio/internal/repository/mocks"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_deposit(t *testing.T) {
	t.Run("adds to both balances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository: portfolioRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(250),
				TotalAddedMoney: decimal.NewFromInt(500),
			}, nil)

		portfolioRepository.EXPECT().
			UpdateBalances(tx, model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(350),
				TotalAddedMoney: decimal.NewFromInt(600),
			}).
			Return(&model.Portfolio{}, nil)

		err := handler.deposit(tx, portfolioID, decimal.NewFromInt(100))
		require.NoError(t, err)
	})

	t.Run("consecutive deposits accumulate in total added money", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository: portfolioRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{PortfolioID: portfolioID, AvailableMoney: decimal.Zero, TotalAddedMoney: decimal.Zero}, nil)
		portfolioRepository.EXPECT().
			UpdateBalances(tx, model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(300),
				TotalAddedMoney: decimal.NewFromInt(300),
			}).
			Return(&model.Portfolio{}, nil)

		err := handler.deposit(tx, portfolioID, decimal.NewFromInt(300))
		require.NoError(t, err)

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(300),
				TotalAddedMoney: decimal.NewFromInt(300),
			}, nil)
		portfolioRepository.EXPECT().
			UpdateBalances(tx, model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(500),
				TotalAddedMoney: decimal.NewFromInt(500),
			}).
			Return(&model.Portfolio{}, nil)

		err = handler.deposit(tx, portfolioID, decimal.NewFromInt(200))
		require.NoError(t, err)
	})

	t.Run("rejects non-positive amount before any state change", func(t *testing.T) {
		handler := ledgerServiceHandler{}

		err := handler.Deposit(context.Background(), uuid.New(), decimal.Zero)
		require.True(t, domain.IsValidationError(err))

		err = handler.Deposit(context.Background(), uuid.New(), decimal.NewFromInt(-5))
		require.True(t, domain.IsValidationError(err))
	})
}

func Test_buy(t *testing.T) {
	t.Run("debits cash, creates holding, records trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(1000),
				TotalAddedMoney: decimal.NewFromInt(1000),
			}, nil)

		portfolioRepository.EXPECT().
			UpdateBalances(tx, model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(800),
				TotalAddedMoney: decimal.NewFromInt(1000),
			}).
			Return(&model.Portfolio{}, nil)

		assetRepository.EXPECT().
			Get(tx, portfolioID, "BTC").
			Return(nil, nil)

		assetRepository.EXPECT().
			Create(tx, model.Asset{
				PortfolioID: portfolioID,
				Symbol:      "BTC",
				Quantity:    decimal.NewFromInt(2),
			}).
			Return(&model.Asset{}, nil)

		transactionRepository.EXPECT().
			Add(tx, model.PortfolioTransaction{
				PortfolioID: portfolioID,
				Symbol:      "BTC",
				Side:        model.TransactionSide_Buy,
				Quantity:    decimal.NewFromInt(2),
				Price:       decimal.NewFromInt(100),
			}).
			Return(&model.PortfolioTransaction{}, nil)

		err := handler.buy(tx, portfolioID, "BTC", decimal.NewFromInt(2), decimal.NewFromInt(100))
		require.NoError(t, err)
	})

	t.Run("increments an existing holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()
		assetID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(500),
				TotalAddedMoney: decimal.NewFromInt(500),
			}, nil)
		portfolioRepository.EXPECT().
			UpdateBalances(tx, gomock.Any()).
			Return(&model.Portfolio{}, nil)

		assetRepository.EXPECT().
			Get(tx, portfolioID, "ETH").
			Return(&model.Asset{
				AssetID:     assetID,
				PortfolioID: portfolioID,
				Symbol:      "ETH",
				Quantity:    decimal.NewFromInt(3),
			}, nil)
		assetRepository.EXPECT().
			UpdateQuantity(tx, assetID, decimal.NewFromInt(4)).
			Return(&model.Asset{}, nil)

		transactionRepository.EXPECT().
			Add(tx, gomock.Any()).
			Return(&model.PortfolioTransaction{}, nil)

		err := handler.buy(tx, portfolioID, "ETH", decimal.NewFromInt(1), decimal.NewFromInt(10))
		require.NoError(t, err)
	})

	t.Run("insufficient funds leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		// no UpdateBalances, Create or Add calls expected
		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:    portfolioID,
				AvailableMoney: decimal.NewFromInt(100),
			}, nil)

		err := handler.buy(tx, portfolioID, "BTC", decimal.NewFromInt(2), decimal.NewFromInt(100))
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		handler := ledgerServiceHandler{}

		err := handler.Buy(context.Background(), uuid.New(), "BTC", decimal.Zero, decimal.NewFromInt(100))
		require.True(t, domain.IsValidationError(err))
	})
}

func Test_sell(t *testing.T) {
	t.Run("selling the full position removes the holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()
		assetID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(800),
				TotalAddedMoney: decimal.NewFromInt(1000),
			}, nil)

		assetRepository.EXPECT().
			Get(tx, portfolioID, "BTC").
			Return(&model.Asset{
				AssetID:     assetID,
				PortfolioID: portfolioID,
				Symbol:      "BTC",
				Quantity:    decimal.NewFromInt(2),
			}, nil)

		assetRepository.EXPECT().
			Delete(tx, assetID).
			Return(nil)

		portfolioRepository.EXPECT().
			UpdateBalances(tx, model.Portfolio{
				PortfolioID:     portfolioID,
				AvailableMoney:  decimal.NewFromInt(1100),
				TotalAddedMoney: decimal.NewFromInt(1000),
			}).
			Return(&model.Portfolio{}, nil)

		transactionRepository.EXPECT().
			Add(tx, model.PortfolioTransaction{
				PortfolioID: portfolioID,
				Symbol:      "BTC",
				Side:        model.TransactionSide_Sell,
				Quantity:    decimal.NewFromInt(2),
				Price:       decimal.NewFromInt(150),
			}).
			Return(&model.PortfolioTransaction{}, nil)

		err := handler.sell(tx, portfolioID, "BTC", decimal.NewFromInt(2), decimal.NewFromInt(150))
		require.NoError(t, err)
	})

	t.Run("partial sell decrements the holding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()
		assetID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{
				PortfolioID:    portfolioID,
				AvailableMoney: decimal.NewFromInt(100),
			}, nil)
		assetRepository.EXPECT().
			Get(tx, portfolioID, "ETH").
			Return(&model.Asset{
				AssetID:  assetID,
				Symbol:   "ETH",
				Quantity: decimal.NewFromInt(5),
			}, nil)
		assetRepository.EXPECT().
			UpdateQuantity(tx, assetID, decimal.NewFromInt(3)).
			Return(&model.Asset{}, nil)
		portfolioRepository.EXPECT().
			UpdateBalances(tx, gomock.Any()).
			Return(&model.Portfolio{}, nil)
		transactionRepository.EXPECT().
			Add(tx, gomock.Any()).
			Return(&model.PortfolioTransaction{}, nil)

		err := handler.sell(tx, portfolioID, "ETH", decimal.NewFromInt(2), decimal.NewFromInt(10))
		require.NoError(t, err)
	})

	t.Run("selling more than held fails and changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository:   portfolioRepository,
			AssetRepository:       assetRepository,
			TransactionRepository: transactionRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{PortfolioID: portfolioID}, nil)
		assetRepository.EXPECT().
			Get(tx, portfolioID, "BTC").
			Return(&model.Asset{Quantity: decimal.NewFromInt(1)}, nil)

		err := handler.sell(tx, portfolioID, "BTC", decimal.NewFromInt(2), decimal.NewFromInt(100))
		require.ErrorIs(t, err, domain.ErrInsufficientAssets)
	})

	t.Run("selling a symbol never held fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository: portfolioRepository,
			AssetRepository:     assetRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(&model.Portfolio{PortfolioID: portfolioID}, nil)
		assetRepository.EXPECT().
			Get(tx, portfolioID, "DOGE").
			Return(nil, nil)

		err := handler.sell(tx, portfolioID, "DOGE", decimal.NewFromInt(1), decimal.NewFromInt(100))
		require.ErrorIs(t, err, domain.ErrInsufficientAssets)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)

		handler := ledgerServiceHandler{
			PortfolioRepository: portfolioRepository,
		}

		var tx *sql.Tx
		portfolioID := uuid.New()
		boom := errors.New("connection reset")

		portfolioRepository.EXPECT().
			GetForUpdate(tx, portfolioID).
			Return(nil, boom)

		err := handler.sell(tx, portfolioID, "BTC", decimal.NewFromInt(1), decimal.NewFromInt(100))
		require.ErrorIs(t, err, boom)
	})
}

// buy then sell of the same quantity at the same price must return
// available money to its pre-buy value exactly.
func Test_buySellRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	portfolioRepository := mock_repository.NewMockPortfolioRepository(ctrl)
	assetRepository := mock_repository.NewMockAssetRepository(ctrl)
	transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

	handler := ledgerServiceHandler{
		PortfolioRepository:   portfolioRepository,
		AssetRepository:       assetRepository,
		TransactionRepository: transactionRepository,
	}

	var tx *sql.Tx
	portfolioID := uuid.New()
	assetID := uuid.New()
	startingCash := decimal.NewFromInt(1000)

	// backing state shared across the two trades
	cash := startingCash
	portfolioRepository.EXPECT().
		GetForUpdate(tx, portfolioID).
		DoAndReturn(func(*sql.Tx, uuid.UUID) (*model.Portfolio, error) {
			return &model.Portfolio{PortfolioID: portfolioID, AvailableMoney: cash}, nil
		}).Times(2)
	portfolioRepository.EXPECT().
		UpdateBalances(tx, gomock.Any()).
		DoAndReturn(func(_ *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
			cash = p.AvailableMoney
			return &p, nil
		}).Times(2)

	gomock.InOrder(
		assetRepository.EXPECT().
			Get(tx, portfolioID, "BTC").
			Return(nil, nil),
		assetRepository.EXPECT().
			Create(tx, gomock.Any()).
			Return(&model.Asset{AssetID: assetID}, nil),
		assetRepository.EXPECT().
			Get(tx, portfolioID, "BTC").
			Return(&model.Asset{AssetID: assetID, Symbol: "BTC", Quantity: decimal.NewFromInt(7)}, nil),
		assetRepository.EXPECT().
			Delete(tx, assetID).
			Return(nil),
	)

	transactionRepository.EXPECT().
		Add(tx, gomock.Any()).
		Return(&model.PortfolioTransaction{}, nil).Times(2)

	err := handler.buy(tx, portfolioID, "BTC", decimal.NewFromInt(7), decimal.NewFromInt(63))
	require.NoError(t, err)
	err = handler.sell(tx, portfolioID, "BTC", decimal.NewFromInt(7), decimal.NewFromInt(63))
	require.NoError(t, err)

	require.True(t, cash.Equal(startingCash), "expected %s, got %s", startingCash, cash)
}
