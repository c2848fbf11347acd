package repository

import (
	"database/sql"
	"fmt"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TransactionRepository is append-only. Trade records are never
// updated or deleted once written.
type TransactionRepository interface {
	Add(tx *sql.Tx, pt model.PortfolioTransaction) (*model.PortfolioTransaction, error)
	List(portfolioID uuid.UUID) ([]model.PortfolioTransaction, error)
	ListForSymbol(portfolioID uuid.UUID, symbol string) ([]model.PortfolioTransaction, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, pt model.PortfolioTransaction) (*model.PortfolioTransaction, error) {
	t := table.PortfolioTransaction

	if pt.CreatedAt.IsZero() {
		pt.CreatedAt = time.Now().UTC()
	}

	query := t.INSERT(t.MutableColumns).MODEL(pt).RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioTransaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(portfolioID uuid.UUID) ([]model.PortfolioTransaction, error) {
	t := table.PortfolioTransaction

	query := t.SELECT(t.AllColumns).
		WHERE(t.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(t.CreatedAt.ASC())

	out := []model.PortfolioTransaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return out, nil
}

func (h transactionRepositoryHandler) ListForSymbol(portfolioID uuid.UUID, symbol string) ([]model.PortfolioTransaction, error) {
	t := table.PortfolioTransaction

	query := t.SELECT(t.AllColumns).
		WHERE(
			t.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(t.Symbol.EQ(postgres.String(symbol))),
		).
		ORDER_BY(t.CreatedAt.ASC())

	out := []model.PortfolioTransaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for symbol: %w", err)
	}

	return out, nil
}
