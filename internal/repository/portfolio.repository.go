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

type PortfolioRepository interface {
	Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
	Get(portfolioID uuid.UUID) (*model.Portfolio, error)
	GetByUserAccountID(userAccountID uuid.UUID) (*model.Portfolio, error)
	// GetForUpdate locks the portfolio row for the duration of the
	// transaction. Mutations on one portfolio serialize behind it.
	GetForUpdate(tx *sql.Tx, portfolioID uuid.UUID) (*model.Portfolio, error)
	UpdateBalances(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	t := table.Portfolio

	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(p).RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) Get(portfolioID uuid.UUID) (*model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).WHERE(t.PortfolioID.EQ(postgres.UUID(portfolioID)))

	out := model.Portfolio{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) GetByUserAccountID(userAccountID uuid.UUID) (*model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.Portfolio{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio for user: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) GetForUpdate(tx *sql.Tx, portfolioID uuid.UUID) (*model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).
		WHERE(t.PortfolioID.EQ(postgres.UUID(portfolioID))).
		FOR(postgres.UPDATE())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to lock portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) UpdateBalances(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	t := table.Portfolio

	p.UpdatedAt = time.Now().UTC()

	query := t.UPDATE(t.AvailableMoney, t.TotalAddedMoney, t.UpdatedAt).
		MODEL(p).
		WHERE(t.PortfolioID.EQ(postgres.UUID(p.PortfolioID))).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio balances: %w", err)
	}

	return &out, nil
}
