package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetRepository interface {
	// Get returns nil without error when the portfolio holds no
	// position in the symbol.
	Get(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.Asset, error)
	List(portfolioID uuid.UUID) ([]model.Asset, error)
	Create(tx *sql.Tx, a model.Asset) (*model.Asset, error)
	UpdateQuantity(tx *sql.Tx, assetID uuid.UUID, quantity decimal.Decimal) (*model.Asset, error)
	Delete(tx *sql.Tx, assetID uuid.UUID) error
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{Db: db}
}

func (h assetRepositoryHandler) Get(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.Asset, error) {
	t := table.Asset

	query := t.SELECT(t.AllColumns).
		WHERE(
			t.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(t.Symbol.EQ(postgres.String(symbol))),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Asset{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) List(portfolioID uuid.UUID) ([]model.Asset, error) {
	t := table.Asset

	query := t.SELECT(t.AllColumns).
		WHERE(t.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(t.Symbol.ASC())

	out := []model.Asset{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return out, nil
}

func (h assetRepositoryHandler) Create(tx *sql.Tx, a model.Asset) (*model.Asset, error) {
	t := table.Asset

	if a.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("failed to create asset: quantity must be > 0, got %s", a.Quantity.String())
	}

	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(a).RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Asset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) UpdateQuantity(tx *sql.Tx, assetID uuid.UUID, quantity decimal.Decimal) (*model.Asset, error) {
	t := table.Asset

	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("failed to update asset: quantity must be > 0, got %s", quantity.String())
	}

	m := model.Asset{
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}

	query := t.UPDATE(t.Quantity, t.UpdatedAt).
		MODEL(m).
		WHERE(t.AssetID.EQ(postgres.UUID(assetID))).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Asset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update asset quantity: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) Delete(tx *sql.Tx, assetID uuid.UUID) error {
	t := table.Asset

	query := t.DELETE().WHERE(t.AssetID.EQ(postgres.UUID(assetID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}
