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
)

type UserAccountRepository interface {
	Create(tx *sql.Tx, ua model.UserAccount) (*model.UserAccount, error)
	Get(userAccountID uuid.UUID) (*model.UserAccount, error)
	GetByUsername(username string) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{Db: db}
}

func (h userAccountRepositoryHandler) Create(tx *sql.Tx, ua model.UserAccount) (*model.UserAccount, error) {
	t := table.UserAccount

	ua.CreatedAt = time.Now().UTC()
	ua.UpdatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(ua).RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.UserAccount{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) Get(userAccountID uuid.UUID) (*model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	}

	return &out, nil
}

// GetByUsername returns nil without error when no account matches,
// so callers can treat a miss as a credential failure.
func (h userAccountRepositoryHandler) GetByUsername(username string) (*model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).WHERE(t.Username.EQ(postgres.String(username)))

	out := model.UserAccount{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user account by username: %w", err)
	}

	return &out, nil
}
