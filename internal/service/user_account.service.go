package service

import (
	"context"
	"database/sql"
	"fmt"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/domain"
	"cryptofolio/internal/logger"
	"cryptofolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserAccountService registers accounts and checks credentials. Every
// account owns exactly one portfolio, created in the same transaction
// as the account itself.
type UserAccountService interface {
	Register(ctx context.Context, username, password string) (*model.UserAccount, error)
	Authenticate(ctx context.Context, username, password string) (*model.UserAccount, error)
}

type userAccountServiceHandler struct {
	Db                    *sql.DB
	UserAccountRepository repository.UserAccountRepository
	PortfolioRepository   repository.PortfolioRepository
}

func NewUserAccountService(
	db *sql.DB,
	userAccountRepository repository.UserAccountRepository,
	portfolioRepository repository.PortfolioRepository,
) UserAccountService {
	return userAccountServiceHandler{
		Db:                    db,
		UserAccountRepository: userAccountRepository,
		PortfolioRepository:   portfolioRepository,
	}
}

func (h userAccountServiceHandler) Register(ctx context.Context, username, password string) (*model.UserAccount, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "must not be empty")
	}

	existing, err := h.UserAccountRepository.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("username", "already taken")
	}

	// bcrypt rejects inputs longer than 72 bytes
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(passwordBytes, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	user, err := h.UserAccountRepository.Create(tx, model.UserAccount{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	_, err = h.PortfolioRepository.Create(tx, model.Portfolio{
		UserAccountID: user.UserAccountID,
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("registered user", "username", username)

	return user, nil
}

func (h userAccountServiceHandler) Authenticate(ctx context.Context, username, password string) (*model.UserAccount, error) {
	user, err := h.UserAccountRepository.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
