package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/adhikarnow/legal-service/internal/auth"
	"github.com/adhikarnow/legal-service/internal/config"
	"github.com/adhikarnow/legal-service/internal/domain"
	"github.com/adhikarnow/legal-service/internal/persistence"
	"github.com/adhikarnow/legal-service/internal/repository"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// dummyHash is a structurally valid bcrypt hash compared against when the
// email is unknown, so both failure branches pay the same hashing cost.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// credentialsMessage is deliberately identical for unknown email and wrong
// password. Do not make it more specific.
const credentialsMessage = "Incorrect email or password."

// AccountService coordinates signup and login flows.
type AccountService struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(cfg config.AuthConfig, accounts repository.AccountRepository) *AccountService {
	return &AccountService{
		accounts:   accounts,
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account. Email uniqueness is enforced by the store
// constraint, not a pre-check, so concurrent signups cannot race past it.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*domain.Account, string, time.Time, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", time.Time{}, httperr.Validation("Name, email, and password are required.")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, httperr.Internal(err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if persistence.IsUniqueViolation(err) {
			return nil, "", time.Time{}, httperr.Conflict("This email address is already registered.")
		}
		return nil, "", time.Time{}, httperr.Internal(err)
	}

	token, expiresAt, err := s.tokens.Generate(account.ID)
	if err != nil {
		return nil, "", time.Time{}, httperr.Internal(err)
	}
	return account, token, expiresAt, nil
}

// Authenticate verifies credentials and returns the account on success.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	if email == "" || password == "" {
		return nil, "", time.Time{}, httperr.Validation("Email and password are required.")
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// burn a compare so the timing profile matches the
			// wrong-password branch
			_ = auth.ComparePassword(dummyHash, password)
			return nil, "", time.Time{}, httperr.Unauthorized(credentialsMessage)
		}
		return nil, "", time.Time{}, httperr.Internal(err)
	}

	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, httperr.Unauthorized(credentialsMessage)
	}

	token, expiresAt, err := s.tokens.Generate(account.ID)
	if err != nil {
		return nil, "", time.Time{}, httperr.Internal(err)
	}
	return account, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokens
}
