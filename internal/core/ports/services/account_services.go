package services

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// AccountExists checks whether an active account with this exact code is registered.
	// Lookup failures are reported in the result, never as an error.
	AccountExists(ctx context.Context, code string) domain.AccountLookup

	// GetAccountByCode retrieves the active account with this code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the active chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount registers a new account with the configured element constants.
	CreateAccount(ctx context.Context, code string, label string) (*domain.Account, error)

	// UpdateAccount renames an existing account.
	UpdateAccount(ctx context.Context, code string, name string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, code string) error
}

// AccountRegistrarSvc returns the identity of an account, registering it when needed.
type AccountRegistrarSvc interface {
	EnsureAccount(ctx context.Context, ref domain.AccountRef) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountRegistrarSvc
}
