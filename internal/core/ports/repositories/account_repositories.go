package repositories

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// AccountReader defines read operations on the chart of accounts.
type AccountReader interface {
	// FindActiveAccountsByCode returns the active accounts whose code equals code exactly.
	// An empty slice means the code is not registered.
	FindActiveAccountsByCode(ctx context.Context, code string) ([]domain.Account, error)

	// ListActiveAccounts returns the active chart of accounts ordered by code.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations on the chart of accounts.
type AccountWriter interface {
	// SaveAccount registers a new account and returns it with its assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates the name and active flag of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
