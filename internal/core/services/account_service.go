package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	erp         config.ERPConstants
}

// NewAccountService creates a new account service. New accounts get the account type
// and element of erp.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, erp config.ERPConstants) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
		erp:         erp,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) AccountExists(ctx context.Context, code string) domain.AccountLookup {
	accounts, err := s.accountRepo.FindActiveAccountsByCode(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Account lookup failed, treating as absent",
			slog.String("code", code),
			slog.String("error", err.Error()))
		return domain.AccountLookup{Status: domain.LookupFailed, Err: err}
	}
	if len(accounts) == 0 {
		return domain.AccountLookup{Status: domain.LookupNotFound}
	}
	return domain.AccountLookup{Status: domain.LookupFound, Account: &accounts[0]}
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	accounts, err := s.accountRepo.FindActiveAccountsByCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}
	return &accounts[0], nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, code string, label string) (*domain.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(label) == "" {
		label = code
	}

	account := domain.Account{
		Code:        code,
		Name:        label,
		AccountType: domain.AccountType(s.erp.AccountType),
		ElementID:   s.erp.ElementID,
		IsActive:    true,
	}
	created, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("code", code))
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrAccountCreateFailed, code, err)
	}

	s.LogInfo(ctx, "Account created", slog.String("code", created.Code), slog.Int64("account_id", created.AccountID))
	return created, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, code string, name string) (*domain.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	account.Name = name
	updated, err := s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("code", code))
		return nil, err
	}
	s.LogInfo(ctx, "Account updated", slog.String("code", code))
	return updated, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, code string) error {
	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return err
	}
	account.IsActive = false
	if _, err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("code", code))
		}
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("code", code))
	return nil
}

// EnsureAccount trusts the caller's Exists flag: a known account is never created.
// Without an id it is resolved by code, which reads but never writes.
func (s *accountService) EnsureAccount(ctx context.Context, ref domain.AccountRef) (*domain.Account, error) {
	if ref.Exists {
		if ref.ID != 0 {
			return &domain.Account{
				AccountID:   ref.ID,
				Code:        ref.Code,
				Name:        ref.Label,
				AccountType: domain.AccountType(s.erp.AccountType),
				ElementID:   s.erp.ElementID,
				IsActive:    true,
			}, nil
		}
		return s.GetAccountByCode(ctx, ref.Code)
	}
	return s.CreateAccount(ctx, ref.Code, ref.Label)
}
