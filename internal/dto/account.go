package dto

import (
	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// CreateAccountRequest defines the data needed to register a new account.
type CreateAccountRequest struct {
	Code  string `json:"code" binding:"required"`
	Label string `json:"label"` // Optional, defaults to the code
}

// UpdateAccountRequest defines the data allowed for renaming an account.
type UpdateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID   int64              `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	IsActive    bool               `json:"isActive"`
}

// AccountExistsResponse reports the outcome of an account existence check.
type AccountExistsResponse struct {
	Code    string              `json:"code"`
	Exists  bool                `json:"exists"`
	Status  domain.LookupStatus `json:"status"`
	Account *AccountResponse    `json:"account,omitempty"`
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		IsActive:    acc.IsActive,
	}
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := ListAccountsResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for i := range accounts {
		out.Accounts = append(out.Accounts, ToAccountResponse(&accounts[i]))
	}
	return out
}

// ToAccountExistsResponse converts a lookup result.
func ToAccountExistsResponse(code string, lookup domain.AccountLookup) AccountExistsResponse {
	resp := AccountExistsResponse{Code: code, Exists: lookup.Exists(), Status: lookup.Status}
	if lookup.Account != nil {
		acc := ToAccountResponse(lookup.Account)
		resp.Account = &acc
	}
	return resp
}
