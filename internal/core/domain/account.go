package domain

// AccountType is the ERP account type code of a chart-of-accounts element.
type AccountType string

const (
	Asset     AccountType = "A"
	Liability AccountType = "L"
	Equity    AccountType = "O"
	Revenue   AccountType = "R"
	Expense   AccountType = "E"
	Memo      AccountType = "M"
)

// Account represents a chart-of-accounts element held by the ERP.
type Account struct {
	AccountID   int64       `json:"accountID"`   // Assigned by the ERP
	Code        string      `json:"code"`        // ERP "Value", unique among active accounts of the client
	Name        string      `json:"name"`        // ERP "Name"
	AccountType AccountType `json:"accountType"` // A, L, O, R, E, M
	ElementID   int64       `json:"elementID"`
	IsActive    bool        `json:"isActive"` // Accounts are deactivated, never deleted
}

// AccountRef is an account as referenced by a journal entry input.
// Exists is the caller's own knowledge that the code is already registered.
type AccountRef struct {
	ID     int64  `json:"id,omitempty"`
	Code   string `json:"code" validate:"required"`
	Label  string `json:"label"`
	Exists bool   `json:"exists"`
}

// LookupStatus tags the outcome of an existence check.
type LookupStatus string

const (
	LookupFound    LookupStatus = "FOUND"
	LookupNotFound LookupStatus = "NOT_FOUND"
	LookupFailed   LookupStatus = "LOOKUP_FAILED"
)

// AccountLookup is the tagged result of an account existence check.
// A failed lookup is reported here instead of as an error.
type AccountLookup struct {
	Status  LookupStatus
	Account *Account
	Err     error
}

// Exists reports true only for a confirmed match; NotFound and LookupFailed both read as absent.
func (l AccountLookup) Exists() bool {
	return l.Status == LookupFound
}
