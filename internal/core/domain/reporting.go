package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Debit minus credit
}

// TrialBalance is the per-account summary of the general ledger as of a date.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// IsBalanced reports whether total debits equal total credits.
func (tb TrialBalance) IsBalanced() bool {
	return tb.TotalDebit.Equal(tb.TotalCredit)
}

// GeneralLedgerFilter narrows a general ledger listing.
type GeneralLedgerFilter struct {
	From        *time.Time
	To          *time.Time
	AccountCode string
}

// DashboardMonth holds the revenue/expense aggregation of one calendar month.
type DashboardMonth struct {
	Month     int             `json:"month"` // 0-11, January first
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetResult decimal.Decimal `json:"netResult"`
}

// AccountClass is the dashboard classification of an account code.
type AccountClass string

const (
	ClassRevenue AccountClass = "REVENUE"
	ClassExpense AccountClass = "EXPENSE"
	ClassOther   AccountClass = "OTHER"
)
