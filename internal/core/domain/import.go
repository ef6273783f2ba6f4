package domain

import "github.com/shopspring/decimal"

// ImportRow is one parsed CSV row of a journal import.
type ImportRow struct {
	Line        int // 1-based line in the source file, header included
	Reference   string
	Date        string
	AccountCode string
	Label       string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// ImportResult is the outcome of one imported journal entry (one reference group).
type ImportResult struct {
	Reference string           `json:"reference"`
	Rows      int              `json:"rows"`
	JournalID *int64           `json:"journalID,omitempty"`
	Status    JournalRunStatus `json:"status"`
	Error     string           `json:"error,omitempty"`
}
