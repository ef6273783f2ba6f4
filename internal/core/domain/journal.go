package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// DocStatus is the ERP document status of a journal header.
type DocStatus string

const (
	Draft      DocStatus = "DR"
	InProgress DocStatus = "IP"
	Completed  DocStatus = "CO"
	Closed     DocStatus = "CL"
	Voided     DocStatus = "VO"
	Reversed   DocStatus = "RE"
)

// JournalHeader is a dated, described grouping of journal lines (ERP GL_Journal).
type JournalHeader struct {
	JournalID   int64         `json:"journalID"`
	Description string        `json:"description"` // Also the duplicate-check key
	DateAcct    time.Time     `json:"dateAcct"`
	DateDoc     time.Time     `json:"dateDoc"`
	DocStatus   DocStatus     `json:"docStatus"`
	PeriodID    int64         `json:"periodID"`
	CategoryID  int64         `json:"categoryID"`
	IsActive    bool          `json:"isActive"`
	Lines       []JournalLine `json:"lines,omitempty"` // Populated only when expanded
}

// IsDraft reports whether the header may still be edited or deleted.
func (h JournalHeader) IsDraft() bool {
	return h.DocStatus == Draft
}

// JournalLine is one debit or credit entry of a header (ERP GL_JournalLine).
// Source amounts are what the user entered; accounted amounts are the ledger-currency
// values, equal to the source amounts because a single currency is used.
type JournalLine struct {
	LineID            int64           `json:"lineID"`
	JournalID         int64           `json:"journalID"`
	AccountID         int64           `json:"accountID"`
	AccountIdentifier string          `json:"accountIdentifier,omitempty"`
	LineNumber        int             `json:"lineNumber"`
	CurrencyID        int64           `json:"currencyID"`
	DateAcct          time.Time       `json:"dateAcct"`
	AmtSourceDr       decimal.Decimal `json:"amtSourceDr"`
	AmtSourceCr       decimal.Decimal `json:"amtSourceCr"`
	AmtAcctDr         decimal.Decimal `json:"amtAcctDr"`
	AmtAcctCr         decimal.Decimal `json:"amtAcctCr"`
}

// AccountCode extracts the account code from the ERP identifier ("700000_Sales" -> "700000").
func (l JournalLine) AccountCode() string {
	id := strings.TrimSpace(l.AccountIdentifier)
	end := strings.IndexFunc(id, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
	if end < 0 {
		return id
	}
	return id[:end]
}

// EntryData carries the user input needed to compose a single line.
type EntryData struct {
	Date   string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}
