package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Balanced bool `json:"balanced"`
}

// DashboardResponse holds the monthly aggregation of one year.
type DashboardResponse struct {
	Year   int                     `json:"year"`
	Months []domain.DashboardMonth `json:"months"`
}

// GeneralLedgerResponse lists journals with their lines.
type GeneralLedgerResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf:     tb.AsOf.Format("2006-01-02"),
		Rows:     make([]TrialBalanceRowResponse, 0, len(tb.Rows)),
		Balanced: tb.IsBalanced(),
	}
	for _, r := range tb.Rows {
		resp.Rows = append(resp.Rows, TrialBalanceRowResponse(r))
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}

// ToGeneralLedgerResponse converts ledger headers.
func ToGeneralLedgerResponse(headers []domain.JournalHeader) GeneralLedgerResponse {
	resp := GeneralLedgerResponse{Journals: make([]JournalResponse, 0, len(headers))}
	for i := range headers {
		resp.Journals = append(resp.Journals, ToJournalResponse(&headers[i], headers[i].Lines))
	}
	return resp
}
