package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// AccountRefRequest names the account of one journal entry line.
type AccountRefRequest struct {
	ID     int64  `json:"id"`
	Code   string `json:"code" binding:"required"`
	Label  string `json:"label"`
	Exists bool   `json:"exists"` // Set when the caller knows the code is already registered
}

// JournalEntryRequest is one requested debit or credit.
type JournalEntryRequest struct {
	Account AccountRefRequest `json:"account"`
	Debit   decimal.Decimal   `json:"debit"`
	Credit  decimal.Decimal   `json:"credit"`
}

// RecordJournalRequest defines the data needed to record a journal entry.
type RecordJournalRequest struct {
	Reference string                `json:"reference" binding:"required"`
	Date      string                `json:"date" binding:"required"` // "2024-03-15" or "2024-03-15 10:00:00"
	Entries   []JournalEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// ToDomainEntries converts the requested entries in order.
func (r RecordJournalRequest) ToDomainEntries() []domain.JournalEntryInput {
	out := make([]domain.JournalEntryInput, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, domain.JournalEntryInput{
			Account: domain.AccountRef{
				ID:     e.Account.ID,
				Code:   e.Account.Code,
				Label:  e.Account.Label,
				Exists: e.Account.Exists,
			},
			Debit:  e.Debit,
			Credit: e.Credit,
		})
	}
	return out
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      int64           `json:"lineID"`
	LineNumber  int             `json:"lineNumber"`
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode,omitempty"`
	Account     string          `json:"account,omitempty"`
	DateAcct    time.Time       `json:"dateAcct"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal header.
type JournalResponse struct {
	JournalID   int64                 `json:"journalID"`
	Description string                `json:"description"`
	DateAcct    time.Time             `json:"dateAcct"`
	DocStatus   domain.DocStatus      `json:"docStatus"`
	PeriodID    int64                 `json:"periodID"`
	Lines       []JournalLineResponse `json:"lines"`
}

// JournalEntryReportResponse describes what a recording left in the ERP.
type JournalEntryReportResponse struct {
	Reference string                  `json:"reference"`
	Status    domain.JournalRunStatus `json:"status"`
	Journal   *JournalResponse        `json:"journal,omitempty"`
	Steps     []domain.StepResult     `json:"steps"`
	CleanedUp bool                    `json:"cleanedUp"`
}

// JournalEntryErrorResponse is returned when a recording stops before completion.
type JournalEntryErrorResponse struct {
	Error       string                     `json:"error"`
	Step        domain.WorkflowStep        `json:"step"`
	LineNumber  int                        `json:"lineNumber,omitempty"`
	AccountCode string                     `json:"accountCode,omitempty"`
	Report      JournalEntryReportResponse `json:"report"`
}

// JournalExistsResponse reports headers sharing a description.
type JournalExistsResponse struct {
	Description string              `json:"description"`
	Exists      bool                `json:"exists"`
	Status      domain.LookupStatus `json:"status"`
	JournalIDs  []int64             `json:"journalIDs"`
}

// ToJournalLineResponse converts a domain.JournalLine.
func ToJournalLineResponse(l domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		LineNumber:  l.LineNumber,
		AccountID:   l.AccountID,
		AccountCode: l.AccountCode(),
		Account:     l.AccountIdentifier,
		DateAcct:    l.DateAcct,
		Debit:       l.AmtAcctDr,
		Credit:      l.AmtAcctCr,
	}
}

// ToJournalResponse converts a domain.JournalHeader, lines included.
func ToJournalResponse(h *domain.JournalHeader, lines []domain.JournalLine) JournalResponse {
	resp := JournalResponse{
		JournalID:   h.JournalID,
		Description: h.Description,
		DateAcct:    h.DateAcct,
		DocStatus:   h.DocStatus,
		PeriodID:    h.PeriodID,
		Lines:       make([]JournalLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, ToJournalLineResponse(l))
	}
	return resp
}

// ToJournalEntryReportResponse converts a workflow report.
func ToJournalEntryReportResponse(r *domain.JournalEntryReport) JournalEntryReportResponse {
	resp := JournalEntryReportResponse{
		Reference: r.Reference,
		Status:    r.Status(),
		Steps:     r.Steps,
		CleanedUp: r.CleanedUp,
	}
	if resp.Steps == nil {
		resp.Steps = []domain.StepResult{}
	}
	if r.Header != nil {
		j := ToJournalResponse(r.Header, r.Lines)
		resp.Journal = &j
	}
	return resp
}

// ToJournalExistsResponse converts a duplicate lookup.
func ToJournalExistsResponse(description string, lookup domain.HeaderLookup) JournalExistsResponse {
	resp := JournalExistsResponse{
		Description: description,
		Exists:      lookup.Exists(),
		Status:      lookup.Status,
		JournalIDs:  make([]int64, 0, len(lookup.Headers)),
	}
	for _, h := range lookup.Headers {
		resp.JournalIDs = append(resp.JournalIDs, h.JournalID)
	}
	return resp
}
