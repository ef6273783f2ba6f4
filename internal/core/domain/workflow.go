package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryInput is one requested line of a journal entry.
type JournalEntryInput struct {
	Account AccountRef      `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// HeaderLookup is the tagged result of a duplicate-description check.
type HeaderLookup struct {
	Status  LookupStatus
	Headers []JournalHeader
	Err     error
}

// Exists reports true only when at least one header was confirmed.
func (l HeaderLookup) Exists() bool {
	return l.Status == LookupFound && len(l.Headers) > 0
}

// WorkflowStep names a step of the journal-entry workflow.
type WorkflowStep string

const (
	StepValidate      WorkflowStep = "VALIDATE"
	StepDuplicate     WorkflowStep = "DUPLICATE_CHECK"
	StepCreateHeader  WorkflowStep = "CREATE_HEADER"
	StepEnsureAccount WorkflowStep = "ENSURE_ACCOUNT"
	StepCreateLine    WorkflowStep = "CREATE_LINE"
	StepCleanup       WorkflowStep = "CLEANUP"
)

// StepResult records the outcome of one workflow step.
type StepResult struct {
	Step        WorkflowStep `json:"step"`
	LineNumber  int          `json:"lineNumber,omitempty"`
	AccountCode string       `json:"accountCode,omitempty"`
	Succeeded   bool         `json:"succeeded"`
	Error       string       `json:"error,omitempty"`
}

// JournalEntryReport describes what a workflow run left in the ERP.
type JournalEntryReport struct {
	Reference string         `json:"reference"`
	Header    *JournalHeader `json:"header,omitempty"`
	Lines     []JournalLine  `json:"lines"`
	Steps     []StepResult   `json:"steps"`
	CleanedUp bool           `json:"cleanedUp"`
}

// Record appends a step outcome.
func (r *JournalEntryReport) Record(step WorkflowStep, lineNumber int, accountCode string, err error) {
	res := StepResult{Step: step, LineNumber: lineNumber, AccountCode: accountCode, Succeeded: err == nil}
	if err != nil {
		res.Error = err.Error()
	}
	r.Steps = append(r.Steps, res)
}

// Status classifies the run for the journal-run log.
func (r *JournalEntryReport) Status() JournalRunStatus {
	failed := false
	for _, s := range r.Steps {
		if !s.Succeeded && s.Step != StepCleanup {
			failed = true
			break
		}
	}
	switch {
	case !failed:
		return RunSucceeded
	case r.CleanedUp:
		return RunCleanedUp
	case r.Header != nil:
		return RunPartial
	default:
		return RunFailed
	}
}

// WorkflowError reports the step at which a journal-entry workflow stopped.
// It unwraps to the underlying error kind.
type WorkflowError struct {
	Step        WorkflowStep
	LineNumber  int
	AccountCode string
	Report      *JournalEntryReport
	Err         error
}

func (e *WorkflowError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("journal entry %q failed at %s (line %d, account %s): %v", e.Report.Reference, e.Step, e.LineNumber, e.AccountCode, e.Err)
	}
	return fmt.Sprintf("journal entry %q failed at %s: %v", e.Report.Reference, e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// JournalRunStatus classifies a persisted workflow run.
type JournalRunStatus string

const (
	RunSucceeded JournalRunStatus = "succeeded"
	RunPartial   JournalRunStatus = "partial"
	RunFailed    JournalRunStatus = "failed"
	RunCleanedUp JournalRunStatus = "cleaned_up"
)

// JournalRun is a persisted record of one workflow run, kept for manual correction of
// partial failures.
type JournalRun struct {
	RunID      string           `json:"runID"`
	Reference  string           `json:"reference"`
	JournalID  *int64           `json:"journalID,omitempty"`
	Status     JournalRunStatus `json:"status"`
	FailedStep WorkflowStep     `json:"failedStep,omitempty"`
	LineCount  int              `json:"lineCount"`
	Error      string           `json:"error,omitempty"`
	Steps      []StepResult     `json:"steps"`
	CreatedAt  time.Time        `json:"createdAt"`
}
