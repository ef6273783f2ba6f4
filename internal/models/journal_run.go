package models

import "time"

// JournalRun is the journal_runs row of one workflow run.
type JournalRun struct {
	RunID      string    `json:"runID"` // Primary Key (UUID)
	Reference  string    `json:"reference"`
	JournalID  *int64    `json:"journalID"` // Nullable, set once a header exists in the ERP
	Status     string    `json:"status"`
	FailedStep string    `json:"failedStep"`
	LineCount  int       `json:"lineCount"`
	Error      string    `json:"error"`
	Steps      []byte    `json:"steps"` // JSONB
	CreatedAt  time.Time `json:"createdAt"`
}
