package services

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// JournalWorkflowSvc records and removes complete journal entries.
type JournalWorkflowSvc interface {
	// RecordJournalEntry creates a header for reference and one line per entry, in order.
	// On failure the returned error is a *domain.WorkflowError and the report tells what was left in the ERP.
	RecordJournalEntry(ctx context.Context, reference string, date string, entries []domain.JournalEntryInput) (*domain.JournalEntryReport, error)

	// RemoveJournalEntry deletes a journal entry through the header manager.
	RemoveJournalEntry(ctx context.Context, journalID int64) error

	// ListRuns lists persisted workflow runs, newest first.
	ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error)
}
