package repositories

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// JournalRunRepository persists the outcome of journal-entry workflow runs.
type JournalRunRepository interface {
	// SaveRun stores one run.
	SaveRun(ctx context.Context, run domain.JournalRun) error

	// ListRuns retrieves runs newest first, optionally narrowed to one status, using token-based pagination.
	// It returns the runs, a token for the next page, and an error.
	ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error)
}
