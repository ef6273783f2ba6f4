package services

import (
	"context"
	"io"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// JournalImportSvc records journal entries read from a CSV file.
type JournalImportSvc interface {
	// ParseRows reads and validates every CSV row without touching the ERP.
	ParseRows(r io.Reader) ([]domain.ImportRow, error)

	// ImportJournals records every reference group of the file through the workflow.
	ImportJournals(ctx context.Context, r io.Reader) ([]domain.ImportResult, error)
}
