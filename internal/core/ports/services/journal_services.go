package services

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// JournalHeaderSvc manages journal headers.
type JournalHeaderSvc interface {
	// CreateHeader resolves the period of rawDate and creates a draft header described by description.
	CreateHeader(ctx context.Context, rawDate string, description string) (*domain.JournalHeader, error)

	// HeaderExists returns every active header whose description equals description.
	// Lookup failures are reported in the result, never as an error.
	HeaderExists(ctx context.Context, description string) domain.HeaderLookup

	// DeleteHeader deletes a draft header without lines, else fails with apperrors.ErrNotDeletable.
	DeleteHeader(ctx context.Context, journalID int64) error

	// GetHeader retrieves a header with its lines.
	GetHeader(ctx context.Context, journalID int64) (*domain.JournalHeader, error)

	// ListGeneralLedger lists the headers of the general-journal category with their lines.
	ListGeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error)
}

// JournalLineSvc composes journal lines.
type JournalLineSvc interface {
	// CreateLine creates one line of header for account at lineNumber.
	CreateLine(ctx context.Context, entry domain.EntryData, header domain.JournalHeader, account domain.Account, lineNumber int) (*domain.JournalLine, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalHeaderSvc
	JournalLineSvc
}
