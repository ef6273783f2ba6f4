package repositories

import (
	"context"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// JournalReader defines read operations for journal headers
type JournalReader interface {
	// FindHeaderWithLines retrieves a header with its lines expanded.
	FindHeaderWithLines(ctx context.Context, journalID int64) (*domain.JournalHeader, error)

	// FindActiveHeadersByDescription returns all active headers whose description equals description.
	FindActiveHeadersByDescription(ctx context.Context, description string) ([]domain.JournalHeader, error)

	// ListHeadersByCategory returns the headers of a GL category with their lines,
	// narrowed by the date bounds of filter.
	ListHeadersByCategory(ctx context.Context, categoryID int64, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error)
}

// JournalWriter defines write operations for journal headers
type JournalWriter interface {
	// SaveHeader creates a header and returns it with its assigned id.
	SaveHeader(ctx context.Context, header domain.JournalHeader) (*domain.JournalHeader, error)

	// DeleteHeader removes a header. Callers check deletability beforehand.
	DeleteHeader(ctx context.Context, journalID int64) error
}

// JournalLineWriter defines write operations for journal lines
type JournalLineWriter interface {
	// SaveLine creates a line under an existing header.
	SaveLine(ctx context.Context, line domain.JournalLine) (*domain.JournalLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	JournalLineWriter
}
