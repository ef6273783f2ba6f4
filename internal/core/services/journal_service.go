package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

// journalService manages journal headers and composes their lines.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	periods     portssvc.PeriodResolverSvc
	erp         config.ERPConstants
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, periods portssvc.PeriodResolverSvc, erp config.ERPConstants) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		periods:     periods,
		erp:         erp,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateHeader(ctx context.Context, rawDate string, description string) (*domain.JournalHeader, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: journal description is required", apperrors.ErrValidation)
	}
	at, err := utils.ParseAccountingDate(rawDate, s.erp.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	periodID, err := s.periods.ResolvePeriod(ctx, at)
	if err != nil {
		return nil, err
	}

	header := domain.JournalHeader{
		Description: description,
		DateAcct:    at,
		DateDoc:     at,
		DocStatus:   domain.Draft,
		PeriodID:    periodID,
		CategoryID:  s.erp.GLCategoryID,
		IsActive:    true,
	}
	created, err := s.journalRepo.SaveHeader(ctx, header)
	if err != nil {
		s.LogError(ctx, err, "Failed to create journal header", slog.String("description", description))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrJournalCreateFailed, err)
	}

	s.LogInfo(ctx, "Journal header created",
		slog.Int64("journal_id", created.JournalID),
		slog.Int64("period_id", periodID),
		slog.String("description", description))
	return created, nil
}

func (s *journalService) HeaderExists(ctx context.Context, description string) domain.HeaderLookup {
	headers, err := s.journalRepo.FindActiveHeadersByDescription(ctx, description)
	if err != nil {
		s.LogWarn(ctx, "Journal lookup failed, treating as absent",
			slog.String("description", description),
			slog.String("error", err.Error()))
		return domain.HeaderLookup{Status: domain.LookupFailed, Headers: []domain.JournalHeader{}, Err: err}
	}
	if len(headers) == 0 {
		return domain.HeaderLookup{Status: domain.LookupNotFound, Headers: []domain.JournalHeader{}}
	}
	return domain.HeaderLookup{Status: domain.LookupFound, Headers: headers}
}

// DeleteHeader checks then deletes. The check and the delete are separate ERP calls.
func (s *journalService) DeleteHeader(ctx context.Context, journalID int64) error {
	header, err := s.journalRepo.FindHeaderWithLines(ctx, journalID)
	if err != nil {
		return err
	}
	if !header.IsDraft() {
		return fmt.Errorf("%w: journal %d has status %s, only drafts can be deleted", apperrors.ErrNotDeletable, journalID, header.DocStatus)
	}
	if len(header.Lines) > 0 {
		return fmt.Errorf("%w: journal %d still has %d lines", apperrors.ErrNotDeletable, journalID, len(header.Lines))
	}

	if err := s.journalRepo.DeleteHeader(ctx, journalID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal header", slog.Int64("journal_id", journalID))
		return err
	}
	s.LogInfo(ctx, "Journal header deleted", slog.Int64("journal_id", journalID))
	return nil
}

func (s *journalService) GetHeader(ctx context.Context, journalID int64) (*domain.JournalHeader, error) {
	return s.journalRepo.FindHeaderWithLines(ctx, journalID)
}

// ListGeneralLedger returns headers by date. With an account filter only the matching
// lines are kept, and headers left without lines are dropped.
func (s *journalService) ListGeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	headers, err := s.journalRepo.ListHeadersByCategory(ctx, s.erp.GLCategoryID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list general ledger")
		return nil, err
	}

	code := strings.TrimSpace(filter.AccountCode)
	out := make([]domain.JournalHeader, 0, len(headers))
	for _, h := range headers {
		sort.SliceStable(h.Lines, func(i, j int) bool { return h.Lines[i].LineNumber < h.Lines[j].LineNumber })
		if code != "" {
			kept := h.Lines[:0:0]
			for _, l := range h.Lines {
				if l.AccountCode() == code {
					kept = append(kept, l)
				}
			}
			if len(kept) == 0 {
				continue
			}
			h.Lines = kept
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DateAcct.Equal(out[j].DateAcct) {
			return out[i].DateAcct.Before(out[j].DateAcct)
		}
		return out[i].JournalID < out[j].JournalID
	})
	return out, nil
}

// CreateLine is the single line composer. Source and accounted amounts are equal
// because the ledger uses one currency.
func (s *journalService) CreateLine(ctx context.Context, entry domain.EntryData, header domain.JournalHeader, account domain.Account, lineNumber int) (*domain.JournalLine, error) {
	if header.JournalID == 0 {
		return nil, fmt.Errorf("%w: line %d has no persisted header", apperrors.ErrValidation, lineNumber)
	}
	if account.AccountID == 0 {
		return nil, fmt.Errorf("%w: line %d has no persisted account", apperrors.ErrValidation, lineNumber)
	}

	dateAcct := header.DateAcct
	if strings.TrimSpace(entry.Date) != "" {
		parsed, err := utils.ParseAccountingDate(entry.Date, s.erp.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", apperrors.ErrValidation, lineNumber, err)
		}
		dateAcct = parsed
	}

	line := domain.JournalLine{
		JournalID:   header.JournalID,
		AccountID:   account.AccountID,
		LineNumber:  lineNumber,
		CurrencyID:  s.erp.CurrencyID,
		DateAcct:    dateAcct,
		AmtSourceDr: entry.Debit,
		AmtSourceCr: entry.Credit,
		AmtAcctDr:   entry.Debit,
		AmtAcctCr:   entry.Credit,
	}
	created, err := s.journalRepo.SaveLine(ctx, line)
	if err != nil {
		s.LogError(ctx, err, "Failed to create journal line",
			slog.Int64("journal_id", header.JournalID),
			slog.Int("line", lineNumber),
			slog.String("account", account.Code))
		return nil, fmt.Errorf("%w: line %d: %w", apperrors.ErrJournalLineCreateFailed, lineNumber, err)
	}
	if created.AccountIdentifier == "" {
		created.AccountIdentifier = account.Code
	}

	s.LogDebug(ctx, "Journal line created",
		slog.Int64("journal_id", header.JournalID),
		slog.Int("line", lineNumber),
		slog.Int64("line_id", created.LineID))
	return created, nil
}
