package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

// ImportHeader is the CSV header expected by the journal import.
const ImportHeader = "reference,date,account,label,debit,credit"

const (
	importFields = 6
	colReference = 0
	colDate      = 1
	colAccount   = 2
	colLabel     = 3
	colDebit     = 4
	colCredit    = 5
)

type importService struct {
	BaseService
	accounts portssvc.AccountReaderSvc
	workflow portssvc.JournalWorkflowSvc
}

// NewImportService creates the CSV journal importer.
func NewImportService(accounts portssvc.AccountReaderSvc, workflow portssvc.JournalWorkflowSvc) portssvc.JournalImportSvc {
	return &importService{
		accounts: accounts,
		workflow: workflow,
	}
}

var _ portssvc.JournalImportSvc = (*importService)(nil)

// ParseRows reads every row of the file. The first error stops the parse.
func (s *importService) ParseRows(r io.Reader) ([]domain.ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = importFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading journal CSV: %w", apperrors.ErrValidation, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: journal CSV has no rows", apperrors.ErrValidation)
	}
	if got := strings.ToLower(strings.Join(records[0], ",")); got != ImportHeader {
		return nil, fmt.Errorf("%w: unexpected header %q, want %q", apperrors.ErrValidation, got, ImportHeader)
	}

	// Skip header row.
	rows := make([]domain.ImportRow, 0, len(records)-1)
	groupDates := make(map[string]string)
	for i, rec := range records[1:] {
		row, err := unmarshalImportRow(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", apperrors.ErrValidation, i+2, err)
		}
		row.Line = i + 2
		if d, ok := groupDates[row.Reference]; ok && d != row.Date {
			return nil, fmt.Errorf("%w: row %d: reference %q has date %q, earlier rows use %q", apperrors.ErrValidation, row.Line, row.Reference, row.Date, d)
		}
		groupDates[row.Reference] = row.Date
		rows = append(rows, row)
	}
	return rows, nil
}

func unmarshalImportRow(rec []string) (domain.ImportRow, error) {
	row := domain.ImportRow{
		Reference:   strings.TrimSpace(rec[colReference]),
		Date:        utils.NormalizeAccountingDate(rec[colDate]),
		AccountCode: strings.TrimSpace(rec[colAccount]),
		Label:       strings.TrimSpace(rec[colLabel]),
	}
	if row.Reference == "" {
		return row, errors.New("reference is empty")
	}
	if row.AccountCode == "" {
		return row, errors.New("account is empty")
	}
	if _, err := utils.ParseAccountingDate(row.Date, time.UTC); err != nil {
		return row, err
	}

	var err error
	if row.Debit, err = parseAmount(rec[colDebit]); err != nil {
		return row, fmt.Errorf("parsing debit %q: %w", rec[colDebit], err)
	}
	if row.Credit, err = parseAmount(rec[colCredit]); err != nil {
		return row, fmt.Errorf("parsing credit %q: %w", rec[colCredit], err)
	}
	return row, nil
}

// parseAmount accepts an empty cell as zero and a decimal comma when no point is present.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if raw == "" {
		return decimal.Zero, nil
	}
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	return decimal.NewFromString(raw)
}

// ImportJournals groups rows by reference in file order and records each group on its own.
// A failed group does not stop the following ones.
func (s *importService) ImportJournals(ctx context.Context, r io.Reader) ([]domain.ImportResult, error) {
	rows, err := s.ParseRows(r)
	if err != nil {
		return nil, err
	}

	var order []string
	groups := make(map[string][]domain.ImportRow)
	for _, row := range rows {
		if _, ok := groups[row.Reference]; !ok {
			order = append(order, row.Reference)
		}
		groups[row.Reference] = append(groups[row.Reference], row)
	}

	known := make(map[string]domain.AccountRef)
	results := make([]domain.ImportResult, 0, len(order))
	for _, ref := range order {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		group := groups[ref]
		entries := make([]domain.JournalEntryInput, 0, len(group))
		for _, row := range group {
			entries = append(entries, domain.JournalEntryInput{
				Account: s.accountRef(ctx, known, row),
				Debit:   row.Debit,
				Credit:  row.Credit,
			})
		}

		result := domain.ImportResult{Reference: ref, Rows: len(group)}
		report, err := s.workflow.RecordJournalEntry(ctx, ref, group[0].Date, entries)
		if report != nil {
			result.Status = report.Status()
			if report.Header != nil && !report.CleanedUp {
				id := report.Header.JournalID
				result.JournalID = &id
			}
			// Codes registered by this group are looked up again by the next ones.
			for _, step := range report.Steps {
				if step.Step == domain.StepEnsureAccount && step.Succeeded && !known[step.AccountCode].Exists {
					delete(known, step.AccountCode)
				}
			}
		}
		if err != nil {
			result.Error = err.Error()
			if result.Status == "" {
				result.Status = domain.RunFailed
			}
			s.LogWarn(ctx, "Journal import group failed", slog.String("reference", ref), slog.String("error", err.Error()))
		}
		results = append(results, result)
	}

	s.LogInfo(ctx, "Journal import finished", slog.Int("groups", len(results)), slog.Int("rows", len(rows)))
	return results, nil
}

// accountRef marks codes already registered in the ERP so the workflow does not create them.
func (s *importService) accountRef(ctx context.Context, known map[string]domain.AccountRef, row domain.ImportRow) domain.AccountRef {
	if ref, ok := known[row.AccountCode]; ok {
		return ref
	}
	ref := domain.AccountRef{Code: row.AccountCode, Label: row.Label}
	if lookup := s.accounts.AccountExists(ctx, row.AccountCode); lookup.Exists() {
		ref.ID = lookup.Account.AccountID
		ref.Label = lookup.Account.Name
		ref.Exists = true
	}
	known[row.AccountCode] = ref
	return ref
}
