package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/utils/accounting"
)

const (
	defaultRunPageSize = 50
	maxRunPageSize     = 200
)

// WorkflowOption is a function that configures a workflowService
type WorkflowOption func(*workflowService)

// WithJournalRunRepository records every run that reaches the ERP.
func WithJournalRunRepository(repo portsrepo.JournalRunRepository) WorkflowOption {
	return func(s *workflowService) {
		s.runRepo = repo
	}
}

// WithEmptyHeaderCleanup deletes the header of a failed run that created no line.
func WithEmptyHeaderCleanup(enabled bool) WorkflowOption {
	return func(s *workflowService) {
		s.cleanupEmptyHeader = enabled
	}
}

// WithDuplicateRejection refuses references that already name an active header.
func WithDuplicateRejection(enabled bool) WorkflowOption {
	return func(s *workflowService) {
		s.rejectDuplicates = enabled
	}
}

type workflowService struct {
	BaseService
	accounts portssvc.AccountRegistrarSvc
	journals portssvc.JournalSvcFacade
	runRepo  portsrepo.JournalRunRepository
	validate *validator.Validate

	cleanupEmptyHeader bool
	rejectDuplicates   bool
}

// NewWorkflowService creates the journal-entry orchestrator.
func NewWorkflowService(accounts portssvc.AccountRegistrarSvc, journals portssvc.JournalSvcFacade, opts ...WorkflowOption) portssvc.JournalWorkflowSvc {
	s := &workflowService{
		accounts:           accounts,
		journals:           journals,
		validate:           validator.New(),
		cleanupEmptyHeader: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.JournalWorkflowSvc = (*workflowService)(nil)

type journalEntryRequest struct {
	Reference string                     `validate:"required"`
	Date      string                     `validate:"required"`
	Entries   []domain.JournalEntryInput `validate:"required,min=1,dive"`
}

// RecordJournalEntry runs the steps strictly in sequence and stops at the first failure.
// Whatever was created before the failure stays in the ERP unless it is an empty header
// and cleanup is enabled.
func (s *workflowService) RecordJournalEntry(ctx context.Context, reference string, date string, entries []domain.JournalEntryInput) (*domain.JournalEntryReport, error) {
	reference = strings.TrimSpace(reference)
	report := &domain.JournalEntryReport{
		Reference: reference,
		Lines:     []domain.JournalLine{},
		Steps:     []domain.StepResult{},
	}

	if err := s.validateRequest(journalEntryRequest{Reference: reference, Date: date, Entries: entries}); err != nil {
		report.Record(domain.StepValidate, 0, "", err)
		return report, &domain.WorkflowError{Step: domain.StepValidate, Report: report, Err: err}
	}
	for i, e := range entries {
		if !accounting.IsOneSided(e) {
			s.LogWarn(ctx, "Journal entry line is not one-sided",
				slog.String("reference", reference),
				slog.Int("line", i+1),
				slog.String("debit", e.Debit.String()),
				slog.String("credit", e.Credit.String()))
		}
	}
	report.Record(domain.StepValidate, 0, "", nil)

	var wfErr *domain.WorkflowError
	defer func() {
		s.saveRun(ctx, report, wfErr)
	}()
	fail := func(step domain.WorkflowStep, lineNumber int, code string, err error) (*domain.JournalEntryReport, error) {
		report.Record(step, lineNumber, code, err)
		s.cleanup(ctx, report)
		wfErr = &domain.WorkflowError{Step: step, LineNumber: lineNumber, AccountCode: code, Report: report, Err: err}
		s.LogError(ctx, err, "Journal entry workflow stopped",
			slog.String("reference", reference),
			slog.String("step", string(step)),
			slog.Int("line", lineNumber),
			slog.Int("lines_created", len(report.Lines)))
		return report, wfErr
	}

	lookup := s.journals.HeaderExists(ctx, reference)
	switch {
	case lookup.Exists() && s.rejectDuplicates:
		return fail(domain.StepDuplicate, 0, "", fmt.Errorf("%w: journal %q already exists (id %d)", apperrors.ErrDuplicate, reference, lookup.Headers[0].JournalID))
	case lookup.Exists():
		s.LogWarn(ctx, "Journal with the same reference already exists",
			slog.String("reference", reference),
			slog.Int("count", len(lookup.Headers)))
	}
	report.Record(domain.StepDuplicate, 0, "", nil)

	header, err := s.journals.CreateHeader(ctx, date, reference)
	if err != nil {
		return fail(domain.StepCreateHeader, 0, "", err)
	}
	report.Header = header
	report.Record(domain.StepCreateHeader, 0, "", nil)

	// At most one registration per distinct code within this run.
	resolved := make(map[string]*domain.Account, len(entries))
	lineNumber := 1
	for _, e := range entries {
		code := strings.TrimSpace(e.Account.Code)
		account, ok := resolved[code]
		if !ok {
			account, err = s.accounts.EnsureAccount(ctx, e.Account)
			if err != nil {
				return fail(domain.StepEnsureAccount, lineNumber, code, err)
			}
			resolved[code] = account
			report.Record(domain.StepEnsureAccount, lineNumber, code, nil)
		}

		line, err := s.journals.CreateLine(ctx, domain.EntryData{Date: date, Debit: e.Debit, Credit: e.Credit}, *header, *account, lineNumber)
		if err != nil {
			return fail(domain.StepCreateLine, lineNumber, code, err)
		}
		report.Lines = append(report.Lines, *line)
		report.Record(domain.StepCreateLine, lineNumber, code, nil)
		lineNumber++
	}

	s.LogInfo(ctx, "Journal entry recorded",
		slog.String("reference", reference),
		slog.Int64("journal_id", header.JournalID),
		slog.Int("lines", len(report.Lines)))
	return report, nil
}

func (s *workflowService) validateRequest(req journalEntryRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ve.Error())
		}
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return accounting.ValidateEntries(req.Entries)
}

// cleanup removes a header that received no line. Its failure is only recorded.
func (s *workflowService) cleanup(ctx context.Context, report *domain.JournalEntryReport) {
	if !s.cleanupEmptyHeader || report.Header == nil || len(report.Lines) > 0 {
		return
	}
	err := s.journals.DeleteHeader(context.WithoutCancel(ctx), report.Header.JournalID)
	report.Record(domain.StepCleanup, 0, "", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to clean up empty journal header", slog.Int64("journal_id", report.Header.JournalID))
		return
	}
	report.CleanedUp = true
	s.LogInfo(ctx, "Empty journal header cleaned up", slog.Int64("journal_id", report.Header.JournalID))
}

func (s *workflowService) saveRun(ctx context.Context, report *domain.JournalEntryReport, wfErr *domain.WorkflowError) {
	if s.runRepo == nil {
		return
	}
	run := domain.JournalRun{
		RunID:     uuid.NewString(),
		Reference: report.Reference,
		Status:    report.Status(),
		LineCount: len(report.Lines),
		Steps:     report.Steps,
		CreatedAt: time.Now().UTC(),
	}
	if report.Header != nil {
		id := report.Header.JournalID
		run.JournalID = &id
	}
	if wfErr != nil {
		run.FailedStep = wfErr.Step
		run.Error = wfErr.Err.Error()
	}
	if err := s.runRepo.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		s.LogError(ctx, err, "Failed to record journal run", slog.String("reference", report.Reference))
	}
}

func (s *workflowService) RemoveJournalEntry(ctx context.Context, journalID int64) error {
	return s.journals.DeleteHeader(ctx, journalID)
}

func (s *workflowService) ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error) {
	if s.runRepo == nil {
		return []domain.JournalRun{}, nil, nil
	}
	if limit <= 0 {
		limit = defaultRunPageSize
	}
	if limit > maxRunPageSize {
		limit = maxRunPageSize
	}
	runs, next, err := s.runRepo.ListRuns(ctx, status, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal runs")
		return nil, nil, err
	}
	if runs == nil {
		runs = []domain.JournalRun{}
	}
	return runs, next, nil
}
