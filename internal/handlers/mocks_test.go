package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) AccountExists(ctx context.Context, code string) domain.AccountLookup {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.AccountLookup)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, code string, label string) (*domain.Account, error) {
	args := m.Called(ctx, code, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, code string, name string) (*domain.Account, error) {
	args := m.Called(ctx, code, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}
func (m *MockAccountService) EnsureAccount(ctx context.Context, ref domain.AccountRef) (*domain.Account, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateHeader(ctx context.Context, rawDate string, description string) (*domain.JournalHeader, error) {
	args := m.Called(ctx, rawDate, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}
func (m *MockJournalService) HeaderExists(ctx context.Context, description string) domain.HeaderLookup {
	return m.Called(ctx, description).Get(0).(domain.HeaderLookup)
}
func (m *MockJournalService) DeleteHeader(ctx context.Context, journalID int64) error {
	return m.Called(ctx, journalID).Error(0)
}
func (m *MockJournalService) GetHeader(ctx context.Context, journalID int64) (*domain.JournalHeader, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}
func (m *MockJournalService) ListGeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalHeader), args.Error(1)
}
func (m *MockJournalService) CreateLine(ctx context.Context, entry domain.EntryData, header domain.JournalHeader, account domain.Account, lineNumber int) (*domain.JournalLine, error) {
	args := m.Called(ctx, entry, header, account, lineNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalLine), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock WorkflowService ---
type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) RecordJournalEntry(ctx context.Context, reference string, date string, entries []domain.JournalEntryInput) (*domain.JournalEntryReport, error) {
	args := m.Called(ctx, reference, date, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryReport), args.Error(1)
}
func (m *MockWorkflowService) RemoveJournalEntry(ctx context.Context, journalID int64) error {
	return m.Called(ctx, journalID).Error(0)
}
func (m *MockWorkflowService) ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var next *string
	if n, ok := args.Get(1).(string); ok {
		next = &n
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.JournalRun), next, args.Error(2)
}

var _ portssvc.JournalWorkflowSvc = (*MockWorkflowService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ParseRows(r io.Reader) ([]domain.ImportRow, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportRow), args.Error(1)
}
func (m *MockImportService) ImportJournals(ctx context.Context, r io.Reader) ([]domain.ImportResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportResult), args.Error(1)
}

var _ portssvc.JournalImportSvc = (*MockImportService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalHeader), args.Error(1)
}
func (m *MockReportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) Dashboard(ctx context.Context, year int) ([]domain.DashboardMonth, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardMonth), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, userName string, password string) (string, time.Time, error) {
	args := m.Called(ctx, userName, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)
