package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindActiveAccountsByCode(ctx context.Context, code string) ([]domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodReader = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindActivePeriodsCovering(ctx context.Context, at time.Time) ([]domain.Period, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindHeaderWithLines(ctx context.Context, journalID int64) (*domain.JournalHeader, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}

func (m *MockJournalRepository) FindActiveHeadersByDescription(ctx context.Context, description string) ([]domain.JournalHeader, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalHeader), args.Error(1)
}

func (m *MockJournalRepository) ListHeadersByCategory(ctx context.Context, categoryID int64, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalHeader), args.Error(1)
}

func (m *MockJournalRepository) SaveHeader(ctx context.Context, header domain.JournalHeader) (*domain.JournalHeader, error) {
	args := m.Called(ctx, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalHeader), args.Error(1)
}

func (m *MockJournalRepository) DeleteHeader(ctx context.Context, journalID int64) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveLine(ctx context.Context, line domain.JournalLine) (*domain.JournalLine, error) {
	args := m.Called(ctx, line)
	if fn, ok := args.Get(0).(func(context.Context, domain.JournalLine) (*domain.JournalLine, error)); ok {
		return fn(ctx, line)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalLine), args.Error(1)
}

// --- Mock JournalRunRepository ---
type MockJournalRunRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRunRepository = (*MockJournalRunRepository)(nil)

func (m *MockJournalRunRepository) SaveRun(ctx context.Context, run domain.JournalRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockJournalRunRepository) ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		next = &tokenVal
	}
	return args.Get(0).([]domain.JournalRun), next, args.Error(2)
}

// --- Mock TokenIssuer ---
type MockTokenIssuer struct {
	mock.Mock
}

var _ portsrepo.TokenIssuer = (*MockTokenIssuer)(nil)

func (m *MockTokenIssuer) IssueToken(ctx context.Context, userName, password string) (string, error) {
	args := m.Called(ctx, userName, password)
	return args.String(0), args.Error(1)
}

// --- Mock JournalWorkflowSvc ---
type MockWorkflowService struct {
	mock.Mock
}

var _ portssvc.JournalWorkflowSvc = (*MockWorkflowService)(nil)

func (m *MockWorkflowService) RecordJournalEntry(ctx context.Context, reference string, date string, entries []domain.JournalEntryInput) (*domain.JournalEntryReport, error) {
	args := m.Called(ctx, reference, date, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryReport), args.Error(1)
}

func (m *MockWorkflowService) RemoveJournalEntry(ctx context.Context, journalID int64) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

func (m *MockWorkflowService) ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.JournalRun), nil, args.Error(2)
}
