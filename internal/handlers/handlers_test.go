package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/handlers"
	"github.com/SscSPs/gl_gateway/internal/middleware"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

const testSessionID = "sess-test"

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	sessions  *session.MemoryStore
	accounts  *MockAccountService
	journals  *MockJournalService
	workflow  *MockWorkflowService
	importer  *MockImportService
	reporting *MockReportingService
	auth      *MockAuthService
	token     string
}

// generateTestToken signs a gateway JWT for sessionID.
func (suite *HandlerTestSuite) generateTestToken(sessionID string) string {
	token, err := utils.GenerateJWT(sessionID, "SuperUser", suite.cfg.JWTSecret, time.Hour, "gl-gateway-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:    "test-secret-key-that-is-long-enough",
		IsProduction: true,
		ERP:          config.ERPConstants{TimezoneName: "UTC"},
	}
	suite.sessions = session.NewMemoryStore()
	suite.Require().NoError(suite.sessions.Save(context.Background(), session.Session{
		ID: testSessionID, UserName: "SuperUser", ERPToken: "erp-token", ExpiresAt: time.Now().Add(time.Hour),
	}))

	suite.accounts = new(MockAccountService)
	suite.journals = new(MockJournalService)
	suite.workflow = new(MockWorkflowService)
	suite.importer = new(MockImportService)
	suite.reporting = new(MockReportingService)
	suite.auth = new(MockAuthService)

	loginLimiter, err := middleware.NewLimiter("2-M")
	suite.Require().NoError(err)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Account:   suite.accounts,
		Journal:   suite.journals,
		Workflow:  suite.workflow,
		Import:    suite.importer,
		Reporting: suite.reporting,
		Auth:      suite.auth,
	}, suite.sessions, loginLimiter)

	suite.token = suite.generateTestToken(testSessionID)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.accounts.AssertExpectations(suite.T())
	suite.journals.AssertExpectations(suite.T())
	suite.workflow.AssertExpectations(suite.T())
	suite.importer.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.auth.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](suite *HandlerTestSuite, w *httptest.ResponseRecorder) T {
	var out T
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// --- Auth ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestUnknownSession() {
	suite.token = suite.generateTestToken("logged-out")
	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Session expired")
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	expires := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	suite.auth.On("Login", mock.Anything, "SuperUser", "System").Return("signed-jwt", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{UserName: "SuperUser", Password: "System"})
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.LoginResponse](suite, w)
	suite.Equal("signed-jwt", resp.Token)
	suite.True(expires.Equal(resp.ExpiresAt))
}

func (suite *HandlerTestSuite) TestLogin_RejectedCredentialsAreNotEchoed() {
	suite.auth.On("Login", mock.Anything, "SuperUser", "wrong").
		Return("", time.Time{}, fmt.Errorf("idempiere: status 401: %w", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{UserName: "SuperUser", Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid username or password", decodeBody[handlers.ErrorResponse](suite, w).Error)
}

func (suite *HandlerTestSuite) TestLogin_BadBodyAndRateLimit() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"userName": "SuperUser"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"userName": "SuperUser"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"userName": "SuperUser"})
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *HandlerTestSuite) TestLogout() {
	suite.auth.On("Logout", mock.Anything, testSessionID).Return(nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/auth/logout", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestListAccounts() {
	suite.accounts.On("ListAccounts", mock.Anything).
		Return([]domain.Account{{AccountID: 42, Code: "700000", Name: "Sales", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ListAccountsResponse](suite, w)
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("700000", resp.Accounts[0].Code)
}

func (suite *HandlerTestSuite) TestListAccounts_SessionReachesService() {
	suite.accounts.On("ListAccounts", mock.MatchedBy(func(ctx context.Context) bool {
		s, ok := session.FromContext(ctx)
		return ok && s.ERPToken == "erp-token"
	})).Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.accounts.On("GetAccountByCode", mock.Anything, "999").
		Return(nil, fmt.Errorf("account 999: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/999", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAccountExists_ReportsLookupFailure() {
	suite.accounts.On("AccountExists", mock.Anything, "700000").
		Return(domain.AccountLookup{Status: domain.LookupFailed}).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/700000/exists", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.AccountExistsResponse](suite, w)
	suite.False(resp.Exists)
	suite.Equal(domain.LookupFailed, resp.Status)
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	suite.accounts.On("CreateAccount", mock.Anything, "700300", "Services").
		Return(&domain.Account{AccountID: 43, Code: "700300", Name: "Services", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{Code: "700300", Label: "Services"})
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal(int64(43), decodeBody[dto.AccountResponse](suite, w).AccountID)
}

func (suite *HandlerTestSuite) TestCreateAccount_ERPRejection() {
	suite.accounts.On("CreateAccount", mock.Anything, "700300", "").
		Return(nil, fmt.Errorf("%w: 700300: %w", apperrors.ErrAccountCreateFailed, apperrors.ErrTransport)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{Code: "700300"})
	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_MissingCode() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", map[string]string{"label": "x"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeactivateAccount() {
	suite.accounts.On("DeactivateAccount", mock.Anything, "700000").Return(nil).Once()
	w := suite.do(http.MethodDelete, "/api/v1/accounts/700000", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Journals ---

func recordRequest() dto.RecordJournalRequest {
	return dto.RecordJournalRequest{
		Reference: "INV-42",
		Date:      "2024-03-15",
		Entries: []dto.JournalEntryRequest{
			{Account: dto.AccountRefRequest{Code: "1001", Exists: true, ID: 7}, Credit: decimal.NewFromInt(500)},
			{Account: dto.AccountRefRequest{Code: "2002", Label: "Client B"}, Debit: decimal.NewFromInt(500)},
		},
	}
}

func (suite *HandlerTestSuite) TestRecordJournal_Success() {
	header := &domain.JournalHeader{JournalID: 1000500, Description: "INV-42", DocStatus: domain.Draft}
	report := &domain.JournalEntryReport{
		Reference: "INV-42",
		Header:    header,
		Lines: []domain.JournalLine{
			{LineID: 1, LineNumber: 1, AccountID: 7, AmtAcctCr: decimal.NewFromInt(500)},
			{LineID: 2, LineNumber: 2, AccountID: 8, AmtAcctDr: decimal.NewFromInt(500)},
		},
	}
	report.Record(domain.StepCreateHeader, 0, "", nil)

	suite.workflow.On("RecordJournalEntry", mock.Anything, "INV-42", "2024-03-15",
		mock.MatchedBy(func(entries []domain.JournalEntryInput) bool {
			return len(entries) == 2 &&
				entries[0].Account.Code == "1001" && entries[0].Account.Exists && entries[0].Account.ID == 7 &&
				entries[0].Credit.Equal(decimal.NewFromInt(500)) && entries[0].Debit.IsZero() &&
				entries[1].Account.Code == "2002" && entries[1].Account.Label == "Client B" &&
				entries[1].Debit.Equal(decimal.NewFromInt(500))
		})).Return(report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", recordRequest())
	suite.Equal(http.StatusCreated, w.Code)
	resp := decodeBody[dto.JournalEntryReportResponse](suite, w)
	suite.Equal(domain.RunSucceeded, resp.Status)
	suite.Require().NotNil(resp.Journal)
	suite.Equal(int64(1000500), resp.Journal.JournalID)
	suite.Len(resp.Journal.Lines, 2)
}

func (suite *HandlerTestSuite) workflowFailure(step domain.WorkflowStep, line int, code string, header *domain.JournalHeader, cause error) error {
	report := &domain.JournalEntryReport{Reference: "INV-42", Header: header}
	report.Record(step, line, code, cause)
	return &domain.WorkflowError{Step: step, LineNumber: line, AccountCode: code, Report: report, Err: cause}
}

func (suite *HandlerTestSuite) TestRecordJournal_ErrorKinds() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no open period", suite.workflowFailure(domain.StepCreateHeader, 0, "", nil, fmt.Errorf("%w for date 2024-03-15", apperrors.ErrNoOpenPeriod)), http.StatusUnprocessableEntity},
		{"unbalanced", suite.workflowFailure(domain.StepValidate, 0, "", nil, apperrors.ErrJournalUnbalanced), http.StatusBadRequest},
		{"duplicate", suite.workflowFailure(domain.StepDuplicate, 0, "", nil, apperrors.ErrDuplicate), http.StatusConflict},
		{"line rejected", suite.workflowFailure(domain.StepCreateLine, 2, "2002", &domain.JournalHeader{JournalID: 9},
			fmt.Errorf("%w: line 2: %w", apperrors.ErrJournalLineCreateFailed, apperrors.ErrTransport)), http.StatusBadGateway},
		{"session rejected mid-run", suite.workflowFailure(domain.StepEnsureAccount, 1, "1001", &domain.JournalHeader{JournalID: 9},
			fmt.Errorf("%w: 1001: %w", apperrors.ErrAccountCreateFailed, apperrors.ErrUnauthorized)), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.workflow.On("RecordJournalEntry", mock.Anything, "INV-42", "2024-03-15", mock.Anything).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/journals", recordRequest())
			suite.Equal(tc.status, w.Code)
			resp := decodeBody[dto.JournalEntryErrorResponse](suite, w)
			suite.NotEmpty(resp.Step)
			suite.Equal("INV-42", resp.Report.Reference)
		})
	}
}

func (suite *HandlerTestSuite) TestRecordJournal_PartialReportCarriesJournal() {
	err := suite.workflowFailure(domain.StepCreateLine, 2, "2002", &domain.JournalHeader{JournalID: 9},
		fmt.Errorf("%w: line 2", apperrors.ErrJournalLineCreateFailed))
	suite.workflow.On("RecordJournalEntry", mock.Anything, "INV-42", "2024-03-15", mock.Anything).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", recordRequest())
	resp := decodeBody[dto.JournalEntryErrorResponse](suite, w)
	suite.Equal(domain.StepCreateLine, resp.Step)
	suite.Equal(2, resp.LineNumber)
	suite.Equal("2002", resp.AccountCode)
	suite.Equal(domain.RunPartial, resp.Report.Status)
	suite.Require().NotNil(resp.Report.Journal)
	suite.Equal(int64(9), resp.Report.Journal.JournalID)
}

func (suite *HandlerTestSuite) TestRecordJournal_InvalidBody() {
	cases := map[string]any{
		"no entries":   dto.RecordJournalRequest{Reference: "INV-1", Date: "2024-03-15"},
		"no reference": dto.RecordJournalRequest{Date: "2024-03-15", Entries: recordRequest().Entries},
		"no code": dto.RecordJournalRequest{Reference: "INV-1", Date: "2024-03-15",
			Entries: []dto.JournalEntryRequest{{Debit: decimal.NewFromInt(1)}}},
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.do(http.MethodPost, "/api/v1/journals", body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestGetJournal() {
	suite.journals.On("GetHeader", mock.Anything, int64(9)).Return(&domain.JournalHeader{
		JournalID: 9, Description: "REF-001", DocStatus: domain.Completed,
		Lines: []domain.JournalLine{{LineID: 1, LineNumber: 10, AccountIdentifier: "700000_Sales", AmtAcctCr: decimal.NewFromInt(10)}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/9", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.JournalResponse](suite, w)
	suite.Require().Len(resp.Lines, 1)
	suite.Equal("700000", resp.Lines[0].AccountCode)
}

func (suite *HandlerTestSuite) TestDeleteJournal() {
	w := suite.do(http.MethodDelete, "/api/v1/journals/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.workflow.On("RemoveJournalEntry", mock.Anything, int64(9)).
		Return(fmt.Errorf("journal 9 is CO: %w", apperrors.ErrNotDeletable)).Once()
	w = suite.do(http.MethodDelete, "/api/v1/journals/9", nil)
	suite.Equal(http.StatusConflict, w.Code)

	suite.workflow.On("RemoveJournalEntry", mock.Anything, int64(10)).Return(nil).Once()
	w = suite.do(http.MethodDelete, "/api/v1/journals/10", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestJournalExists() {
	w := suite.do(http.MethodGet, "/api/v1/journals/exists", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.journals.On("HeaderExists", mock.Anything, "INV 42").Return(domain.HeaderLookup{
		Status: domain.LookupFound, Headers: []domain.JournalHeader{{JournalID: 9}, {JournalID: 12}},
	}).Once()
	w = suite.do(http.MethodGet, "/api/v1/journals/exists?description=INV%2042", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.JournalExistsResponse](suite, w)
	suite.True(resp.Exists)
	suite.Equal([]int64{9, 12}, resp.JournalIDs)
}

func (suite *HandlerTestSuite) TestImportJournals() {
	csv := "reference,date,account,label,debit,credit\nINV-1,2024-03-15,1001,,,100\nINV-1,2024-03-15,2002,,100,\n"
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "journals.csv")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte(csv))
	suite.Require().NoError(mw.Close())

	id := int64(9)
	suite.importer.On("ImportJournals", mock.Anything, mock.Anything).Return([]domain.ImportResult{
		{Reference: "INV-1", Rows: 2, JournalID: &id, Status: domain.RunSucceeded},
		{Reference: "INV-2", Rows: 2, Status: domain.RunFailed, Error: "no open period"},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/journals/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ImportJournalsResponse](suite, w)
	suite.Equal(1, resp.Succeeded)
	suite.Equal(1, resp.Failed)
}

func (suite *HandlerTestSuite) TestImportJournals_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/journals/import", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestGeneralLedger_Filter() {
	suite.reporting.On("GeneralLedger", mock.Anything, mock.MatchedBy(func(f domain.GeneralLedgerFilter) bool {
		return f.AccountCode == "700000" && f.From != nil && f.To != nil &&
			f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.JournalHeader{{JournalID: 9}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger?from=2024-01-01&to=2024-03-31&account=700000", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(decodeBody[dto.GeneralLedgerResponse](suite, w).Journals, 1)
}

func (suite *HandlerTestSuite) TestGeneralLedger_BadDates() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/ledger?from=15/03/2024", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/ledger?from=2024-03-02&to=2024-03-01", nil).Code)
}

func (suite *HandlerTestSuite) TestTrialBalance_IncludesWholeDay() {
	suite.reporting.On("TrialBalance", mock.Anything, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)).
		Return(&domain.TrialBalance{
			Rows:        []domain.TrialBalanceRow{{AccountCode: "700000", Credit: decimal.NewFromInt(10), Balance: decimal.NewFromInt(-10)}},
			TotalDebit:  decimal.NewFromInt(10),
			TotalCredit: decimal.NewFromInt(10),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance?asOf=2024-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.TrialBalanceResponse](suite, w)
	suite.Equal("2024-03-31", resp.AsOf)
	suite.True(resp.Balanced)
}

func (suite *HandlerTestSuite) TestTrialBalance_ERPDown() {
	suite.reporting.On("TrialBalance", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to retrieve general ledger: %w", apperrors.ErrTransport)).Once()
	w := suite.do(http.MethodGet, "/api/v1/reports/trial-balance", nil)
	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/reports/dashboard?year=abc", nil).Code)

	months := make([]domain.DashboardMonth, 12)
	for i := range months {
		months[i].Month = i
	}
	suite.reporting.On("Dashboard", mock.Anything, 2024).Return(months, nil).Once()
	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard?year=2024", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.DashboardResponse](suite, w)
	suite.Equal(2024, resp.Year)
	suite.Len(resp.Months, 12)
}

// --- Journal runs ---

func (suite *HandlerTestSuite) TestListJournalRuns() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/journal-runs?status=weird", nil).Code)

	suite.workflow.On("ListRuns", mock.Anything, domain.RunPartial, 20, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "abc"
	})).Return([]domain.JournalRun{{RunID: "r1", Status: domain.RunPartial}}, "next", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-runs?status=partial&limit=20&nextToken=abc", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ListJournalRunsResponse](suite, w)
	suite.Len(resp.Runs, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
	suite.True(strings.HasPrefix(resp.Runs[0].RunID, "r"))
}
