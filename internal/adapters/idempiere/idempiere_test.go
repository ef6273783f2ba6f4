package idempiere

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	"github.com/SscSPs/gl_gateway/internal/core/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
)

type recordedRequest struct {
	Method string
	Path   string
	Filter string
	Expand string
	Auth   string
	Body   map[string]any
}

type IdempiereTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
	sessions *session.MemoryStore
	client   *Client
	provider struct {
		accounts *AccountRepository
		periods  *PeriodRepository
		journals *JournalRepository
		tokens   *TokenIssuer
	}
	ctx context.Context
}

func (s *IdempiereTestSuite) SetupTest() {
	s.requests = nil
	s.handler = func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Filter: r.URL.Query().Get("$filter"),
			Expand: r.URL.Query().Get("$expand"),
			Auth:   r.Header.Get("Authorization"),
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()
		s.handler(w, r)
	}))

	erp := config.ERPConstants{
		ClientID:      11,
		OrgID:         11,
		AcctSchemaID:  101,
		DocTypeID:     115,
		GLCategoryID:  1000000,
		CurrencyID:    100,
		ElementID:     105,
		AccountType:   "A",
		PostingType:   "A",
		TimezoneName:  "UTC",
		TimeoutPerReq: 5 * time.Second,
	}
	s.sessions = session.NewMemoryStore()
	s.client = NewClient(s.server.URL+"/api/v1/", erp, s.sessions)
	s.provider.accounts = newAccountRepository(s.client)
	s.provider.periods = newPeriodRepository(s.client)
	s.provider.journals = newJournalRepository(s.client)
	s.provider.tokens = newTokenIssuer(s.client)

	sess := session.Session{ID: "sess-1", UserName: "SuperUser", ERPToken: "erp-token", ExpiresAt: time.Now().Add(time.Hour)}
	s.Require().NoError(s.sessions.Save(context.Background(), sess))
	s.ctx = session.NewContext(context.Background(), &sess)
}

func (s *IdempiereTestSuite) TearDownTest() {
	s.server.Close()
}

func TestIdempiereTestSuite(t *testing.T) {
	suite.Run(t, new(IdempiereTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *IdempiereTestSuite) lastRequest() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *IdempiereTestSuite) TestFindActiveAccountsByCode_QuotesAndDecodes() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"row-count":1,"records":[{"id":1000123,"Value":"O'Neil","Name":"Client O'Neil",
			"AccountType":{"propertyLabel":"Account Type","id":"A","identifier":"Asset","model-name":"ad_ref_list"},
			"C_Element_ID":{"id":105,"identifier":"Default"},"IsActive":true}]}`)
	}

	accounts, err := s.provider.accounts.FindActiveAccountsByCode(s.ctx, "O'Neil")
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal(int64(1000123), accounts[0].AccountID)
	s.Equal(domain.Asset, accounts[0].AccountType)
	s.Equal(int64(105), accounts[0].ElementID)

	req := s.lastRequest()
	s.Equal(http.MethodGet, req.Method)
	s.Equal("/api/v1/models/C_ElementValue", req.Path)
	s.Equal("Value eq 'O''Neil' and IsActive eq true", req.Filter)
	s.Equal("Bearer erp-token", req.Auth)
}

func (s *IdempiereTestSuite) TestSaveAccount_SendsConfiguredConstants() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":42,"Value":"700000","Name":"Sales","AccountType":"A","C_Element_ID":105,"IsActive":true}`)
	}

	created, err := s.provider.accounts.SaveAccount(s.ctx, domain.Account{Code: "700000", Name: "Sales", AccountType: domain.Asset, ElementID: 105})
	s.Require().NoError(err)
	s.Equal(int64(42), created.AccountID)

	req := s.lastRequest()
	s.Equal(http.MethodPost, req.Method)
	s.Equal(float64(11), req.Body["AD_Client_ID"])
	s.Equal(float64(11), req.Body["AD_Org_ID"])
	s.Equal("700000", req.Body["Value"])
	s.Equal("Sales", req.Body["Name"])
	s.Equal("A", req.Body["AccountType"])
	s.Equal(float64(105), req.Body["C_Element_ID"])
}

func (s *IdempiereTestSuite) TestUpdateAccount_PutsNameAndActiveFlag() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":42,"Value":"700000","Name":"Renamed","IsActive":false}`)
	}

	updated, err := s.provider.accounts.UpdateAccount(s.ctx, domain.Account{AccountID: 42, Name: "Renamed", IsActive: false})
	s.Require().NoError(err)
	s.False(updated.IsActive)

	req := s.lastRequest()
	s.Equal(http.MethodPut, req.Method)
	s.Equal("/api/v1/models/C_ElementValue/42", req.Path)
	s.Equal(false, req.Body["IsActive"])
}

func (s *IdempiereTestSuite) TestFindActivePeriodsCovering_FiltersBySecondPrecision() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"records":[{"id":1000210,"Name":"Mar-24","StartDate":"2024-03-01T00:00:00Z","EndDate":"2024-03-31","IsActive":true}]}`)
	}

	at := time.Date(2024, 3, 15, 10, 0, 0, 500, time.UTC)
	periods, err := s.provider.periods.FindActivePeriodsCovering(s.ctx, at)
	s.Require().NoError(err)
	s.Require().Len(periods, 1)
	s.Equal(int64(1000210), periods[0].PeriodID)
	s.Equal(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), periods[0].EndDate)

	req := s.lastRequest()
	s.Equal("/api/v1/models/C_Period", req.Path)
	s.Equal("IsActive eq true and StartDate le 2024-03-15T10:00:00 and EndDate ge 2024-03-15T00:00:00", req.Filter)
}

func (s *IdempiereTestSuite) TestResolvePeriod_BoundaryDaysInERPTimezone() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"records":[{"id":1000210,"Name":"Mar-24","StartDate":"2024-03-01T00:00:00Z","EndDate":"2024-03-31T00:00:00Z","IsActive":true}]}`)
	}

	cases := []struct {
		zone string
		at   func(loc *time.Location) time.Time
	}{
		{"Europe/Paris", func(loc *time.Location) time.Time { return time.Date(2024, 3, 1, 0, 30, 0, 0, loc) }},
		{"Europe/Paris", func(loc *time.Location) time.Time { return time.Date(2024, 3, 31, 22, 30, 0, 0, loc) }},
		{"Asia/Tokyo", func(loc *time.Location) time.Time { return time.Date(2024, 3, 1, 0, 30, 0, 0, loc) }},
		{"America/New_York", func(loc *time.Location) time.Time { return time.Date(2024, 3, 1, 0, 30, 0, 0, loc) }},
		{"America/New_York", func(loc *time.Location) time.Time { return time.Date(2024, 3, 31, 22, 30, 0, 0, loc) }},
		{"America/Los_Angeles", func(loc *time.Location) time.Time { return time.Date(2024, 3, 31, 23, 59, 59, 0, loc) }},
		{"UTC", func(loc *time.Location) time.Time { return time.Date(2024, 3, 1, 0, 30, 0, 0, loc) }},
	}

	for _, tc := range cases {
		erp := s.client.erp
		erp.TimezoneName = tc.zone
		client := NewClient(s.server.URL+"/api/v1/", erp, s.sessions)
		resolver := services.NewPeriodService(newPeriodRepository(client))
		loc := erp.Location()
		s.Require().Equal(tc.zone, loc.String())
		at := tc.at(loc)

		id, err := resolver.ResolvePeriod(s.ctx, at)
		s.Require().NoError(err, "zone=%s at=%s", tc.zone, at)
		s.Equal(int64(1000210), id, "zone=%s at=%s", tc.zone, at)
	}

	s.Equal("IsActive eq true and StartDate le 2024-03-31T23:59:59 and EndDate ge 2024-03-31T00:00:00", s.requests[5].Filter)
}

func (s *IdempiereTestSuite) TestFindActivePeriodsCovering_BoundsReadInERPTimezone() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"records":[{"id":1000210,"Name":"Mar-24","StartDate":"2024-03-01T00:00:00Z","EndDate":"2024-03-31","IsActive":true}]}`)
	}
	erp := s.client.erp
	erp.TimezoneName = "America/New_York"
	repo := newPeriodRepository(NewClient(s.server.URL+"/api/v1/", erp, s.sessions))
	loc := erp.Location()

	periods, err := repo.FindActivePeriodsCovering(s.ctx, time.Date(2024, 3, 31, 22, 30, 0, 0, loc))
	s.Require().NoError(err)
	s.Require().Len(periods, 1)
	s.True(time.Date(2024, 3, 1, 0, 0, 0, 0, loc).Equal(periods[0].StartDate), periods[0].StartDate)
	s.True(time.Date(2024, 3, 31, 0, 0, 0, 0, loc).Equal(periods[0].EndDate), periods[0].EndDate)
	s.Equal("America/New_York", periods[0].EndDate.Location().String())
	s.True(periods[0].Covers(time.Date(2024, 3, 31, 22, 30, 0, 0, loc)))
	s.False(periods[0].Covers(time.Date(2024, 4, 1, 0, 0, 0, 0, loc)))
}

func (s *IdempiereTestSuite) TestSaveHeader_Payload() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":1000500,"Description":"INV-42","DocStatus":{"id":"DR","identifier":"Drafted"},
			"C_Period_ID":{"id":1000210,"identifier":"Mar-24"},"GL_Category_ID":{"id":1000000},"DateAcct":"2024-03-15T10:00:00Z"}`)
	}

	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	header, err := s.provider.journals.SaveHeader(s.ctx, domain.JournalHeader{
		Description: "INV-42", DateAcct: date, DateDoc: date, PeriodID: 1000210, CategoryID: 1000000,
	})
	s.Require().NoError(err)
	s.Equal(int64(1000500), header.JournalID)
	s.Equal(domain.Draft, header.DocStatus)
	s.Equal(int64(1000210), header.PeriodID)
	s.Equal(date, header.DateDoc)

	body := s.lastRequest().Body
	s.Equal(float64(101), body["C_AcctSchema_ID"])
	s.Equal(float64(115), body["C_DocType_ID"])
	s.Equal(float64(1000000), body["GL_Category_ID"])
	s.Equal(float64(1000210), body["C_Period_ID"])
	s.Equal("A", body["PostingType"])
	s.Equal("INV-42", body["Description"])
	s.Equal("2024-03-15T10:00:00", body["DateAcct"])
	s.Equal("2024-03-15T10:00:00", body["DateDoc"])
}

func (s *IdempiereTestSuite) TestSaveLine_SendsBareNumbers() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":77,"GL_Journal_ID":{"id":1000500},"Account_ID":{"id":42,"identifier":"700000_Sales"},"Line":1,
			"AmtSourceDr":0,"AmtSourceCr":500.25,"AmtAcctDr":0,"AmtAcctCr":500.25}`)
	}

	line, err := s.provider.journals.SaveLine(s.ctx, domain.JournalLine{
		JournalID: 1000500, AccountID: 42, LineNumber: 1, CurrencyID: 100,
		DateAcct:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		AmtSourceCr: decimal.RequireFromString("500.25"), AmtAcctCr: decimal.RequireFromString("500.25"),
	})
	s.Require().NoError(err)
	s.Equal(int64(77), line.LineID)
	s.Equal("700000", line.AccountCode())
	s.True(line.AmtSourceCr.Equal(decimal.RequireFromString("500.25")))

	body := s.lastRequest().Body
	s.Equal(500.25, body["AmtSourceCr"])
	s.Equal(500.25, body["AmtAcctCr"])
	s.Equal(float64(0), body["AmtSourceDr"])
	s.Equal(float64(1), body["Line"])
	s.Equal(float64(100), body["C_Currency_ID"])
	s.Equal(float64(1000500), body["GL_Journal_ID"])
}

func (s *IdempiereTestSuite) TestFindHeaderWithLines_ExpandsLines() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":9,"Description":"REF-001","DocStatus":"CO","GL_JournalLine":[
			{"id":1,"Account_ID":{"id":42,"identifier":"700000_Sales"},"Line":10,"AmtSourceCr":"10"}]}`)
	}

	header, err := s.provider.journals.FindHeaderWithLines(s.ctx, 9)
	s.Require().NoError(err)
	s.Equal(domain.Completed, header.DocStatus)
	s.Require().Len(header.Lines, 1)
	s.Equal(int64(9), header.Lines[0].JournalID)

	req := s.lastRequest()
	s.Equal("/api/v1/models/GL_Journal/9", req.Path)
	s.Equal("GL_JournalLine", req.Expand)
}

func (s *IdempiereTestSuite) TestListHeadersByCategory_DateBounds() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"records":[]}`)
	}
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	headers, err := s.provider.journals.ListHeadersByCategory(s.ctx, 1000000, domain.GeneralLedgerFilter{From: &from, To: &to})
	s.Require().NoError(err)
	s.Empty(headers)

	req := s.lastRequest()
	s.Equal("GL_Category_ID eq 1000000 and DateAcct ge 2024-01-01T00:00:00 and DateAcct le 2024-12-31T00:00:00", req.Filter)
	s.Equal("GL_JournalLine", req.Expand)
}

func (s *IdempiereTestSuite) TestDeleteHeader() {
	s.handler = func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	s.Require().NoError(s.provider.journals.DeleteHeader(s.ctx, 9))
	req := s.lastRequest()
	s.Equal(http.MethodDelete, req.Method)
	s.Equal("/api/v1/models/GL_Journal/9", req.Path)
}

func (s *IdempiereTestSuite) TestUnauthorized_ClearsSession() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"title":"Unauthorized","status":401}`)
	}

	_, err := s.provider.periods.FindActivePeriodsCovering(s.ctx, time.Now())
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, getErr := s.sessions.Get(context.Background(), "sess-1")
	s.ErrorIs(getErr, apperrors.ErrNotFound, "a rejected token must clear the stored session")
}

func (s *IdempiereTestSuite) TestErrorsMapToKinds() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"title":"Not Found","detail":"No record"}`)
	}
	_, err := s.provider.journals.FindHeaderWithLines(s.ctx, 404)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Contains(err.Error(), "No record")

	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `boom`)
	}
	_, err = s.provider.accounts.ListActiveAccounts(s.ctx)
	s.ErrorIs(err, apperrors.ErrTransport)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	s.Equal("boom", apiErr.Message)
}

func (s *IdempiereTestSuite) TestNoSession_NoCall() {
	_, err := s.provider.accounts.ListActiveAccounts(context.Background())
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.Empty(s.requests)
}

func (s *IdempiereTestSuite) TestIssueToken() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"token":"fresh-token"}`)
	}

	token, err := s.provider.tokens.IssueToken(context.Background(), "SuperUser", "System")
	s.Require().NoError(err)
	s.Equal("fresh-token", token)

	req := s.lastRequest()
	s.Equal("/api/v1/auth/tokens", req.Path)
	s.Empty(req.Auth)
	s.Equal("SuperUser", req.Body["userName"])

	s.handler = func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) }
	_, err = s.provider.tokens.IssueToken(context.Background(), "SuperUser", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestRefDecoding(t *testing.T) {
	var payload struct {
		A ref `json:"a"`
		B ref `json:"b"`
		C ref `json:"c"`
		D ref `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a":105,"b":{"id":"DR","identifier":"Drafted"},"c":null,"d":"12"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, int64(105), payload.A.Int64())
	assert.Equal(t, "DR", payload.B.Value)
	assert.Equal(t, "Drafted", payload.B.Identifier)
	assert.Equal(t, ref{}, payload.C)
	assert.Equal(t, int64(12), payload.D.Int64())
	assert.Equal(t, int64(0), payload.B.Int64())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'REF-001'", quote("REF-001"))
	assert.Equal(t, "'it''s'", quote("it's"))
	assert.Equal(t, "Description eq 'a b' and IsActive eq true", and(eqString("Description", "a b"), eqBool("IsActive", true)))
}
