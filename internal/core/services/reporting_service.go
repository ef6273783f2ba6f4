package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
	"github.com/SscSPs/gl_gateway/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	journals   portssvc.JournalHeaderSvc
	classifier accounting.Classifier
	loc        *time.Location
	ledger     singleflight.Group
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClassifier sets the revenue/expense classification used by the dashboard.
func WithClassifier(c accounting.Classifier) ReportingServiceOption {
	return func(s *reportingService) {
		s.classifier = c
	}
}

// WithLocation sets the timezone of report date bounds.
func WithLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(journals portssvc.JournalHeaderSvc, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		journals:   journals,
		classifier: accounting.NewClassifier("7", nil, "6", nil),
		loc:        time.UTC,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// fetchLedger collapses concurrent identical ledger reads of one session into a single
// ERP round trip.
func (s *reportingService) fetchLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	key := ledgerKey(ctx, filter)
	resultChan := s.ledger.DoChan(key, func() (interface{}, error) {
		return s.journals.ListGeneralLedger(context.WithoutCancel(ctx), filter)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.LogDebug(ctx, "General ledger read shared", slog.String("key", key))
		}
		return res.Val.([]domain.JournalHeader), nil
	}
}

func ledgerKey(ctx context.Context, filter domain.GeneralLedgerFilter) string {
	owner := "-"
	if sess, ok := session.FromContext(ctx); ok {
		owner = sess.ID
	}
	bound := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	}
	return strings.Join([]string{owner, bound(filter.From), bound(filter.To), filter.AccountCode}, "|")
}

// GeneralLedger lists general-journal headers with their lines.
func (s *reportingService) GeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error) {
	headers, err := s.fetchLedger(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve general ledger")
		return nil, fmt.Errorf("failed to retrieve general ledger: %w", err)
	}
	return headers, nil
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	headers, err := s.fetchLedger(ctx, domain.GeneralLedgerFilter{To: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	rows := make(map[string]*domain.TrialBalanceRow)
	for _, h := range headers {
		if !counts(h) {
			continue
		}
		for _, l := range h.Lines {
			code := l.AccountCode()
			row, ok := rows[code]
			if !ok {
				row = &domain.TrialBalanceRow{
					AccountCode: code,
					AccountName: accountName(l.AccountIdentifier, code),
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
				}
				rows[code] = row
			}
			row.Debit = row.Debit.Add(l.AmtAcctDr)
			row.Credit = row.Credit.Add(l.AmtAcctCr)
		}
	}

	tb := &domain.TrialBalance{
		AsOf:        asOf,
		Rows:        make([]domain.TrialBalanceRow, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, row := range rows {
		row.Balance = row.Debit.Sub(row.Credit)
		tb.Rows = append(tb.Rows, *row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}
	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].AccountCode < tb.Rows[j].AccountCode })

	if !tb.IsBalanced() {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("debit", tb.TotalDebit.String()),
			slog.String("credit", tb.TotalCredit.String()))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(tb.Rows)))
	return tb, nil
}

// Dashboard aggregates revenue and expenses per month of year. Months are 0-indexed.
func (s *reportingService) Dashboard(ctx context.Context, year int) ([]domain.DashboardMonth, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, s.loc)
	headers, err := s.fetchLedger(ctx, domain.GeneralLedgerFilter{From: &from, To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve dashboard data", slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve dashboard data: %w", err)
	}

	months := make([]domain.DashboardMonth, 12)
	for i := range months {
		months[i] = domain.DashboardMonth{Month: i, Revenue: decimal.Zero, Expenses: decimal.Zero, NetResult: decimal.Zero}
	}
	for _, h := range headers {
		if !counts(h) {
			continue
		}
		for _, l := range h.Lines {
			// Months follow the journal date; a line date is only a fallback.
			date := h.DateAcct
			if date.IsZero() {
				date = l.DateAcct
			}
			date = date.In(s.loc)
			if date.Year() != year {
				continue
			}
			m := &months[int(date.Month())-1]
			switch s.classifier.Classify(l.AccountCode()) {
			case domain.ClassRevenue:
				m.Revenue = m.Revenue.Add(l.AmtAcctCr.Sub(l.AmtAcctDr))
			case domain.ClassExpense:
				m.Expenses = m.Expenses.Add(l.AmtAcctDr.Sub(l.AmtAcctCr))
			}
		}
	}
	for i := range months {
		months[i].NetResult = months[i].Revenue.Sub(months[i].Expenses)
	}
	return months, nil
}

// counts excludes voided and reversed documents from aggregates.
func counts(h domain.JournalHeader) bool {
	return h.DocStatus != domain.Voided && h.DocStatus != domain.Reversed
}

// accountName is the identifier without its leading code: "700000_Sales" -> "Sales".
func accountName(identifier, code string) string {
	name := strings.TrimPrefix(strings.TrimSpace(identifier), code)
	name = strings.TrimLeft(name, " _-")
	if name == "" {
		return code
	}
	return name
}
