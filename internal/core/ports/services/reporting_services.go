package services

import (
	"context"
	"time"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GeneralLedger lists general-journal headers with their lines, narrowed by filter.
	GeneralLedger(ctx context.Context, filter domain.GeneralLedgerFilter) ([]domain.JournalHeader, error)

	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// Dashboard aggregates revenue and expenses per month of year.
	Dashboard(ctx context.Context, year int) ([]domain.DashboardMonth, error)
}
