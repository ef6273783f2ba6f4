package services

import (
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
	"github.com/SscSPs/gl_gateway/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sessions session.Store) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Period resolution comes first since header creation depends on it
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Account = NewAccountService(repos.AccountRepo, cfg.ERP)
	container.Journal = NewJournalService(repos.JournalRepo, container.Period, cfg.ERP)

	workflowOpts := []WorkflowOption{
		WithEmptyHeaderCleanup(cfg.CleanupEmptyHeader),
		WithDuplicateRejection(cfg.RejectDuplicates),
	}
	if repos.RunRepo != nil {
		workflowOpts = append(workflowOpts, WithJournalRunRepository(repos.RunRepo))
	}
	container.Workflow = NewWorkflowService(container.Account, container.Journal, workflowOpts...)
	container.Import = NewImportService(container.Account, container.Workflow)

	container.Reporting = NewReportingService(
		container.Journal,
		WithClassifier(accounting.NewClassifier(
			cfg.Classification.RevenuePrefix,
			cfg.Classification.RevenueCodes,
			cfg.Classification.ExpensePrefix,
			cfg.Classification.ExpenseCodes,
		)),
		WithLocation(cfg.ERP.Location()),
	)

	container.Auth = NewAuthService(repos.TokenIssuer, sessions, AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		JWTIssuer:   cfg.JWTIssuer,
		TokenExpiry: cfg.JWTExpiryDuration,
		SessionTTL:  cfg.SessionTTL,
	})

	return container
}
