package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo AccountRepositoryFacade
	PeriodRepo  PeriodReader
	JournalRepo JournalRepositoryFacade
	TokenIssuer TokenIssuer
	RunRepo     JournalRunRepository // nil when no database is configured
}
