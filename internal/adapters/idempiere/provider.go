package idempiere

import (
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every ERP-backed repository on one client.
// The journal-run repository is not ERP backed and is left to the caller.
func NewRepositoryProvider(client *Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newAccountRepository(client),
		PeriodRepo:  newPeriodRepository(client),
		JournalRepo: newJournalRepository(client),
		TokenIssuer: newTokenIssuer(client),
	}
}
