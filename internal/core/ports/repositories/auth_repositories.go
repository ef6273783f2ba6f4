package repositories

import "context"

// TokenIssuer exchanges user credentials for an ERP bearer token.
type TokenIssuer interface {
	IssueToken(ctx context.Context, userName, password string) (string, error)
}
