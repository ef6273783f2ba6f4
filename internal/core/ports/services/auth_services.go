package services

import (
	"context"
	"time"
)

// AuthSvc opens and closes ERP sessions.
type AuthSvc interface {
	// Login authenticates against the ERP, stores the session and returns a gateway token.
	Login(ctx context.Context, userName string, password string) (string, time.Time, error)

	// Logout clears the session.
	Logout(ctx context.Context, sessionID string) error
}
