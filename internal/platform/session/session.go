// Package session holds the ERP bearer token of a logged-in user. A session is created on
// login, looked up by the auth middleware on every request, and cleared on logout or when
// the ERP answers 401.
package session

import (
	"context"
	"time"
)

// Session is an authenticated ERP session.
type Session struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	ERPToken  string    `json:"erpToken"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store persists sessions. Get returns apperrors.ErrNotFound for unknown or expired ids.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
