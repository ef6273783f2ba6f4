package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
	"github.com/SscSPs/gl_gateway/internal/utils"
)

// AuthConfig holds the token settings of the auth service.
type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	TokenExpiry time.Duration
	SessionTTL  time.Duration
}

type authService struct {
	BaseService
	issuer   portsrepo.TokenIssuer
	sessions session.Store
	cfg      AuthConfig
	now      func() time.Time
}

// NewAuthService creates the login/logout service.
func NewAuthService(issuer portsrepo.TokenIssuer, sessions session.Store, cfg AuthConfig) portssvc.AuthSvc {
	return &authService{
		issuer:   issuer,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login exchanges ERP credentials for a gateway token. The ERP token stays in the
// session store; the gateway token only carries the session id.
func (s *authService) Login(ctx context.Context, userName string, password string) (string, time.Time, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return "", time.Time{}, fmt.Errorf("%w: user name and password are required", apperrors.ErrValidation)
	}

	erpToken, err := s.issuer.IssueToken(ctx, userName, password)
	if err != nil {
		s.LogWarn(ctx, "ERP login failed", slog.String("user", userName), slog.String("error", err.Error()))
		return "", time.Time{}, err
	}

	sessionID, err := utils.NewSessionID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session id")
		return "", time.Time{}, fmt.Errorf("failed to generate session id: %w", err)
	}

	// The session never outlives the token that points at it.
	ttl := s.cfg.SessionTTL
	if s.cfg.TokenExpiry > 0 && (ttl <= 0 || s.cfg.TokenExpiry < ttl) {
		ttl = s.cfg.TokenExpiry
	}
	now := s.now()
	expiresAt := now.Add(ttl)
	sess := session.Session{
		ID:        sessionID,
		UserName:  userName,
		ERPToken:  erpToken,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.String("user", userName))
		return "", time.Time{}, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := utils.GenerateJWT(sessionID, userName, s.cfg.JWTSecret, ttl, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate JWT", slog.String("user", userName))
		_ = s.sessions.Delete(ctx, sessionID)
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user", userName))
	return token, expiresAt, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete session")
		return err
	}
	s.LogInfo(ctx, "User logged out")
	return nil
}
