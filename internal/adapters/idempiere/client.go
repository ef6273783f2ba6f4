// Package idempiere implements the repository ports on top of the iDempiere REST API
// (/api/v1/models/...). The bearer token of every call comes from the session carried
// by the request context.
package idempiere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/middleware"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
)

const maxErrorBody = 4 << 10

// APIError is a non-2xx answer from the ERP.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("idempiere: %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("idempiere: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap maps the status onto the application error kinds.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	default:
		return apperrors.ErrTransport
	}
}

// Client wraps interactions with the ERP REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
	erp        config.ERPConstants
	loc        *time.Location
}

// NewClient constructs a new client. sessions may be nil, in which case a 401 only
// surfaces as ErrUnauthorized.
func NewClient(baseURL string, erp config.ERPConstants, sessions session.Store) *Client {
	timeout := erp.TimeoutPerReq
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		sessions: sessions,
		erp:      erp,
		loc:      erp.Location(),
	}
}

// do sends one request. body is JSON encoded when not nil and out is decoded from
// a 2xx answer when not nil. Authenticated calls require a session in ctx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	var sess *session.Session
	if authenticated {
		s, ok := session.FromContext(ctx)
		if !ok || s.ERPToken == "" {
			return fmt.Errorf("%w: no ERP session", apperrors.ErrUnauthorized)
		}
		sess = s
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + encodeQuery(query)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("idempiere: encode %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.ERPToken)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("ERP request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s %s: %w", apperrors.ErrTransport, method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	logger.Debug("ERP request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized && sess != nil && c.sessions != nil {
		if delErr := c.sessions.Delete(ctx, sess.ID); delErr != nil {
			logger.Warn("Failed to clear rejected session", slog.String("error", delErr.Error()))
		}
	}
	if resp.StatusCode >= 300 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s %s: %w", apperrors.ErrTransport, method, path, err)
	}
	return nil
}

// encodeQuery keeps OData '$' keys readable and encodes spaces as %20.
func encodeQuery(query url.Values) string {
	encoded := query.Encode()
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	return strings.ReplaceAll(encoded, "%24", "$")
}

// readErrorMessage extracts the problem detail of an iDempiere error body, or its raw text.
func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &problem); err == nil && (problem.Title != "" || problem.Detail != "") {
		return strings.TrimSpace(strings.Join(nonEmpty(problem.Title, problem.Detail), ": "))
	}
	return strings.TrimSpace(string(raw))
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
