package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps an application error kind to an HTTP status.
// An ERP rejection of the session wins over the step that hit it.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrJournalUnbalanced):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNoOpenPeriod):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrNotDeletable):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrAccountCreateFailed),
		errors.Is(err, apperrors.ErrJournalCreateFailed),
		errors.Is(err, apperrors.ErrJournalLineCreateFailed):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it with the status of its kind.
// Internal errors are not echoed to the caller.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)

	var wfErr *domain.WorkflowError
	if errors.As(err, &wfErr) {
		logger.Warn(action+" stopped", slog.String("step", string(wfErr.Step)), slog.String("error", err.Error()))
		c.JSON(status, dto.JournalEntryErrorResponse{
			Error:       err.Error(),
			Step:        wfErr.Step,
			LineNumber:  wfErr.LineNumber,
			AccountCode: wfErr.AccountCode,
			Report:      dto.ToJournalEntryReportResponse(wfErr.Report),
		})
		return
	}

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.Error(action+" failed", slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: action + " failed"})
		return
	}
	logger.Warn(action+" failed", slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
