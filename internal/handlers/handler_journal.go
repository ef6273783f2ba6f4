package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/middleware"
)

// maxImportSize bounds an uploaded journal CSV.
const maxImportSize = 8 << 20

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService  portssvc.JournalHeaderSvc
	workflowService portssvc.JournalWorkflowSvc
	importService   portssvc.JournalImportSvc
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalHeaderSvc, ws portssvc.JournalWorkflowSvc, is portssvc.JournalImportSvc) *journalHandler {
	return &journalHandler{
		journalService:  js,
		workflowService: ws,
		importService:   is,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalHeaderSvc, workflowService portssvc.JournalWorkflowSvc, importService portssvc.JournalImportSvc) {
	h := newJournalHandler(journalService, workflowService, importService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.recordJournal)
		journals.POST("/import", h.importJournals)
		journals.GET("/exists", h.journalExists)
		journals.GET("/:id", h.getJournal)
		journals.DELETE("/:id", h.deleteJournal)
	}
}

// recordJournal godoc
// @Summary Record a journal entry
// @Description Creates a draft journal for the reference with one line per entry, registering unknown account codes on the way.
// @Description A failure reports the step that stopped and what was left in the ERP.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.RecordJournalRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryReportResponse
// @Failure 400 {object} dto.JournalEntryErrorResponse "Invalid or unbalanced entries"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.JournalEntryErrorResponse "Reference already recorded"
// @Failure 422 {object} dto.JournalEntryErrorResponse "No open period for the date"
// @Failure 502 {object} dto.JournalEntryErrorResponse "Rejected by the ERP"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) recordJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record journal entry",
		slog.String("reference", req.Reference),
		slog.Int("entries", len(req.Entries)))

	report, err := h.workflowService.RecordJournalEntry(c.Request.Context(), req.Reference, req.Date, req.ToDomainEntries())
	if err != nil {
		respondError(c, err, "Record journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryReportResponse(report))
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce  json
// @Param   id path int true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse "Invalid journal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	journalID, ok := parseJournalID(c)
	if !ok {
		return
	}
	header, err := h.journalService.GetHeader(c.Request.Context(), journalID)
	if err != nil {
		respondError(c, err, "Get journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(header, header.Lines))
}

// deleteJournal godoc
// @Summary Delete a journal
// @Description Deletes a draft journal that has no lines.
// @Tags journals
// @Param   id path int true "Journal ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid journal ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Failure 409 {object} ErrorResponse "Journal is not a draft or still has lines"
// @Security BearerAuth
// @Router /journals/{id} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	journalID, ok := parseJournalID(c)
	if !ok {
		return
	}
	if err := h.workflowService.RemoveJournalEntry(c.Request.Context(), journalID); err != nil {
		respondError(c, err, "Delete journal")
		return
	}
	c.Status(http.StatusNoContent)
}

// journalExists godoc
// @Summary Check a journal reference
// @Description Lists the active journals whose description equals the reference. A failed lookup is reported with status LOOKUP_FAILED.
// @Tags journals
// @Produce  json
// @Param   description query string true "Journal reference"
// @Success 200 {object} dto.JournalExistsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /journals/exists [get]
func (h *journalHandler) journalExists(c *gin.Context) {
	description := c.Query("description")
	if strings.TrimSpace(description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}
	lookup := h.journalService.HeaderExists(c.Request.Context(), description)
	c.JSON(http.StatusOK, dto.ToJournalExistsResponse(description, lookup))
}

// importJournals godoc
// @Summary Import journal entries from CSV
// @Description Records every reference of a CSV file (reference,date,account,label,debit,credit) as one journal entry.
// @Tags journals
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Journal CSV"
// @Success 200 {object} dto.ImportJournalsResponse
// @Failure 400 {object} ErrorResponse "Invalid file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /journals/import [post]
func (h *journalHandler) importJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing import file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A CSV file is required in field 'file'"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err, "Open import file")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	logger.Info("Received journal import", slog.String("file", fileHeader.Filename), slog.Int64("size", fileHeader.Size))

	results, err := h.importService.ImportJournals(c.Request.Context(), file)
	if err != nil {
		respondError(c, err, "Import journals")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportJournalsResponse(results))
}

// parseJournalID reads the :id path parameter, answering 400 when it is not a positive integer.
func parseJournalID(c *gin.Context) (int64, bool) {
	journalID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || journalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journal ID"})
		return 0, false
	}
	return journalID, true
}
