package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/dto"
)

// reportingHandler handles HTTP requests related to the general ledger and reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	loc              *time.Location
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingHandler{
		reportingService: rs,
		loc:              loc,
	}
}

// registerReportingRoutes registers the ledger and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	rg.GET("/ledger", h.getGeneralLedger)
	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/dashboard", h.getDashboard)
	}
}

// getGeneralLedger godoc
// @Summary General ledger
// @Description Lists general journals with their lines, ordered by accounting date.
// @Tags reports
// @Produce json
// @Param from query string false "First accounting date (YYYY-MM-DD)"
// @Param to query string false "Last accounting date (YYYY-MM-DD)"
// @Param account query string false "Only lines of this account code"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	filter := domain.GeneralLedgerFilter{AccountCode: strings.TrimSpace(c.Query("account"))}

	var ok bool
	if filter.From, ok = h.parseDateQuery(c, "from"); !ok {
		return
	}
	if filter.To, ok = h.parseDateQuery(c, "to"); !ok {
		return
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return
	}

	headers, err := h.reportingService.GeneralLedger(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "General ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(headers))
}

// getTrialBalance godoc
// @Summary Get trial balance
// @Description Get the trial balance report as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "As of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	asOf, ok := h.parseDateQuery(c, "asOf")
	if !ok {
		return
	}
	if asOf == nil {
		now := time.Now().In(h.loc)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
		asOf = &today
	}
	// Include every posting of the requested day.
	endOfDay := asOf.Add(24*time.Hour - time.Second)

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), endOfDay)
	if err != nil {
		respondError(c, err, "Trial balance")
		return
	}
	tb.AsOf = *asOf
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getDashboard godoc
// @Summary Revenue and expense dashboard
// @Description Monthly revenue, expenses and net result of a year.
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	year := time.Now().In(h.loc).Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 || parsed > 9999 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
			return
		}
		year = parsed
	}

	months, err := h.reportingService.Dashboard(c.Request.Context(), year)
	if err != nil {
		respondError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{Year: year, Months: months})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter, answering 400 when malformed.
func (h *reportingHandler) parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " date format, use YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}
