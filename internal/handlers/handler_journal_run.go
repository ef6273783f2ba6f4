package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/dto"
)

type journalRunHandler struct {
	workflowService portssvc.JournalWorkflowSvc
}

func registerJournalRunRoutes(rg *gin.RouterGroup, workflowService portssvc.JournalWorkflowSvc) {
	h := &journalRunHandler{workflowService: workflowService}
	rg.GET("/journal-runs", h.listJournalRuns)
}

// listJournalRuns godoc
// @Summary List journal runs
// @Description Lists recorded workflow runs, newest first, to find partially created journals.
// @Tags journals
// @Produce json
// @Param status query string false "succeeded, partial, failed or cleaned_up"
// @Param limit query int false "Page size (max 200)"
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListJournalRunsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-runs [get]
func (h *journalRunHandler) listJournalRuns(c *gin.Context) {
	var params dto.ListJournalRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}
	runs, next, err := h.workflowService.ListRuns(c.Request.Context(), domain.JournalRunStatus(params.Status), params.Limit, nextToken)
	if err != nil {
		respondError(c, err, "List journal runs")
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalRunsResponse{Runs: runs, NextToken: next})
}
