package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code", h.getAccount)
		accounts.GET("/:code/exists", h.accountExists)
		accounts.PUT("/:code", h.updateAccount)
		accounts.DELETE("/:code", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Registers an account code in the configured element
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Rejected by the ERP"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("account_code", req.Code))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req.Code, req.Label)
	if err != nil {
		respondError(c, err, "Create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the active chart of accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "ERP unreachable"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "List accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// accountExists godoc
// @Summary Check an account code
// @Description Reports whether an active account uses this exact code. A failed lookup is reported with status LOOKUP_FAILED.
// @Tags accounts
// @Produce  json
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountExistsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /accounts/{code}/exists [get]
func (h *accountHandler) accountExists(c *gin.Context) {
	code := c.Param("code")
	if strings.TrimSpace(code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account code is required"})
		return
	}
	lookup := h.accountService.AccountExists(c.Request.Context(), code)
	c.JSON(http.StatusOK, dto.ToAccountExistsResponse(code, lookup))
}

// updateAccount godoc
// @Summary Rename an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   code path string true "Account code"
// @Param   account body dto.UpdateAccountRequest true "New name"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("code"), req.Name)
	if err != nil {
		respondError(c, err, "Update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Tags accounts
// @Param   code path string true "Account code"
// @Success 204
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{code} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	if err := h.accountService.DeactivateAccount(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, "Deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}
