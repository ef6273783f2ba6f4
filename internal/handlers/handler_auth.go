package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/middleware"

	portssvc "github.com/SscSPs/gl_gateway/internal/core/ports/services"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication.
// Login is rate limited per client IP, logout needs a valid session.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvc, sessions session.Store, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(authService)

	auth := rg.Group("/api/v1/auth")
	{
		if loginLimiter != nil {
			auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret, sessions), h.Logout)
	}
}

// Login godoc
// @Summary ERP login
// @Description Authenticates against the ERP and returns a gateway JWT bound to the ERP session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "ERP unreachable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		if statusForError(err) == http.StatusUnauthorized {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Login rejected", slog.String("user_name", req.UserName))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// Logout godoc
// @Summary Logout
// @Description Drops the ERP session of the current token.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), sess.ID); err != nil {
		respondError(c, err, "Logout")
		return
	}
	c.Status(http.StatusNoContent)
}
