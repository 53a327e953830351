package handlers

import (
	"net/http"

	"servit/middleware"
	"servit/services/auth"
	"servit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	AuthService auth.AuthService
}

func NewAuthHandler(as auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: as}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.AuthService.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		getLogger(c).Info("Login failed", zap.String("email", req.Email), zap.Error(err))
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout. Tokens are stateless.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.AuthService.Logout()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		fail(c, utils.NewUnauthorizedError("Not authenticated"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// RefreshHandler handles POST /api/auth/refresh.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	admin, _ := middleware.CurrentAdmin(c)
	resp, err := h.AuthService.Refresh(admin)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
