package handlers

import (
	"net/http"

	"servit/middleware"
	"servit/services/auth"
	"servit/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler manages back-office operator accounts.
type AdminHandler struct {
	AuthService auth.AuthService
}

func NewAdminHandler(as auth.AuthService) *AdminHandler {
	return &AdminHandler{AuthService: as}
}

type adminStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ListAdminsHandler handles GET /api/admins.
func (h *AdminHandler) ListAdminsHandler(c *gin.Context) {
	admins, err := h.AuthService.ListAdmins(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": admins})
}

// UpdateAdminStatusHandler handles PUT /api/admin/:id/status.
func (h *AdminHandler) UpdateAdminStatusHandler(c *gin.Context) {
	actor, ok := middleware.CurrentAdmin(c)
	if !ok {
		fail(c, utils.NewUnauthorizedError("Not authenticated"))
		return
	}
	var req adminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, utils.NewValidationError("isActive must be a boolean"))
		return
	}
	admin, err := h.AuthService.SetAdminStatus(c.Request.Context(), actor.ID, c.Param("id"), *req.IsActive)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
