package handlers

import (
	"net/http"

	"servit/models"
	"servit/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves customer directory endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

type listUsersQuery struct {
	Blocked *bool `form:"blocked"`
	Limit   int64 `form:"limit"`
	Offset  int64 `form:"offset"`
}

type userStatusRequest struct {
	Blocked     *bool  `json:"blocked" binding:"required"`
	BlockReason string `json:"blockReason"`
}

// ListUsersHandler handles GET /api/users?blocked=&limit=&offset=.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	users, err := h.UserService.ListUsers(c.Request.Context(), models.UserFilter{
		Blocked: q.Blocked,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserHandler(c *gin.Context) {
	u, err := h.UserService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUserStatusHandler handles PATCH /api/users/:userId/status.
func (h *UserHandler) UpdateUserStatusHandler(c *gin.Context) {
	var req userStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.UserService.SetBlocked(c.Request.Context(), c.Param("userId"), *req.Blocked, req.BlockReason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.UserService.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "User deleted successfully"})
}

func (h *UserHandler) UserBookingsHandler(c *gin.Context) {
	history, err := h.UserService.BookingHistory(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
