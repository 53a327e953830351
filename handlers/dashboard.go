package handlers

import (
	"net/http"

	"servit/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the overview screen.
type DashboardHandler struct {
	DashboardService dashboard.DashboardService
}

func NewDashboardHandler(ds dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: ds}
}

func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	stats, err := h.DashboardService.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) RecentBookingsHandler(c *gin.Context) {
	bookings, err := h.DashboardService.RecentBookings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *DashboardHandler) PendingValidationsHandler(c *gin.Context) {
	partners, err := h.DashboardService.PendingValidations(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func (h *DashboardHandler) BookingTrendsHandler(c *gin.Context) {
	trends, err := h.DashboardService.BookingTrends(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": trends})
}
