package handlers

import (
	"net/http"

	"servit/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the read-only booking views.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

// ListBookingsHandler handles GET /api/bookings with the filter query params.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var filter booking.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.BookingService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	getLogger(c).Debug("Bookings listed", zap.Int("total", result.Total), zap.Int("returned", len(result.Bookings)))
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	details, err := h.BookingService.GetBookingDetails(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
