package handlers

import (
	"net/http"

	"agendly/services/booking"

	"github.com/gin-gonic/gin"
)

// ListBookingsHandler lists a company's bookings for a date, optionally
// narrowed to one professional.
func ListBookingsHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		bookings, err := svc.ListBookings(c.Request.Context(), id,
			c.Query("professionalId"), c.Query("date"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// CancelBookingHandler cancels a booking; its slot becomes bookable again.
func CancelBookingHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := companyID(c)
		if !ok {
			return
		}
		cancelled, err := svc.CancelBooking(c.Request.Context(), id, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, cancelled)
	}
}
