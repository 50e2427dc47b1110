package handlers

import (
	"net/http"
	"strconv"

	"maidly/middleware"
	"maidly/models"
	"maidly/services/booking"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler creates a booking for the authenticated customer.
// Responds 409 when the requested window conflicts with an active booking.
func CreateBookingHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
			return
		}
		customerID := c.GetString(middleware.ContextUserID)

		created, err := service.CreateBooking(c.Request.Context(), customerID, input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
	}
}

// GetBookingHandler fetches one booking by id.
func GetBookingHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := service.GetBooking(c.Request.Context(), c.Param("bookingID"))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": b})
	}
}

// UpdateBookingStatusHandler applies a lifecycle transition on behalf of the
// authenticated party.
func UpdateBookingStatusHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.StatusUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
			return
		}
		actorID := c.GetString(middleware.ContextUserID)
		actorRole := c.GetString(middleware.ContextRole)

		updated, err := service.UpdateStatus(c.Request.Context(), c.Param("bookingID"), input.Status, actorID, actorRole)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

// MarkBookingPaidHandler flips the manual payment flag.
func MarkBookingPaidHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := service.MarkPaid(c.Request.Context(), c.Param("bookingID"))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

// ListMyBookingsHandler lists the authenticated party's bookings, newest
// first.
func ListMyBookingsHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetString(middleware.ContextUserID)
		actorRole := c.GetString(middleware.ContextRole)
		limit := parseLimit(c, 50)

		var (
			bookings []models.Booking
			err      error
		)
		if actorRole == "maid" {
			bookings, err = service.ListForMaid(c.Request.Context(), actorID, limit)
		} else {
			bookings, err = service.ListForCustomer(c.Request.Context(), actorID, limit)
		}
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
	}
}

// SimpleAvailabilityHandler serves the legacy fixed-hours availability view.
func SimpleAvailabilityHandler(service booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date", "")
			return
		}
		slots, err := service.GetSimpleAvailability(c.Request.Context(), c.Param("maidID"), date)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": slots})
	}
}

func parseLimit(c *gin.Context, fallback int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
