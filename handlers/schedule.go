package handlers

import (
	"net/http"

	"maidly/middleware"
	"maidly/models"
	"maidly/services/schedule"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// GetScheduleHandler returns the authenticated maid's schedule document.
func GetScheduleHandler(service schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maidID := c.GetString(middleware.ContextUserID)
		sched, err := service.GetSchedule(c.Request.Context(), maidID)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": sched})
	}
}

// ReplaceWeeklyScheduleHandler swaps the maid's weekly template wholesale.
func ReplaceWeeklyScheduleHandler(service schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.WeeklyScheduleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid weekly schedule payload", err.Error())
			return
		}
		maidID := c.GetString(middleware.ContextUserID)

		sched, err := service.ReplaceWeeklySchedule(c.Request.Context(), maidID, input.WeeklySchedule)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": sched})
	}
}

// BlockSlotHandler adds a blocked interval to the maid's schedule.
func BlockSlotHandler(service schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BlockSlotInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid block slot payload", err.Error())
			return
		}
		maidID := c.GetString(middleware.ContextUserID)

		block, err := service.BlockSlot(c.Request.Context(), maidID, input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": block})
	}
}

// UnblockSlotHandler removes a blocked interval by its slot id.
func UnblockSlotHandler(service schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maidID := c.GetString(middleware.ContextUserID)
		if err := service.UnblockSlot(c.Request.Context(), maidID, c.Param("slotID")); err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blocked slot removed"})
	}
}

// ScheduleAvailableSlotsHandler serves the schedule-aware availability view
// for any maid; customers call this while picking a time.
func ScheduleAvailableSlotsHandler(service schedule.ScheduleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date", "")
			return
		}
		slots, err := service.GetAvailableSlots(c.Request.Context(), c.Param("maidID"), date)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": slots})
	}
}
