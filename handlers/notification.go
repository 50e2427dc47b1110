package handlers

import (
	"net/http"

	"maidly/middleware"
	"maidly/services/notification"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the authenticated party's notification
// feed, newest first.
func ListNotificationsHandler(service notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipientID := c.GetString(middleware.ContextUserID)
		role := c.GetString(middleware.ContextRole)

		items, err := service.ListForRecipient(c.Request.Context(), recipientID, role, parseLimit(c, 50))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
	}
}

// MarkNotificationReadHandler marks one notification as read.
func MarkNotificationReadHandler(service notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.MarkRead(c.Request.Context(), c.Param("notificationID")); err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification marked read"})
	}
}
