package handlers

import (
	"net/http"
	"time"

	"maidly/middleware"
	"maidly/services/insights"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// insightsRange reads the from/to query params, defaulting to the last 30
// days.
func insightsRange(c *gin.Context) (string, string) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		now := time.Now().UTC()
		to = now.Format(scheduling.DateLayout)
		from = now.AddDate(0, 0, -30).Format(scheduling.DateLayout)
	}
	return from, to
}

// MaidStatsHandler returns raw booking stats for the authenticated maid.
func MaidStatsHandler(service insights.InsightsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to := insightsRange(c)
		stats, err := service.ComputeStats(c.Request.Context(), c.GetString(middleware.ContextUserID), from, to)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
	}
}

// MaidInsightsHandler returns the generated summary plus the underlying
// stats.
func MaidInsightsHandler(service insights.InsightsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to := insightsRange(c)
		summary, stats, err := service.Summary(c.Request.Context(), c.GetString(middleware.ContextUserID), from, to)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"summary": summary, "stats": stats}})
	}
}
