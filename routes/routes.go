package routes

import (
	"time"

	"maidly/handlers"
	"maidly/middleware"
	"maidly/services/booking"
	"maidly/services/category"
	"maidly/services/insights"
	"maidly/services/maid"
	"maidly/services/notification"
	"maidly/services/schedule"
	"maidly/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the route tree needs.
type Services struct {
	Users         user.UserService
	Maids         maid.MaidService
	Bookings      booking.BookingService
	Schedules     schedule.ScheduleService
	Categories    category.CategoryService
	Notifications notification.NotificationService
	Insights      insights.InsightsService
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(router *gin.Engine, s Services) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", handlers.RegisterUserHandler(s.Users))
		users.POST("/login", handlers.LoginUserHandler(s.Users))

		profile := users.Group("/profile", middleware.AuthRequired("user"))
		{
			profile.GET("", handlers.GetUserProfileHandler(s.Users))
			profile.PUT("", handlers.UpdateUserProfileHandler(s.Users))
			profile.DELETE("", handlers.DeleteUserHandler(s.Users))
		}
	}

	maids := api.Group("/maids")
	{
		maids.POST("/register", handlers.RegisterMaidHandler(s.Maids))
		maids.POST("/login", handlers.LoginMaidHandler(s.Maids))
		maids.GET("", handlers.ListMaidsHandler(s.Maids))
		maids.GET("/:maidID", handlers.GetMaidHandler(s.Maids))
		maids.PUT("/profile", middleware.AuthRequired("maid"), handlers.UpdateMaidProfileHandler(s.Maids))

		// Schedule-aware availability is public so customers can pick a
		// time before booking.
		maids.GET("/schedule/available-slots/:maidID", handlers.ScheduleAvailableSlotsHandler(s.Schedules))

		sched := maids.Group("/schedule", middleware.AuthRequired("maid"))
		{
			sched.GET("", handlers.GetScheduleHandler(s.Schedules))
			sched.PUT("/weekly", handlers.ReplaceWeeklyScheduleHandler(s.Schedules))
			sched.POST("/block-slot", handlers.BlockSlotHandler(s.Schedules))
			sched.DELETE("/block-slot/:slotID", handlers.UnblockSlotHandler(s.Schedules))
		}
	}

	insightsGroup := api.Group("/insights", middleware.AuthRequired("maid"))
	{
		insightsGroup.GET("/stats", handlers.MaidStatsHandler(s.Insights))
		insightsGroup.GET("/summary", handlers.MaidInsightsHandler(s.Insights))
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("/availability/:maidID", handlers.SimpleAvailabilityHandler(s.Bookings))

		authed := bookings.Group("", middleware.AuthRequired("user", "maid"))
		{
			authed.POST("", middleware.AuthRequired("user"), handlers.CreateBookingHandler(s.Bookings))
			authed.GET("/mine", handlers.ListMyBookingsHandler(s.Bookings))
			authed.GET("/maid", middleware.AuthRequired("maid"), handlers.ListMyBookingsHandler(s.Bookings))
			authed.GET("/:bookingID", handlers.GetBookingHandler(s.Bookings))
			authed.PATCH("/:bookingID/status", handlers.UpdateBookingStatusHandler(s.Bookings))
			authed.PATCH("/:bookingID/pay", handlers.MarkBookingPaidHandler(s.Bookings))
		}
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.ListCategoriesHandler(s.Categories))
		categories.GET("/:categoryID", handlers.GetCategoryHandler(s.Categories))

		manage := categories.Group("", middleware.AuthRequired("maid"))
		{
			manage.POST("", handlers.CreateCategoryHandler(s.Categories))
			manage.PATCH("/:categoryID", handlers.UpdateCategoryHandler(s.Categories))
			manage.DELETE("/:categoryID", handlers.DeleteCategoryHandler(s.Categories))
		}
	}

	notifications := api.Group("/notifications", middleware.AuthRequired("user", "maid"))
	{
		notifications.GET("", handlers.ListNotificationsHandler(s.Notifications))
		notifications.PUT("/:notificationID/read", handlers.MarkNotificationReadHandler(s.Notifications))
	}
}
