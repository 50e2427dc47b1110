package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"maidly/config"
	"maidly/cron"
	"maidly/database"
	bookingRepo "maidly/database/repository/booking"
	categoryRepo "maidly/database/repository/category"
	maidRepo "maidly/database/repository/maid"
	notificationRepo "maidly/database/repository/notification"
	scheduleRepo "maidly/database/repository/schedule"
	userRepo "maidly/database/repository/user"
	"maidly/middleware"
	"maidly/routes"
	"maidly/services/booking"
	"maidly/services/category"
	"maidly/services/insights"
	"maidly/services/maid"
	"maidly/services/notification"
	"maidly/services/schedule"
	"maidly/services/tasks"
	"maidly/services/user"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	bookings := bookingRepo.NewMongoBookingRepo()
	maids := maidRepo.NewMongoMaidRepo()
	users := userRepo.NewMongoUserRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	categories := categoryRepo.NewMongoCategoryRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()

	if err := bookings.EnsureIndexes(); err != nil {
		logger.Fatal("failed to ensure booking indexes", zap.Error(err))
	}
	if err := maids.EnsureIndexes(); err != nil {
		logger.Fatal("failed to ensure maid indexes", zap.Error(err))
	}

	notificationService := &notification.DefaultNotificationService{Repo: notifications}
	reminderScheduler := tasks.NewAsynqReminderScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	services := routes.Services{
		Users: &user.DefaultUserService{Repo: users},
		Maids: &maid.DefaultMaidService{Repo: maids},
		Bookings: &booking.DefaultBookingService{
			Repo:          bookings,
			MaidRepo:      maids,
			CategoryRepo:  categories,
			ScheduleRepo:  schedules,
			Notifications: notificationService,
			Reminders:     reminderScheduler,
		},
		Schedules: &schedule.DefaultScheduleService{
			Repo:     schedules,
			MaidRepo: maids,
			Bookings: bookings,
		},
		Categories:    &category.DefaultCategoryService{Repo: categories},
		Notifications: notificationService,
		Insights: &insights.DefaultInsightsService{
			Bookings:  bookings,
			MaidRepo:  maids,
			Generator: &insights.GeminiGenerator{APIKey: config.AppConfig.GeminiAPIKey},
			Context:   &insights.RedisContextStore{Client: utils.GetCacheClient()},
		},
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, services)

	go middleware.CleanupLimiters()

	worker := cron.NewReminderWorker(notificationService)
	if err := worker.Start(); err != nil {
		logger.Fatal("failed to start reminder worker", zap.Error(err))
	}

	server := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	worker.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
