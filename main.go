package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/config"
	"glowbook/cron"
	"glowbook/database"
	"glowbook/database/repository"
	"glowbook/handlers"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/notification"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitHoldCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	holdRepo := repository.NewRedisHoldRepo(utils.GetHoldCacheClient())
	scheduleRepo := repository.NewMongoScheduleRepo()
	consultationRepo := repository.NewMongoConsultationRepo()
	discountRepo := repository.NewMongoDiscountRepo()
	mediaRepo := repository.NewMongoMediaRepo()
	catalogRepo := repository.NewMongoCatalogRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Cache: utils.GetCacheClient(),
	}
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	holdTTL := utils.DefaultHoldTTL
	if config.AppConfig.HoldTTLMinutes > 0 {
		holdTTL = time.Duration(config.AppConfig.HoldTTLMinutes) * time.Minute
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:      bookingRepo,
		Holds:         holdRepo,
		Schedules:     scheduleRepo,
		Consultations: consultationRepo,
		Discounts:     discountRepo,
		Media:         mediaRepo,
		Catalog:       catalogRepo,

		Notifier:  notificationService,
		Reminders: reminderClient,

		HoldTTL:             holdTTL,
		ReminderLeadMinutes: config.AppConfig.ReminderLeadMinutes,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingService: bookingService,
		ScheduleRepo:   scheduleRepo,
		DiscountRepo:   discountRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
