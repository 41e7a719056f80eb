package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawspa/config"
	"pawspa/cron"
	"pawspa/database"
	appointmentRepo "pawspa/database/repository/appointment"
	blockedslotRepo "pawspa/database/repository/blockedslot"
	groomserviceRepo "pawspa/database/repository/groomservice"
	petRepo "pawspa/database/repository/pet"
	settingsRepo "pawspa/database/repository/settings"
	subscriptionRepo "pawspa/database/repository/subscription"
	userRepoPkg "pawspa/database/repository/user"
	"pawspa/handlers"
	"pawspa/routes"
	"pawspa/services/booking"
	"pawspa/services/calendar"
	"pawspa/services/notification"
	"pawspa/services/storage"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	blockRepo := blockedslotRepo.NewMongoBlockedSlotRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()
	pRepo := petRepo.NewMongoPetRepo()
	svcRepo := groomserviceRepo.NewMongoGroomServiceRepo()
	subRepo := subscriptionRepo.NewMongoSubscriptionRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Email pipeline: API handlers enqueue, the asynq worker delivers.
	queueClient := asynq.NewClient(utils.QueueRedisOpt())
	defer queueClient.Close()
	mailer := notification.NewMailerFromConfig()
	emailWorker := cron.InitEmailWorker(mailer)

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users:      userRepo,
		Pets:       pRepo,
		Services:   svcRepo,
		Queue:      queueClient,
		AdminEmail: config.AppConfig.AdminEmail,
	}

	calendarService := &calendar.DefaultCalendarService{
		Appointments:         apptRepo,
		BlockedSlots:         blockRepo,
		Settings:             setRepo,
		Notifier:             notificationService,
		BlockDurationMinutes: config.AppConfig.BlockDurationMinutes,
	}

	bookingService := &booking.DefaultBookingService{
		Appointments:  apptRepo,
		BlockedSlots:  blockRepo,
		Pets:          pRepo,
		Services:      svcRepo,
		Settings:      setRepo,
		Subscriptions: subRepo,
		Notifier:      notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Calendar: handlers.NewCalendarHandler(calendarService, logger),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Pets:     handlers.NewPetHandler(pRepo, storageService, logger),
		Services: handlers.NewServiceHandler(svcRepo, logger),
		Settings: handlers.NewSettingsHandler(setRepo, logger),
		Reminder: handlers.NewReminderHandler(apptRepo, notificationService, utils.GetCacheClient(), logger),
		Email:    handlers.NewEmailHandler(apptRepo, notificationService, logger),
		Users:    handlers.NewUserHandler(userRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	emailWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
