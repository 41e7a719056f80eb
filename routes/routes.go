package routes

import (
	"net/http"
	"time"

	"pawspa/handlers"
	"pawspa/middleware"
	"pawspa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes registers the authenticated client surface: profile,
// pets, booking, and subscriptions.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthClientMiddleware())

		api.GET("/users/me", hb.Users.GetProfileHandler)
		api.PUT("/users/me", hb.Users.UpdateProfileHandler)

		api.POST("/pets", hb.Pets.RegisterPetHandler)
		api.GET("/pets", hb.Pets.ListPetsHandler)
		api.PUT("/pets/:id", hb.Pets.UpdatePetHandler)
		api.DELETE("/pets/:id", hb.Pets.DeletePetHandler)
		api.POST("/pets/:id/photo", hb.Pets.UploadPetPhotoHandler)

		api.POST("/appointments", hb.Booking.BookAppointmentHandler)
		api.GET("/appointments", hb.Booking.ListAppointmentsHandler)
		api.DELETE("/appointments/:id", hb.Booking.CancelAppointmentHandler)

		api.POST("/subscriptions", hb.Booking.SubscribeHandler)
		api.GET("/subscriptions", hb.Booking.ListSubscriptionsHandler)
		api.DELETE("/subscriptions/:id", hb.Booking.CancelSubscriptionHandler)
	}
}

// RegisterServiceRoutes registers the public service catalogue.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.Services.ListServicesHandler)
}

// RegisterAdminRoutes registers the admin calendar and configuration surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthAdminMiddleware())

		admin.GET("/calendar/day/:date", hb.Calendar.DayViewHandler)
		admin.GET("/calendar/week/:date", hb.Calendar.WeekViewHandler)
		admin.POST("/calendar/blocked-slots", hb.Calendar.BlockSlotHandler)
		admin.DELETE("/calendar/blocked-slots/:id", hb.Calendar.UnblockSlotHandler)
		admin.PUT("/appointments/:id/status", hb.Calendar.UpdateAppointmentStatusHandler)

		admin.GET("/settings/business-hours", hb.Settings.GetBusinessHoursHandler)
		admin.PUT("/settings/business-hours", hb.Settings.SetBusinessHoursHandler)
		admin.GET("/settings/slot-duration", hb.Settings.GetSlotDurationHandler)
		admin.PUT("/settings/slot-duration", hb.Settings.SetSlotDurationHandler)

		admin.GET("/subscriptions", hb.Booking.AdminListSubscriptionsHandler)

		admin.POST("/services", hb.Services.CreateServiceHandler)
		admin.PUT("/services/:id", hb.Services.UpdateServiceHandler)
		admin.DELETE("/services/:id", hb.Services.DeleteServiceHandler)

		admin.POST("/emails", hb.Email.DispatchEmailHandler)
	}
}

// RegisterCronRoutes registers scheduler-triggered endpoints.
func RegisterCronRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cron := r.Group("/api/cron")
	{
		cron.Use(middleware.CronAuthMiddleware())
		cron.GET("/reminders", hb.Reminder.SendRemindersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterCronRoutes(r, hb)
}
