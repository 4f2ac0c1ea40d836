package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/audit"
	"github.com/ravenstudio/raven-community-api/internal/cache"
	"github.com/ravenstudio/raven-community-api/internal/config"
	"github.com/ravenstudio/raven-community-api/internal/handlers"
	infraRepo "github.com/ravenstudio/raven-community-api/internal/infra/repository"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/notify"
	ucApproval "github.com/ravenstudio/raven-community-api/internal/usecase/approval"
	ucBooking "github.com/ravenstudio/raven-community-api/internal/usecase/booking"
	ucDirectory "github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logger.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	requestRepo := infraRepo.NewRequestGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var mailer notify.Mailer
	if cfg.MailgunAPIKey != "" && cfg.MailgunDomain != "" {
		mailer = notify.NewMailgunMailer(cfg)
	} else {
		mailer = notify.NewConsoleMailer(log)
	}

	availCache := cache.NewAvailabilityCache(cfg.RedisURL, log)

	// ======================================================
	// USE CASES
	// ======================================================
	clientDirectory := ucDirectory.NewClientDirectory(clientRepo)

	bookSlotUC := ucBooking.NewBookSlot(
		clientDirectory,
		appointmentRepo,
		cfg,
		mailer,
		availCache,
		auditDispatcher,
		log,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		appointmentRepo,
		cfg,
		availCache,
	)

	transitionUC := ucApproval.NewTransition(
		requestRepo,
		clientRepo,
		mailer,
		cfg.MailFrom,
		auditDispatcher,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(db, bookSlotUC, availabilityUC)
	requestHandler := handlers.NewRequestHandler(db)
	adminHandler := handlers.NewAdminHandler(db, requestRepo, transitionUC)
	profileHandler := handlers.NewProfileHandler(db)
	eventHandler := handlers.NewEventHandler(db, clientDirectory)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/availability", bookingHandler.GetAvailability)
		api.POST("/book-appointment", bookingHandler.Book)
		api.GET("/check-client", requestHandler.CheckClient)
		api.POST("/capture-lead", requestHandler.CaptureLead)
		api.POST("/membership-request", requestHandler.SubmitMembershipRequest)
		api.POST("/recruitment-application", requestHandler.SubmitRecruitmentApplication)
		api.POST("/enroll-guest", eventHandler.EnrollGuest)
		api.GET("/leaderboard", eventHandler.Leaderboard)
		api.GET("/badges", profileHandler.ListBadges)
		api.GET("/public-profiles", profileHandler.ListPublicProfiles)

		api.POST("/login", authHandler.Login)
		api.GET("/seed-admin", authHandler.SeedAdmin)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", bookingHandler.ListMine)
			secured.GET("/events", eventHandler.ListMyBookings)
			secured.GET("/profile", profileHandler.GetProfile)
			secured.POST("/profile-settings", profileHandler.UpdateSettings)
			secured.POST("/profile-update-request", requestHandler.SubmitProfileUpdateRequest)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.GET("/membership-requests", adminHandler.ListMembershipRequests)
			admin.POST("/membership-requests", adminHandler.DecideMembershipRequest)

			admin.GET("/recruitment-applications", adminHandler.ListRecruitmentApplications)
			admin.POST("/recruitment-applications", adminHandler.DecideRecruitmentApplication)

			admin.GET("/requests", adminHandler.ListProfileUpdateRequests)
			admin.POST("/requests", adminHandler.DecideProfileUpdateRequest)

			admin.POST("/update-credentials", adminHandler.UpdateCredentials)
			admin.POST("/events", eventHandler.CreateEvent)
		}
	}
}
