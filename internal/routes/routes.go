package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snapmarket/snapmarket-api/internal/audit"
	"github.com/snapmarket/snapmarket-api/internal/config"
	"github.com/snapmarket/snapmarket-api/internal/handlers"
	infraRepo "github.com/snapmarket/snapmarket-api/internal/infra/repository"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/models"
	"github.com/snapmarket/snapmarket-api/internal/session"
	ucBooking "github.com/snapmarket/snapmarket-api/internal/usecase/booking"
	ucDiscovery "github.com/snapmarket/snapmarket-api/internal/usecase/discovery"
	ucPhotographer "github.com/snapmarket/snapmarket-api/internal/usecase/photographer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sessions *session.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	photographerRepo := infraRepo.NewPhotographerGormRepository(db)
	discoveryRepo := infraRepo.NewDiscoveryGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookingsForUser(
		bookingRepo,
	)

	decideBookingUC := ucBooking.NewDecideBooking(
		bookingRepo,
		auditDispatcher,
	)

	upsertProfileUC := ucPhotographer.NewUpsertProfile(
		photographerRepo,
		auditDispatcher,
	)

	listPhotographersUC := ucDiscovery.NewListPhotographers(
		discoveryRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	profileHandler := handlers.NewPhotographerProfileHandler(
		photographerRepo,
		upsertProfileUC,
	)

	discoverHandler := handlers.NewDiscoverHandler(
		listPhotographersUC,
		discoveryRepo,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		decideBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicWebHandler := handlers.NewPublicWebHandler(authHandler)
	appWebHandler := handlers.NewAppWebHandler(
		db,
		authHandler,
		photographerRepo,
		discoveryRepo,
		listPhotographersUC,
		createBookingUC,
		listBookingsUC,
		decideBookingUC,
		upsertProfileUC,
	)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.Landing)

	web := r.Group("/web")
	{
		web.GET("/auth", publicWebHandler.AuthPage)
		web.POST("/auth/login", publicWebHandler.Login)
		web.POST("/auth/register", publicWebHandler.Register)
		web.POST("/signout", appWebHandler.SignOut)

		guarded := web.Group("/")
		guarded.Use(middleware.RequireWebSession(cfg, sessions))
		{
			guarded.GET("/discover", appWebHandler.Discover)
			guarded.GET("/photographers/:id", appWebHandler.PhotographerDetail)
			guarded.POST("/photographers/:id/book", appWebHandler.BookPhotographer)

			guarded.GET("/dashboard", appWebHandler.Dashboard)
			guarded.POST("/dashboard/profile", appWebHandler.SaveProfile)
			guarded.POST("/dashboard/bookings/:id/accept", appWebHandler.AcceptBooking)
			guarded.POST("/dashboard/bookings/:id/decline", appWebHandler.DeclineBooking)
		}
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/photographers", discoverHandler.List)
			publicAPI.GET("/photographers/:id", discoverHandler.Detail)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/auth/signout", authHandler.SignOut)

			photographerOnly := secured.Group("/")
			photographerOnly.Use(middleware.RequireRole(models.RolePhotographer))
			{
				photographerOnly.GET("/me/photographer-profile", profileHandler.Get)
				photographerOnly.PUT("/me/photographer-profile", profileHandler.Upsert)

				photographerOnly.PATCH("/me/bookings/:id/accept", bookingHandler.Accept)
				photographerOnly.PATCH("/me/bookings/:id/decline", bookingHandler.Decline)
			}

			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
