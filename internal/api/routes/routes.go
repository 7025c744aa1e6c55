package routes

import (
	"carebase-backend/internal/api/handlers"
	"carebase-backend/internal/api/middleware"
	"carebase-backend/internal/auth"
	"carebase-backend/internal/config"
	"carebase-backend/internal/notify"
	"carebase-backend/internal/repository"
	"carebase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()
	uow := repository.NewUnitOfWork(db)
	notifier := notify.NewLogNotifier()

	thresholds := service.AlertThresholds{
		WarningPercent:     cfg.AlertWarningPercent,
		CriticalPercent:    cfg.AlertCriticalPercent,
		ExpiryWarningDays:  cfg.ExpiryWarningDays,
		ExpiryCriticalDays: cfg.ExpiryCriticalDays,
	}
	authorizationService := service.NewAuthorizationService(uow, notifier, validate, thresholds)
	shiftService := service.NewShiftService(uow, authorizationService, notifier, validate)

	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	authorizationHandler := handlers.NewAuthorizationHandler(authorizationService)

	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.CreateShift)
			shifts.POST("/bulk", shiftHandler.BulkCreateShifts)
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("/:id/start", shiftHandler.StartShift)
			shifts.POST("/:id/complete", shiftHandler.CompleteShift)
			shifts.POST("/:id/missed", shiftHandler.MarkShiftMissed)
			shifts.POST("/:id/cancel", shiftHandler.CancelShift)
			shifts.POST("/:id/evv", shiftHandler.CaptureEVV)
			shifts.POST("/:id/signature", shiftHandler.CaptureSignature)
		}

		clients := v1.Group("/clients")
		{
			clients.GET("/:id/authorizations", authorizationHandler.ListClientAuthorizations)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.PATCH("/:id/dismiss", authorizationHandler.DismissAlert)
		}
	}

	return router
}
