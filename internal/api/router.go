package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wattline/energy-tracker/internal/api/handler"
	"github.com/wattline/energy-tracker/internal/api/middleware"
	"github.com/wattline/energy-tracker/internal/core/ports"
	"github.com/wattline/energy-tracker/internal/core/service"
	"github.com/wattline/energy-tracker/internal/infrastructure/config"
	mongodb "github.com/wattline/energy-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/wattline/energy-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("energy"))

	// --- Dependencies ---
	identityRepo := mongodb.NewIdentityRepository(db)
	applianceRepo := mongodb.NewApplianceRepository(db)
	throttle := redisdb.NewResendThrottle(rdb, cfg.OTPResendCooldown)

	authService := service.NewAuthService(identityRepo, notifier, throttle, cfg.JWTSecret, cfg.TokenTTL, cfg.OTPTTL, log)
	applianceService := service.NewApplianceService(applianceRepo, cfg.DefaultUnitRate, log)

	authHandler := handler.NewAuthHandler(authService)
	applianceHandler := handler.NewApplianceHandler(applianceService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/v1/otp", authHandler.RequestOTP)
	e.POST("/v1/otp/verify", authHandler.VerifyOTP)

	// --- Appliance routes (session required) ---
	appliances := e.Group("/v1/appliances", authMiddleware)
	appliances.POST("", applianceHandler.Create)
	appliances.GET("", applianceHandler.List)
	appliances.PUT("/:id", applianceHandler.Update)
	appliances.DELETE("/:id", applianceHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
