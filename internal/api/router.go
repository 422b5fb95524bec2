package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cryptofolio/portfolio-api/internal/api/handler"
	"github.com/cryptofolio/portfolio-api/internal/api/middleware"
	"github.com/cryptofolio/portfolio-api/internal/core/service"
	"github.com/cryptofolio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/cryptofolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cryptofolio/portfolio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Exactly one allowed origin; never a wildcard.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontOrigin},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	priceRepo := mongodb.NewPriceRepository(db)
	portfolioRepo := mongodb.NewPortfolioRepository(db)
	snapshotRepo := mongodb.NewSnapshotRepository(db)
	priceCache := redisdb.NewPriceCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, service.DefaultTokenTTL, log)
	priceService := service.NewPriceService(priceRepo, priceCache, log)
	portfolioService := service.NewPortfolioService(portfolioRepo, log)
	valuationService := service.NewValuationService(portfolioRepo, priceRepo, log)
	snapshotService := service.NewSnapshotService(snapshotRepo, valuationService, log)

	authHandler := handler.NewAuthHandler(authService)
	priceHandler := handler.NewPriceHandler(priceService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService, valuationService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	prices := e.Group("/prices", authMiddleware)
	prices.GET("", priceHandler.List)
	prices.PUT("/:symbol", priceHandler.Upsert)

	portfolio := e.Group("/portfolio", authMiddleware)
	portfolio.GET("/assets", portfolioHandler.List)
	portfolio.POST("/assets", portfolioHandler.Create)
	portfolio.PATCH("/assets/:id", portfolioHandler.Update)
	portfolio.DELETE("/assets/:id", portfolioHandler.Delete)
	portfolio.GET("/summary", portfolioHandler.Summary)
	portfolio.POST("/snapshots", snapshotHandler.Capture)
	portfolio.GET("/snapshots", snapshotHandler.List)

	return e
}
