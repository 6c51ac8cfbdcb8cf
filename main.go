package main

import (
	"fmt"
	"log"
	"os"

	"shortr/internal/config"
	"shortr/internal/controllers"
	"shortr/internal/database"
	"shortr/internal/middleware"
	"shortr/internal/repository"
	"shortr/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Open the database
	db, err := database.NewConnection(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer db.Close() // Close connection when program exits

	// Bring the schema up to date before accepting traffic
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repository and service
	urlRepo := repository.NewURLRepository(db)
	urlService := service.NewURLService(urlRepo, cfg.RootURL)

	// Initialize controllers
	shortenerController := controllers.NewShortenerController(urlService, logger)
	qrcodeController := controllers.NewQRCodeController(cfg.RootURL)

	// Initialize the rate limiter; Redis-backed when an address is configured
	var store middleware.CounterStore
	if cfg.RedisAddr != "" {
		redisStore, err := middleware.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			logger.Fatal("failed to connect rate limiter store", zap.Error(err))
		}
		store = redisStore
		logger.Info("rate limiter using redis store", zap.String("addr", cfg.RedisAddr))
	} else {
		store = middleware.NewMemoryStore()
	}
	rateLimiter := middleware.NewRateLimiter(store, cfg.RateLimitWindow, cfg.RateLimitMax)

	// Create a Gin router with request logging and recovery
	router := gin.Default()
	router.Use(rateLimiter.LimitMiddleware())

	router.GET("/health", shortenerController.Health)

	router.GET("/", shortenerController.Landing)
	router.POST("/", shortenerController.CreateShortURL)
	router.GET("/:id", shortenerController.RedirectToURL)

	api := router.Group("/api/v1")
	{
		api.GET("/stats/:id", shortenerController.GetURLStats)
		api.GET("/qrcode/:id", qrcodeController.GenerateQRCode)
	}

	logger.Info("server starting", zap.Int("port", cfg.Port), zap.String("root", cfg.RootURL))
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
