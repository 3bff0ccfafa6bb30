package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/cache"
	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/events"
	"storefront-service/repository"
	"storefront-service/routes"
	servicepkg "storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	cfg := LoadConfig()

	if err := database.Connect(logger); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Redis cache (optional)
	var cacheManager *cache.Manager
	if cfg.RedisAddr != "" {
		redisClient, redisErr := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if redisErr != nil {
			logger.Warn("Redis unavailable, product cache disabled", zap.Error(redisErr))
		} else {
			cacheManager = cache.NewManager(redisClient)
		}
	}

	// SNS publisher for order lifecycle events (optional)
	var publisher events.Publisher
	if cfg.OrderSNSTopicARN != "" {
		snsPublisher, snsErr := events.NewSNSPublisher(context.Background())
		if snsErr != nil {
			logger.Warn("AWS config unavailable, SNS disabled", zap.Error(snsErr))
		} else {
			publisher = snsPublisher
		}
	}

	// Repositories and DI chain
	productRepo := repository.NewGormProductRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	branchRepo := repository.NewGormBranchRepository(database.DB)
	memberRepo := repository.NewGormMemberRepository(database.DB)
	reviewRepo := repository.NewGormReviewRepository(database.DB)

	formatter := servicepkg.NewProductFormatter(productRepo, logger)
	searchService := servicepkg.NewSearchService(productRepo, formatter, logger)
	productService := servicepkg.NewProductService(productRepo, formatter, cacheManager, logger)
	orderService := servicepkg.NewOrderService(orderRepo, publisher, cfg.OrderSNSTopicARN, logger)
	branchService := servicepkg.NewBranchService(branchRepo, logger)
	memberService := servicepkg.NewMemberService(memberRepo, logger)
	reviewService := servicepkg.NewReviewService(reviewRepo, logger)

	productController := controllers.NewProductController(productService, searchService)
	orderController := controllers.NewOrderController(orderService)
	branchController := controllers.NewBranchController(branchService)
	memberController := controllers.NewMemberController(memberService)
	reviewController := controllers.NewReviewController(reviewService)

	r := gin.New()

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	})

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "storefront-service"})
	})

	routes.RegisterRoutes(r, productController, orderController, branchController, memberController, reviewController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Storefront service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down storefront service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
