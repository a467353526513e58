package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AyatoShirayouki/Online-Shop/cache"
	"github.com/AyatoShirayouki/Online-Shop/config"
	"github.com/AyatoShirayouki/Online-Shop/controllers"
	"github.com/AyatoShirayouki/Online-Shop/database"
	"github.com/AyatoShirayouki/Online-Shop/logger"
	"github.com/AyatoShirayouki/Online-Shop/middleware"
	aws_pkg "github.com/AyatoShirayouki/Online-Shop/pkg/aws"
	"github.com/AyatoShirayouki/Online-Shop/repository"
	"github.com/AyatoShirayouki/Online-Shop/routes"
	"github.com/AyatoShirayouki/Online-Shop/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// --- MongoDB ---
	mongoClient, db, err := database.ConnectMongo(cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.CloseMongo(mongoClient); err != nil {
			log.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	productRepo := repository.NewMongoProductRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)

	// --- Redis product cache (optional) ---
	var productCache cache.ProductCache
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Redis connection failed", zap.Error(err))
		}
		defer redisClient.Close()
		productCache = cache.NewRedisProductCache(redisClient, cfg.ProductCacheTTL)
		log.Info("Connected to Redis")
	}

	// --- AWS SNS (optional) ---
	var snsClient aws_pkg.SNSPublisher
	if cfg.SNSTopicARN != "" {
		awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
		if err != nil {
			log.Fatal("Failed to load AWS config", zap.Error(err))
		}
		snsClient = aws_pkg.NewSNSClient(awsCfg)
	} else {
		log.Warn("SNS topic not configured, cart events disabled")
	}

	// --- Services ---
	discountService := services.NewDiscountService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo, discountService, snsClient, cfg.SNSTopicARN, log)
	productService := services.NewProductService(productRepo, productCache, log)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RateLimit())

	routes.Register(r,
		controllers.NewProductController(productService),
		controllers.NewCartController(cartService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Online Shop API is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", zap.Error(err))
	}
	log.Info("Server shutdown complete")
}
