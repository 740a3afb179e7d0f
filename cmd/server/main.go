package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/ivrelife/nexus/internal/application/catalog"
	claimapp "github.com/ivrelife/nexus/internal/application/claim"
	identityapp "github.com/ivrelife/nexus/internal/application/identity"
	orderapp "github.com/ivrelife/nexus/internal/application/order"
	partnerapp "github.com/ivrelife/nexus/internal/application/partner"
	shippingapp "github.com/ivrelife/nexus/internal/application/shipping"
	"github.com/ivrelife/nexus/internal/domain/order"
	"github.com/ivrelife/nexus/internal/infrastructure/auth"
	"github.com/ivrelife/nexus/internal/infrastructure/config"
	"github.com/ivrelife/nexus/internal/infrastructure/logger"
	"github.com/ivrelife/nexus/internal/infrastructure/persistence"
	"github.com/ivrelife/nexus/internal/interfaces/http/handler"
	"github.com/ivrelife/nexus/internal/interfaces/http/middleware"
	"github.com/ivrelife/nexus/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting nexus",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Redis-backed token revocation; fall back to the in-process blacklist
	// when Redis is not reachable so a cache outage never blocks startup.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	retailerRepo := persistence.NewGormRetailerRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	claimRepo := persistence.NewGormClaimRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	orderService := orderapp.NewService(orderRepo, order.NewNormalizer(log), order.NewStore(), log)
	retailerService := partnerapp.NewRetailerService(retailerRepo, locationRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	productService := catalogapp.NewProductService(productRepo, log)
	claimService := claimapp.NewService(claimRepo, log)
	shippingService := shippingapp.NewService(shipmentRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	router.Setup(engine, router.Handlers{
		System:   handler.NewSystemHandler(db),
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService),
		Order:    handler.NewOrderHandler(orderService),
		Customer: handler.NewCustomerHandler(customerService),
		Retailer: handler.NewRetailerHandler(retailerService),
		Product:  handler.NewProductHandler(productService),
		Claim:    handler.NewClaimHandler(claimService),
		Shipment: handler.NewShipmentHandler(shippingService),
	}, router.Config{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Logger:     log,
		CORS:       corsConfig,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
