package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/infrastructure/auth"
	"github.com/ivrelife/nexus/internal/infrastructure/logger"
	"github.com/ivrelife/nexus/internal/interfaces/http/handler"
	"github.com/ivrelife/nexus/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Order    *handler.OrderHandler
	Customer *handler.CustomerHandler
	Retailer *handler.RetailerHandler
	Product  *handler.ProductHandler
	Claim    *handler.ClaimHandler
	Shipment *handler.ShipmentHandler
}

// Config holds everything the router needs beyond the handlers
type Config struct {
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger
	CORS       middleware.CORSConfig
}

// Setup mounts all routes on the engine. Login, refresh and the health
// probes are public; everything else requires a valid bearer token.
func Setup(engine *gin.Engine, h Handlers, cfg Config) {
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Ready)

	v1 := engine.Group("/api/v1")

	// Public auth endpoints
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	// Everything below requires authentication
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(middleware.AuthConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		Logger:     cfg.Logger,
	}))

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/session", h.Auth.Session)

	users := protected.Group("/users")
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/role", h.User.AssignRole)
		users.PUT("/:id/active", h.User.SetActive)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/password", h.User.ChangePassword)
	}

	orders := protected.Group("/orders")
	{
		orders.POST("", h.Order.Create)
		orders.GET("", h.Order.List)
		orders.POST("/validate", h.Order.Validate)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
	}

	customers := protected.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	retailers := protected.Group("/retailers")
	{
		retailers.POST("", h.Retailer.Create)
		retailers.GET("", h.Retailer.List)
		retailers.GET("/:id", h.Retailer.Get)
		retailers.PUT("/:id", h.Retailer.Update)
		retailers.PUT("/:id/status", h.Retailer.SetStatus)
		retailers.POST("/:id/locations", h.Retailer.CreateLocation)
		retailers.GET("/:id/locations", h.Retailer.ListLocations)
	}

	locations := protected.Group("/locations")
	{
		locations.GET("/:id", h.Retailer.GetLocation)
		locations.PUT("/:id/enabled", h.Retailer.SetLocationEnabled)
	}

	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id/archived", h.Product.SetArchived)
		products.POST("/:id/variants", h.Product.AddVariant)
		products.PUT("/:id/variants/:sku/price", h.Product.RepriceVariant)
		products.DELETE("/:id/variants/:sku", h.Product.RetireVariant)
	}

	claims := protected.Group("/claims")
	{
		claims.POST("", h.Claim.Submit)
		claims.GET("", h.Claim.List)
		claims.GET("/:id", h.Claim.Get)
		claims.POST("/:id/review", h.Claim.StartReview)
		claims.POST("/:id/approve", h.Claim.Approve)
		claims.POST("/:id/deny", h.Claim.Deny)
		claims.POST("/:id/resolve", h.Claim.Resolve)
	}

	shipments := protected.Group("/shipments")
	{
		shipments.POST("", h.Shipment.Create)
		shipments.GET("", h.Shipment.List)
		shipments.GET("/:id", h.Shipment.Get)
		shipments.GET("/track/:tracking_number", h.Shipment.Track)
		shipments.POST("/:id/label", h.Shipment.CreateLabel)
		shipments.POST("/:id/dispatch", h.Shipment.Dispatch)
		shipments.POST("/:id/delivered", h.Shipment.MarkDelivered)
		shipments.POST("/:id/cancel", h.Shipment.Cancel)
	}
}
