// Package router wires the services to HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/api/http/handler"
	"github.com/milkledger/server/internal/api/http/middleware"
	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/service"
)

// Router builds the gin engine for the API.
type Router struct {
	courierService  *service.Courier
	deliveryService *service.Delivery
	depositService  *service.Deposit
	statsService    *service.Stats
	authService     *service.Auth
	resetter        handler.Resetter
	authEnabled     bool
	logger          *logger.Logger
}

// New creates a new Router.
func New(
	courierService *service.Courier,
	deliveryService *service.Delivery,
	depositService *service.Deposit,
	statsService *service.Stats,
	authService *service.Auth,
	resetter handler.Resetter,
	authEnabled bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		courierService:  courierService,
		deliveryService: deliveryService,
		depositService:  depositService,
		statsService:    statsService,
		authService:     authService,
		resetter:        resetter,
		authEnabled:     authEnabled,
		logger:          logger,
	}
}

// Register builds the engine and registers all routes.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuth(r.authService, r.logger)
	courierHandler := handler.NewCourier(r.courierService, r.logger)
	deliveryHandler := handler.NewDelivery(r.deliveryService, r.logger)
	depositHandler := handler.NewDeposit(r.depositService, r.logger)
	statsHandler := handler.NewStats(r.statsService, r.logger)
	adminHandler := handler.NewAdmin(r.resetter, r.logger)

	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	protected := api.Group("")
	if r.authEnabled {
		protected.Use(middleware.Authenticate(r.authService, r.logger))
	}

	protected.GET("/couriers", courierHandler.List)
	protected.POST("/couriers", courierHandler.Create)
	protected.DELETE("/couriers/:id", courierHandler.Delete)

	protected.POST("/deliveries", deliveryHandler.Upsert)
	protected.GET("/deliveries/courier/:id/:year/:month", deliveryHandler.CourierMonth)
	protected.GET("/deliveries/global/:year/:month", deliveryHandler.MonthOverview)

	protected.POST("/deposits", depositHandler.Create)
	protected.DELETE("/deposits/:id", depositHandler.Delete)
	protected.GET("/deposits/courier/:id/:year/:month", depositHandler.CourierMonth)
	protected.GET("/deposits/global/:year/:month", depositHandler.MonthOverview)

	protected.GET("/stats/courier/:id/:year/:month", statsHandler.CourierMonth)
	protected.GET("/stats/account/:id/:year/:month", statsHandler.CourierAccount)
	protected.GET("/stats/ranking/:year/:month", statsHandler.Ranking)

	protected.DELETE("/reset", adminHandler.Reset)

	return engine
}
