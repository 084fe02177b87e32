// Package router wires the HTTP surface of the checkout engine.
package router

import (
	checkoutapp "github.com/commercekit/checkout/internal/application/checkout"
	"github.com/commercekit/checkout/internal/infrastructure/auth"
	"github.com/commercekit/checkout/internal/infrastructure/config"
	"github.com/commercekit/checkout/internal/infrastructure/logger"
	"github.com/commercekit/checkout/internal/interfaces/http/handler"
	"github.com/commercekit/checkout/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies holds everything the router needs to assemble the engine
type Dependencies struct {
	Config          *config.Config
	Logger          *zap.Logger
	CheckoutService *checkoutapp.Service
	SessionService  *auth.SessionService
}

// New builds the gin engine with the full middleware chain and all routes
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(deps.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = deps.Config.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = deps.Config.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = deps.Config.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: deps.Config.Telemetry.ServiceName,
		Enabled:     deps.Config.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(deps.Config.HTTP.MaxBodySize))

	systemHandler := handler.NewSystemHandler()
	engine.GET("/healthz", systemHandler.Healthz)

	checkoutHandler := handler.NewCheckoutHandler(deps.CheckoutService)

	api := engine.Group("/api/v1/checkout/:orderId")
	api.Use(middleware.SessionAuth(deps.SessionService))
	{
		api.GET("/settings", checkoutHandler.GetSettings)
		api.POST("/default-address", checkoutHandler.AssignDefaultAddress)
		api.POST("/shipments/auto", checkoutHandler.AutoAssignShippingMethods)
		api.PATCH("/shipments/:shipmentId", checkoutHandler.SelectShippingMethod)
	}

	return engine
}
