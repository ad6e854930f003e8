package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/holi/give-server/internal/config"
	"github.com/holi/give-server/internal/handlers"
	"github.com/holi/give-server/internal/interfaces"
	"github.com/holi/give-server/internal/middleware"
	"github.com/holi/give-server/internal/telemetry"
)

// NewRouter assembles the full HTTP surface: static give page, health,
// metrics and the payment API.
func NewRouter(cfg *config.Config, processor interfaces.Processor) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Frontend
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/payment-success", "./public/payment-success.html")
	r.StaticFile("/app.js", "./public/app.js")
	r.Static("/static", "./public/static")

	// Payment routes
	paymentHandler := handlers.NewPaymentHandler(processor, cfg.SquareLocationID)
	adminHandler := handlers.NewAdminHandler(processor)
	api := r.Group("/api")
	{
		api.POST("/pay", paymentHandler.CreatePayment)
		api.POST("/register-apple-domain", middleware.AdminKey(cfg.AdminKey), adminHandler.RegisterAppleDomain)
	}

	return r
}
