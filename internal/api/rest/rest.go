package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/mural-hq/mint-fulfillment/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Purchase status polling (requires authentication)
		v1.GET("/purchases/:id", middleware.Auth(authCfg), handler.GetPurchase)

		// Explicit fulfillment attempt (requires authentication)
		v1.POST("/purchases/:id/fulfill", middleware.Auth(authCfg), handler.FulfillPurchase)

		// Payment provider webhook (HMAC signature verified in the handler)
		v1.POST("/webhooks/payments", handler.PaymentWebhook)
	}
}
