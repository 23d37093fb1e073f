// Package httpserver exposes the custdesk REST API over gin: login/signup
// plus token-guarded customer CRUD with a paginated listing envelope.
package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"custdesk/internal/logging"
	"custdesk/internal/server/customers"
	"custdesk/internal/server/users"
)

// buildRouter wires routes for the API.
func buildRouter(logger logging.Logger, userService *users.Service, customerService *customers.Service, secretKey []byte, allowedOrigin string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.Use(cors.New(corsConfig(allowedOrigin)))

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	api.POST("/login", loginHandler(userService))
	api.POST("/signup", signupHandler(userService))

	protected := api.Group("/customers", authMiddleware(secretKey))
	protected.GET("", listCustomersHandler(customerService))
	protected.POST("", createCustomerHandler(customerService))
	protected.PUT("/:id", updateCustomerHandler(customerService))
	protected.DELETE("/:id", deleteCustomerHandler(customerService))

	return router
}

func corsConfig(allowedOrigin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if allowedOrigin == "" || allowedOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{allowedOrigin}
	}
	return cfg
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
