package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sabrina-lives/scale-claims-case-study/internal/observability/metrics"
)

// RouterConfig carries the router's dependencies
type RouterConfig struct {
	Handler     *Handler
	Logger      *zap.Logger
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
}

// NewRouter builds the gin engine with all API routes and middleware
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(cfg.Logger))
	router.Use(corsMiddleware())
	if cfg.HTTPMetrics != nil {
		router.Use(metricsMiddleware(cfg.HTTPMetrics))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "claims-review",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	if cfg.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	h := cfg.Handler
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/claims", h.ListClaims)
		apiGroup.POST("/claims/batch-approve", h.BatchApprove)
		apiGroup.GET("/claims/number/:claimNumber", h.GetClaimByNumber)
		apiGroup.GET("/claims/:id", h.GetClaim)
		apiGroup.PATCH("/claims/:id", h.PatchClaim)
		apiGroup.POST("/claims/:id/approve", h.ApproveClaim)
		apiGroup.POST("/claims/:id/reject", h.RejectClaim)
		apiGroup.POST("/claims/:id/send-to-shop", h.SendToShop)
		apiGroup.GET("/claims/:id/damage-items", h.ListDamageItems)
		apiGroup.GET("/claims/:id/photos", h.ListPhotos)
		apiGroup.GET("/claims/:id/cost-breakdown", h.ListCostBreakdown)
		apiGroup.GET("/claims/:id/audit-log", h.ListAuditLog)
		apiGroup.POST("/reset-data", h.ResetData)
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// corsMiddleware adds CORS headers for the dashboard frontend
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Actor")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// metricsMiddleware records request counts and latency per route
func metricsMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
