package restapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"walletstate/internal/app/port"
)

// SetupRouter builds the gin engine with all API routes and /metrics.
func SetupRouter(h *Handler, gatherer prometheus.Gatherer, logger port.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/chains", h.GetChains)
		v1.GET("/events", h.GetEvents)
		v1.POST("/fees/estimate", h.EstimateFee)
		v1.GET("/balances/:address", h.GetBalances)
		v1.PUT("/networks/:chainId/enabled", h.SetNetworkEnabled)
		v1.PUT("/networks/:chainId/connection", h.SetNetworkConnection)
		v1.PUT("/networks/:chainId/populated", h.MarkPopulated)
		v1.PUT("/origins/:originId/chain", h.SetOriginChain)
		v1.PUT("/selected", h.SetSelected)
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

func requestLogger(logger port.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String())
	}
}
