package handler

import (
	"net/http"

	"shopassist/internal/app"
	"shopassist/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BuildInfo is reported by /health and /version
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRouter builds the gin engine with every API route registered
func NewRouter(a *app.App, server config.ServerConfig, info BuildInfo) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), RequestMetrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = server.AllowedOrigins
	corsConfig.AllowMethods = server.AllowedMethods
	corsConfig.AllowHeaders = server.AllowedHeaders
	if len(corsConfig.AllowOrigins) == 0 || corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "shopping-assistant",
			"catalog":    a.Index.Source(),
			"degraded":   a.Index.Degraded(),
			"version":    info.Version,
			"build_time": info.BuildTime,
			"git_commit": info.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    info.Version,
			"build_time": info.BuildTime,
			"git_commit": info.GitCommit,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	chatHandler := NewChatHandler(a.Assistant)
	searchHandler := NewSearchHandler(a.Assistant, a.Index)
	assistHandler := NewAssistHandler(a.Availability, a.Fit)

	apiV1 := router.Group("/api/v1")
	{
		// Conversation endpoints
		apiV1.POST("/sessions", chatHandler.CreateSession)
		apiV1.GET("/sessions/:id", chatHandler.GetSession)
		apiV1.DELETE("/sessions/:id", chatHandler.DeleteSession)
		apiV1.POST("/sessions/:id/messages", chatHandler.SendMessage)
		apiV1.POST("/sessions/:id/messages/stream", chatHandler.SendMessageStream)
		apiV1.POST("/sessions/:id/compare", chatHandler.Compare)
		apiV1.POST("/sessions/:id/recommendations", chatHandler.Recommend)
		apiV1.POST("/sessions/:id/alerts", chatHandler.CreateAlert)

		// Catalog endpoints
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/catalog", searchHandler.Catalog)

		// Helpers
		apiV1.GET("/availability", assistHandler.Availability)
		apiV1.POST("/fit", assistHandler.Fit)
	}

	return router
}
