//go:build !embed
// +build !embed

package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// setupStaticFiles serves the chat page from disk (development, no embedding)
func setupStaticFiles(router *gin.Engine) {
	log.Info().Msg("🔧 Using local filesystem for frontend assets (development mode)")

	router.StaticFile("/", "./cmd/server/web/dist/index.html")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Not found",
			"hint":    "Build with -tags embed to serve the bundled chat page",
		})
	})
}
