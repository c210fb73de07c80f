package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shopassist/internal/catalog"
	"shopassist/internal/model"
	"shopassist/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles direct catalog queries
type SearchHandler struct {
	assistant *service.Assistant
	index     *catalog.Index
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(assistant *service.Assistant, index *catalog.Index) *SearchHandler {
	return &SearchHandler{
		assistant: assistant,
		index:     index,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Direction != nil && *req.Direction != model.DirectionLess && *req.Direction != model.DirectionMore {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid direction. Must be one of: less, more"})
		return
	}

	startTime := time.Now()
	results, reply := h.assistant.Search(model.SearchQuery{
		Item:      req.Item,
		Color:     req.Color,
		Budget:    req.Budget,
		Direction: req.Direction,
	})
	if results == nil {
		results = model.MatchResult{}
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		Results: results,
		Total:   len(results),
		Reply:   reply,
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// Catalog handles GET /api/v1/catalog
func (h *SearchHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, model.CatalogResponse{
		Roles:    h.index.Roles(),
		Rows:     h.index.Len(),
		Items:    h.index.ItemNames(),
		Degraded: h.index.Degraded(),
		Source:   h.index.Source(),
	})
}

func setSSEHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}
