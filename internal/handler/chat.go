package handler

import (
	"errors"
	"net/http"

	"shopassist/internal/model"
	"shopassist/internal/service"
	"shopassist/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles conversation HTTP requests
type ChatHandler struct {
	assistant *service.Assistant
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant *service.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// CreateSession handles POST /api/v1/sessions
func (h *ChatHandler) CreateSession(c *gin.Context) {
	s, err := h.assistant.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s))
}

// GetSession handles GET /api/v1/sessions/:id
func (h *ChatHandler) GetSession(c *gin.Context) {
	s, err := h.assistant.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s))
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	if err := h.assistant.ClearSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SendMessage handles POST /api/v1/sessions/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.assistant.GenerateReply(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// SendMessageStream handles POST /api/v1/sessions/:id/messages/stream - SSE chat turn
func (h *ChatHandler) SendMessageStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Unknown sessions get a plain 404 before the stream starts
	if _, err := h.assistant.Session(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}
	setSSEHeaders(c)

	sendSSE(c, "start", map[string]any{"text": req.Text})
	flusher.Flush()

	response, err := h.assistant.GenerateReplyStream(c.Request.Context(), c.Param("id"), req.Text, func(event string, data any) error {
		sendSSE(c, event, data)
		flusher.Flush()
		return nil
	})
	if err != nil {
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "done", map[string]any{"took_ms": response.Took})
	flusher.Flush()
}

// Compare handles POST /api/v1/sessions/:id/compare
func (h *ChatHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.assistant.Compare(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Recommend handles POST /api/v1/sessions/:id/recommendations
func (h *ChatHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.assistant.Recommend(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateAlert handles POST /api/v1/sessions/:id/alerts
func (h *ChatHandler) CreateAlert(c *gin.Context) {
	var req model.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.assistant.CreateAlert(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func sessionResponse(s *model.Session) model.SessionResponse {
	return model.SessionResponse{
		SessionID:      s.ID,
		Slots:          s.Slots,
		Preferences:    s.Preferences,
		Transcript:     s.Transcript,
		CompareHistory: s.CompareHistory,
		Alerts:         s.Alerts,
	}
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
