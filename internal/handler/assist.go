package handler

import (
	"net/http"

	"shopassist/internal/model"
	"shopassist/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistHandler handles the stateless helpers: availability and sizing
type AssistHandler struct {
	availability *service.AvailabilityService
	fit          *service.FitAdvisor
}

// NewAssistHandler creates a new assist handler
func NewAssistHandler(availability *service.AvailabilityService, fit *service.FitAdvisor) *AssistHandler {
	return &AssistHandler{
		availability: availability,
		fit:          fit,
	}
}

// Availability handles GET /api/v1/availability?location=
func (h *AssistHandler) Availability(c *gin.Context) {
	c.JSON(http.StatusOK, h.availability.ByLocation(c.Query("location")))
}

// Fit handles POST /api/v1/fit
func (h *AssistHandler) Fit(c *gin.Context) {
	var req model.FitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.FitResponse{Reply: h.fit.Advise(req.Text)})
}
