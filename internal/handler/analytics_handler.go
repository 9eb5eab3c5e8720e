package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/service"
)

// AnalyticsHandler serves analytics and keyword extraction over stored reports
type AnalyticsHandler struct {
	service *service.ReportService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service *service.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Comprehensive handles GET /api/analytics
func (h *AnalyticsHandler) Comprehensive(c *gin.Context) {
	result, err := h.service.Analytics()
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, result, nil)
}

// Keywords handles GET /api/reports/:id/keywords
func (h *AnalyticsHandler) Keywords(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	data, err := h.service.Keywords(id)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, data, nil)
}
