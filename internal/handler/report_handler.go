package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/service"
)

// ReportHandler handles report CRUD and research requests
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ResearchRequest is the POST /api/research body.
type ResearchRequest struct {
	Topic string `json:"topic"`
}

// Research handles POST /api/research
func (h *ReportHandler) Research(c *gin.Context) {
	var req ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	report, err := h.service.Research(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, report, nil)
}

// List handles GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	reports, err := h.service.List(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, reports, &common.Meta{Count: len(reports), Limit: limit})
}

// Get handles GET /api/reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	report, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, report, nil)
}

// Delete handles DELETE /api/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "report deleted"}, nil)
}

// Search handles GET /api/search?q=
func (h *ReportHandler) Search(c *gin.Context) {
	query := c.Query("q")
	reports, err := h.service.Search(query)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "query parameter required")
			return
		}
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, reports, &common.Meta{Count: len(reports)})
}

// ToggleFavorite handles POST /api/reports/:id/favorite
func (h *ReportHandler) ToggleFavorite(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	report, err := h.service.ToggleFavorite(id)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"id": report.ID, "is_favorite": report.IsFavorite}, nil)
}

// ListFavorites handles GET /api/favorites
func (h *ReportHandler) ListFavorites(c *gin.Context) {
	reports, err := h.service.ListFavorites()
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, reports, &common.Meta{Count: len(reports)})
}

// CompareRequest is the POST /api/compare body.
type CompareRequest struct {
	ReportIDs []uint `json:"report_ids"`
}

// Compare handles POST /api/compare
func (h *ReportHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	comparison, err := h.service.Compare(req.ReportIDs)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "between 2 and 4 report ids are required")
			return
		}
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, comparison, nil)
}

// paramID parses the :id path parameter, answering 400 itself on garbage.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid report id")
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to client-visible responses. Anything
// unrecognized is logged and surfaced as a generic server error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrReportNotFound),
		errors.Is(err, common.ErrVersionNotFound),
		errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrEmptyTopic):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
