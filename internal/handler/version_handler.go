package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/service"
)

// VersionHandler handles report version requests
type VersionHandler struct {
	service *service.ReportService
}

// NewVersionHandler creates a new VersionHandler
func NewVersionHandler(service *service.ReportService) *VersionHandler {
	return &VersionHandler{service: service}
}

// List handles GET /api/reports/:id/versions
func (h *VersionHandler) List(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	versions, err := h.service.ListVersions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, versions, &common.Meta{Count: len(versions)})
}

// Get handles GET /api/reports/:id/versions/:version
func (h *VersionHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	number, ok := paramVersion(c)
	if !ok {
		return
	}
	version, err := h.service.GetVersion(id, number)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, version, nil)
}

// CreateRequest is the POST /api/reports/:id/versions body.
type CreateRequest struct {
	ChangeDescription string `json:"change_description"`
}

// Create handles POST /api/reports/:id/versions
func (h *VersionHandler) Create(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CreateRequest
	// Body is optional; an empty description gets a default downstream.
	_ = c.ShouldBindJSON(&req)

	version, err := h.service.SaveVersion(id, req.ChangeDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, version, nil)
}

// Restore handles POST /api/reports/:id/versions/:version/restore
func (h *VersionHandler) Restore(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	number, ok := paramVersion(c)
	if !ok {
		return
	}
	report, err := h.service.RestoreVersion(id, number)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, report, nil)
}

func paramVersion(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("version"))
	if err != nil || n < 1 {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid version number")
		return 0, false
	}
	return n, true
}
