package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwellhq/researchd/internal/common"
	"github.com/inkwellhq/researchd/internal/export"
	"github.com/inkwellhq/researchd/internal/service"
)

// ExportHandler serves report file exports
type ExportHandler struct {
	service  *service.ReportService
	exporter *export.Exporter
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(service *service.ReportService, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{service: service, exporter: exporter}
}

// Export handles GET /api/export/:id/:format
func (h *ExportHandler) Export(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	report, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, filename, err := h.exporter.Export(report, c.Param("format"))
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filename)
}
