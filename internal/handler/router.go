package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkwellhq/researchd/internal/export"
	"github.com/inkwellhq/researchd/internal/service"
)

// NewRouter builds the Gin engine with every route registered.
func NewRouter(svc *service.ReportService, exporter *export.Exporter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	reports := NewReportHandler(svc)
	versions := NewVersionHandler(svc)
	analytics := NewAnalyticsHandler(svc)
	exports := NewExportHandler(svc, exporter)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "researchd"})
	})

	api := r.Group("/api")
	{
		api.POST("/research", reports.Research)
		api.GET("/reports", reports.List)
		api.GET("/reports/:id", reports.Get)
		api.DELETE("/reports/:id", reports.Delete)
		api.GET("/search", reports.Search)

		api.POST("/reports/:id/favorite", reports.ToggleFavorite)
		api.GET("/favorites", reports.ListFavorites)
		// Registered outside /reports to avoid a wildcard conflict with :id.
		api.POST("/compare", reports.Compare)

		api.GET("/reports/:id/versions", versions.List)
		api.GET("/reports/:id/versions/:version", versions.Get)
		api.POST("/reports/:id/versions", versions.Create)
		api.POST("/reports/:id/versions/:version/restore", versions.Restore)

		api.GET("/analytics", analytics.Comprehensive)
		api.GET("/reports/:id/keywords", analytics.Keywords)

		api.GET("/export/:id/:format", exports.Export)
	}

	return r
}
