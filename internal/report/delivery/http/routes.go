package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	{
		reports.POST("", h.Generate)
		reports.GET("", h.List)
		reports.GET("/:report_id", h.GetReport)
		reports.GET("/:report_id/download", h.DownloadReport)
	}
}
