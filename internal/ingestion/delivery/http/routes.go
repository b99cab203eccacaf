package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	internal := r.Group("/internal")
	internal.Use(mw.InternalAuth())
	{
		internal.POST("/ingest", h.Ingest)
	}
}
