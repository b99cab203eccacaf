package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("/sentiment")
	{
		g.POST("/analyze", h.Analyze)
		g.POST("/messages", h.AnalyzeMessages)
		g.POST("/summary", h.Summary)
	}
}
