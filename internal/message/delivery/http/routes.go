package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	messages := r.Group("/messages")
	{
		messages.GET("", h.List)
		messages.GET("/classification", h.Classify)
		messages.PATCH("/:message_id/flag", h.SetFlag)
	}

	r.GET("/accounts/:account_id/analysis", h.AnalyzeAccount)
	r.GET("/platforms/:platform/analysis", h.AnalyzePlatform)
	r.GET("/dashboard/overview", h.Overview)
}
