package http

import (
	"insight-srv/internal/ingestion"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler exposes ingestion to internal callers (replay of a collected batch).
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      ingestion.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc ingestion.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
