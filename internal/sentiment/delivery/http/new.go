package http

import (
	"insight-srv/internal/middleware"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      sentiment.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc sentiment.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
