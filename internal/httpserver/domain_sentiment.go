package httpserver

import (
	"context"

	"insight-srv/internal/middleware"
	sentimentHTTP "insight-srv/internal/sentiment/delivery/http"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSentimentDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := sentimentHTTP.New(srv.l, srv.sentimentUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Sentiment domain registered")
}
