package httpserver

import (
	"context"

	messageHTTP "insight-srv/internal/message/delivery/http"
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupMessageDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := messageHTTP.New(srv.l, srv.messageUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Message domain registered")
}
