package httpserver

import (
	"context"
	"fmt"

	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.internalKey)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.setupCoreDomains(ctx)

	api := srv.gin.Group(apiPrefix)

	// Internal routes authenticate with the internal key, not a user token.
	if err := srv.setupIngestionDomain(ctx, api, mw); err != nil {
		return fmt.Errorf("failed to setup ingestion domain: %w", err)
	}

	authed := api.Group("")
	authed.Use(mw.Auth())

	srv.setupSentimentDomain(ctx, authed, mw)
	srv.setupMessageDomain(ctx, authed, mw)
	srv.setupReportDomain(ctx, authed, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
