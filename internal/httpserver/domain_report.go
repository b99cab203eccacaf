package httpserver

import (
	"context"

	"insight-srv/internal/middleware"
	reportHTTP "insight-srv/internal/report/delivery/http"
	reportPostgre "insight-srv/internal/report/repository/postgre"
	reportUsecase "insight-srv/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

// setupReportDomain expects the report bucket to exist; config/minio.Connect creates it.
func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	repo := reportPostgre.New(srv.postgresDB, srv.l)
	uc := reportUsecase.New(repo, srv.messageUC, srv.minioClient, srv.l, reportUsecase.Config{
		ReportBucket: srv.reportBucket,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
}
