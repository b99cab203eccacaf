package httpserver

import (
	"context"

	classificationUsecase "insight-srv/internal/classification/usecase"
	messagePostgre "insight-srv/internal/message/repository/postgre"
	messageRedis "insight-srv/internal/message/repository/redis"
	messageUsecase "insight-srv/internal/message/usecase"
	sentimentUsecase "insight-srv/internal/sentiment/usecase"
)

// setupCoreDomains builds the usecases shared by several HTTP domains.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) {
	srv.sentimentUC = sentimentUsecase.New(srv.l)
	classifierUC := classificationUsecase.New()

	repo := messagePostgre.New(srv.postgresDB, srv.encrypter, srv.l)
	cache := messageRedis.New(srv.redisClient, srv.cacheConfig.AnalysisTTL, srv.l)
	srv.messageUC = messageUsecase.New(srv.l, repo, cache, srv.sentimentUC, classifierUC)

	srv.l.Infof(ctx, "Core domains (Sentiment, Classification, Message) initialized")
}
