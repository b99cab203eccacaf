package httpserver

import (
	"context"

	"insight-srv/internal/ingestion"
	ingestionHTTP "insight-srv/internal/ingestion/delivery/http"
	ingestionKafka "insight-srv/internal/ingestion/delivery/kafka/producer"
	ingestionRabbit "insight-srv/internal/ingestion/delivery/rabbitmq/producer"
	ingestionUsecase "insight-srv/internal/ingestion/usecase"
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupIngestionDomain maps the internal replay endpoint. It is skipped when no internal key is configured.
func (srv *HTTPServer) setupIngestionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.internalKey == "" {
		srv.l.Warnf(ctx, "Internal key not configured, ingestion routes disabled")
		return nil
	}

	var publisher ingestion.Publisher
	if srv.kafkaProducer != nil {
		publisher = ingestionKafka.New(srv.l, srv.kafkaProducer, srv.kafkaConfig.Topic)
	}

	var alerter ingestion.Alerter
	if srv.rabbitConn != nil {
		p, err := ingestionRabbit.New(srv.l, srv.rabbitConn, srv.rabbitConfig.AlertExchange)
		if err != nil {
			return err
		}
		alerter = p
	}

	uc := ingestionUsecase.New(
		srv.l,
		srv.ingestionConfig,
		srv.minioClient,
		srv.messageUC,
		srv.sentimentUC,
		publisher,
		alerter,
	)

	handler := ingestionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Ingestion domain registered")
	return nil
}
