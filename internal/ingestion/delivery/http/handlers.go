package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest a collected batch from MinIO
// @Description Internal API, same pipeline as the insight.messages.ingested consumer
// @Tags Ingestion (Internal)
// @Accept json
// @Produce json
// @Param body body ingestReq true "Batch"
// @Success 200 {object} ingestResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 422 {object} response.Resp
// @Router /api/v1/internal/ingest [post]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	ctx = scope.SetScopeToContext(ctx, model.SystemScope(req.OwnerID))

	o, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.Ingest: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIngestResp(o))
}
