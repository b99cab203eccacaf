package http

import (
	"strings"

	"insight-srv/internal/model"
	pkgErrors "insight-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIngestRequest(c *gin.Context) (ingestReq, error) {
	ctx := c.Request.Context()

	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.processIngestRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}

	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "ingestion.delivery.http.processIngestRequest: validate failed: %v", err)
		return req, err
	}

	return req, nil
}

// validate checks the fields binding tags cannot express.
func (r ingestReq) validate() error {
	v := pkgErrors.NewValidationErrorCollector()
	if _, ok := model.ParsePlatform(r.Platform); !ok {
		v.Add("platform", "unsupported platform")
	}
	if !strings.Contains(strings.TrimPrefix(strings.TrimPrefix(r.FileURL, "s3://"), "minio://"), "/") {
		v.Add("file_url", "must be bucket/object")
	}
	if v.HasError() {
		return v
	}
	return nil
}
