package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, model.Scope, error) {
	var req generateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	return req, scope.GetScopeFromContext(ctx), nil
}

func (h *handler) processReportIDRequest(c *gin.Context) (string, model.Scope, error) {
	id := c.Param("report_id")
	if id == "" {
		return "", model.Scope{}, errReportIDMissing
	}
	return id, scope.GetScopeFromContext(c.Request.Context()), nil
}
