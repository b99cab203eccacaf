package http

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "message.delivery.http.processListRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processClassifyRequest(c *gin.Context) (classifyReq, model.Scope, error) {
	var req classifyReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "message.delivery.http.processClassifyRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processSetFlagRequest(c *gin.Context) (setFlagReq, model.Scope, error) {
	var req setFlagReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "message.delivery.http.processSetFlagRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}
	req.MessageID = c.Param("message_id")
	if req.MessageID == "" {
		return req, model.Scope{}, errMessageIDMissing
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processAnalyzeAccountRequest(c *gin.Context) (analyzeAccountReq, model.Scope, error) {
	req := analyzeAccountReq{
		AccountID: c.Param("account_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processAnalyzePlatformRequest(c *gin.Context) (analyzePlatformReq, model.Scope, error) {
	req := analyzePlatformReq{
		Platform: c.Param("platform"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
