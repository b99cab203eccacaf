package http

import (
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary List stored messages
// @Tags Message
// @Produce json
// @Param platform query string false "telegram | whatsapp | youtube | instagram"
// @Param account_id query string false "Account ID"
// @Param chat_id query string false "Chat ID"
// @Param label query string false "safe | fraud | sensitive | spam | other"
// @Param flagged query bool false "Only flagged / unflagged"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/messages [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Classify messages by label and risk tier
// @Tags Message
// @Produce json
// @Param platform query string false "Platform"
// @Param account_id query string false "Account ID"
// @Param chat_id query string false "Chat ID"
// @Success 200 {object} classificationResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/messages/classification [get]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processClassifyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.Classify: processClassifyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Classify(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.Classify: usecase Classify failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newClassificationResp(o))
}

// @Summary Flag or unflag a message
// @Tags Message
// @Accept json
// @Produce json
// @Param message_id path string true "Message ID"
// @Param body body setFlagReq true "Flag"
// @Success 200 {object} messageResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/messages/{message_id}/flag [patch]
func (h *handler) SetFlag(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSetFlagRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.SetFlag: processSetFlagRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SetFlag(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.SetFlag: usecase SetFlag failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newMessageResp(o))
}

// @Summary Analyze an account
// @Description Aggregate sentiment, scam risk and a readable summary for one account. Cached for 10 minutes.
// @Tags Analysis
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} accountAnalysisResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/analysis [get]
func (h *handler) AnalyzeAccount(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeAccountRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.AnalyzeAccount: processAnalyzeAccountRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AnalyzeAccount(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.AnalyzeAccount: usecase AnalyzeAccount failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAccountAnalysisResp(o))
}

// @Summary Analyze a platform
// @Tags Analysis
// @Produce json
// @Param platform path string true "Platform"
// @Success 200 {object} platformAnalysisResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/platforms/{platform}/analysis [get]
func (h *handler) AnalyzePlatform(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzePlatformRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.AnalyzePlatform: processAnalyzePlatformRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AnalyzePlatform(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.AnalyzePlatform: usecase AnalyzePlatform failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPlatformAnalysisResp(o))
}

// @Summary Dashboard overview
// @Description Classification stats and aggregate sentiment for every supported platform
// @Tags Analysis
// @Produce json
// @Success 200 {object} overviewResp
// @Router /api/v1/dashboard/overview [get]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Overview(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "message.delivery.http.Overview: usecase Overview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newOverviewResp(o))
}
