package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Score one text
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Text"
// @Success 200 {object} sentimentResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/sentiment/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	req, err := h.processAnalyzeRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newSentimentResp(h.uc.AnalyzeSentiment(req.Text)))
}

// @Summary Aggregate a batch of messages
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param body body analyzeMessagesReq true "Messages"
// @Success 200 {object} analysisResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/sentiment/messages [post]
func (h *handler) AnalyzeMessages(c *gin.Context) {
	req, err := h.processAnalyzeMessagesRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newAnalysisResp(h.uc.AnalyzeMessages(req.toInput())))
}

// @Summary Aggregate messages and render a readable summary
// @Tags Sentiment
// @Accept json
// @Produce json
// @Param body body summaryReq true "Profile and messages"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/sentiment/summary [post]
func (h *handler) Summary(c *gin.Context) {
	req, err := h.processSummaryRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	msgs := toMessages(req.Messages)
	analysis := h.uc.AnalyzeMessages(msgs)
	summary := h.uc.GenerateSummary(req.toUserData(len(msgs)), analysis)

	response.OK(c, summaryResp{
		Analysis: h.newAnalysisResp(analysis),
		Summary:  summary,
	})
}
