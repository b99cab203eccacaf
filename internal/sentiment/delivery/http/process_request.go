package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "sentiment.delivery.http.processAnalyzeRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processAnalyzeMessagesRequest(c *gin.Context) (analyzeMessagesReq, error) {
	var req analyzeMessagesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "sentiment.delivery.http.processAnalyzeMessagesRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSummaryRequest(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(c.Request.Context(), "sentiment.delivery.http.processSummaryRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
