package http

import (
	"insight-srv/internal/report"
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a risk report
// @Description Starts rendering in the background. Identical requests return the pending or recent report.
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReq true "Report parameters"
// @Param lang header string false "en | vi"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGenerateResp(o))
}

// @Summary List reports
// @Tags Report
// @Produce json
// @Param status query string false "PROCESSING | COMPLETED | FAILED"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listResp
// @Router /api/v1/reports [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get report status
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processReportIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	rpt, err := h.uc.GetReport(ctx, sc, report.GetReportInput{ReportID: id})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(rpt))
}

// @Summary Presigned download URL of a completed report
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/reports/{report_id}/download [get]
func (h *handler) DownloadReport(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processReportIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.DownloadReport(ctx, sc, report.DownloadReportInput{ReportID: id})
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: usecase DownloadReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}
