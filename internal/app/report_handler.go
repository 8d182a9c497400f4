package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles filing a report against a post, comment or user
// POST /api/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	report, err := h.reportService.CreateReport(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport handles getting a report by ID
// GET /api/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReportByID(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetReports handles listing all reports
// GET /api/reports
func (h *ReportHandler) GetReports(c *gin.Context) {
	reports, err := h.reportService.GetReports()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReportsByTarget handles listing the reports filed against one target
// GET /api/reports/target/:targetType/:targetId
func (h *ReportHandler) GetReportsByTarget(c *gin.Context) {
	reports, err := h.reportService.GetReportsByTarget(c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// UpdateReportStatus handles moving a report through its status lifecycle
// PATCH /api/reports/:id/status
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	var req service.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	report, err := h.reportService.UpdateReportStatus(c.Param("id"), req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport handles report deletion
// DELETE /api/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reportService.DeleteReport(c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Report deleted")
}

// GetReportCounters handles listing all report counters
// GET /api/report-counters
func (h *ReportHandler) GetReportCounters(c *gin.Context) {
	counters, err := h.reportService.GetReportCounters()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, counters)
}

// GetReportCounter handles getting the counter of one target
// GET /api/report-counters/:targetType/:targetId
func (h *ReportHandler) GetReportCounter(c *gin.Context) {
	counter, err := h.reportService.GetReportCounter(c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, counter)
}

// UpsertReportCounter handles setting a target's counter directly
// PUT /api/report-counters
func (h *ReportHandler) UpsertReportCounter(c *gin.Context) {
	var req service.UpsertReportCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	counter, created, err := h.reportService.UpsertReportCounter(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, counter)
}

// DeleteReportCounter handles removing a target's counter
// DELETE /api/report-counters/:targetType/:targetId
func (h *ReportHandler) DeleteReportCounter(c *gin.Context) {
	if err := h.reportService.DeleteReportCounter(c.Param("targetType"), c.Param("targetId")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Report counter deleted")
}
