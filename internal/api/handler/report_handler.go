package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// ReportHandler 成绩报表 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport 生成课程+班级的加权成绩报表
// GET /api/v1/reports?course_id=&class_id=&term=
func (h *ReportHandler) GetReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	report, err := h.reportSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		handleReportError(c, err)
		return
	}

	response.OK(c, report)
}

// handleReportError 报表与报表导出共用的错误映射
func handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportSelectionRequired):
		response.BadRequest(c, 50401, "请选择具体的课程和班级")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 40001, "课程不存在")
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 30001, "班级不存在")
	default:
		response.InternalError(c)
	}
}
