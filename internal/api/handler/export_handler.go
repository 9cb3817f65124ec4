package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportReport 导出成绩报表
// GET /api/v1/reports/export?course_id=&class_id=&term=
func (h *ExportHandler) ExportReport(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportReport(c.Request.Context(), &req)
	if err != nil {
		handleReportError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}

// ExportStudents 导出学生名单
// GET /api/v1/students/export?keyword=&class_id=
func (h *ExportHandler) ExportStudents(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportStudents(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	response.Attachment(c, filename, xlsxContentType, buf.Bytes())
}
