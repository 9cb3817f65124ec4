package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// AssignmentHandler 作业文件夹 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

type folderListQuery struct {
	CourseID *uint `form:"course_id" binding:"omitempty,min=1"`
}

// ListFolders 作业文件夹列表
// GET /api/v1/assignments?course_id=
func (h *AssignmentHandler) ListFolders(c *gin.Context) {
	var q folderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	folders, err := h.assignmentSvc.List(c.Request.Context(), q.CourseID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": folders})
}

// CreateFolder 添加作业文件夹
// POST /api/v1/assignments
func (h *AssignmentHandler) CreateFolder(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	folder, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, folder)
}

// GetFolder 文件夹详情：学生提交情况
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) GetFolder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.assignmentSvc.Detail(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, detail)
}

// DeleteFolder 删除作业文件夹（不删除磁盘文件）
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) DeleteFolder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// ScanFolder 扫描目录变化并补登提交记录
// POST /api/v1/assignments/:id/scan
func (h *AssignmentHandler) ScanFolder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.assignmentSvc.Scan(c.Request.Context(), id)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, result)
}

// GradeSubmission 批改作业
// PUT /api/v1/assignments/:id/grade
func (h *AssignmentHandler) GradeSubmission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	if err := h.assignmentSvc.Grade(c.Request.Context(), id, &req); err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFolderNotFound):
		response.NotFound(c, 50201, "作业文件夹不存在")
	case errors.Is(err, service.ErrFolderExists):
		response.Conflict(c, 50202, "该作业文件夹已添加")
	case errors.Is(err, service.ErrFolderPathInvalid):
		response.BadRequest(c, 50203, "作业文件夹路径不存在或不是目录")
	case errors.Is(err, service.ErrCourseNotFound):
		response.BadRequest(c, 40001, "课程不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 30101, "学生不存在")
	default:
		response.InternalError(c)
	}
}
