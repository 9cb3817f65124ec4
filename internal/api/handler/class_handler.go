package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// ClassHandler 班级模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// ListClasses 班级列表（按名称排序）
// GET /api/v1/classes
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": classes})
}

// GetClass 班级详情
// GET /api/v1/classes/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	class, err := h.classSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, class)
}

// CreateClass 添加班级
// POST /api/v1/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.Created(c, class)
}

// UpdateClass 更新班级
// PUT /api/v1/classes/:id
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, class)
}

// DeleteClass 删除班级，班级下仍有学生时拒绝
// DELETE /api/v1/classes/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ClassHandler) handleClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 30001, "班级不存在")
	case errors.Is(err, service.ErrClassHasStudents):
		response.Conflict(c, 30002, "班级下仍有学生，无法删除")
	case errors.Is(err, service.ErrResourceInUse):
		response.Conflict(c, response.CodeConflict, "班级仍被授课安排引用，无法删除")
	default:
		response.InternalError(c)
	}
}
