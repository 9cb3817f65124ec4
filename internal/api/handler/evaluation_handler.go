package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// EvaluationHandler 学生评价 HTTP 处理器
type EvaluationHandler struct {
	evalSvc service.EvaluationService
}

// NewEvaluationHandler 创建 EvaluationHandler
func NewEvaluationHandler(evalSvc service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evalSvc: evalSvc}
}

// ListByStudent 某学生的全部评价
// GET /api/v1/students/:id/evaluations
func (h *EvaluationHandler) ListByStudent(c *gin.Context) {
	list, err := h.evalSvc.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateEvaluation 添加评价，评价人为当前用户
// POST /api/v1/evaluations
func (h *EvaluationHandler) CreateEvaluation(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	eval, err := h.evalSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.Created(c, eval)
}

// DeleteEvaluation 删除评价
// DELETE /api/v1/evaluations/:id
func (h *EvaluationHandler) DeleteEvaluation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.evalSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleEvaluationError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *EvaluationHandler) handleEvaluationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEvaluationNotFound):
		response.NotFound(c, 50301, "评价不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 30101, "学生不存在")
	default:
		response.InternalError(c)
	}
}
