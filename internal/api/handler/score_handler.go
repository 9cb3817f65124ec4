package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// ScoreHandler 成绩录入 HTTP 处理器
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler 创建 ScoreHandler
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// UpsertScore 录入或更新一条成绩
// PUT /api/v1/scores
func (h *ScoreHandler) UpsertScore(c *gin.Context) {
	var req dto.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	score, err := h.scoreSvc.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}

	response.OK(c, score)
}

// BatchUpsertScores 批量录入成绩，任一条失败时全部不生效
// POST /api/v1/scores/batch
func (h *ScoreHandler) BatchUpsertScores(c *gin.Context) {
	var req dto.BatchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	n, err := h.scoreSvc.BatchUpsert(c.Request.Context(), &req)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}

	response.OK(c, gin.H{"saved": n})
}

// DeleteScore 删除成绩
// DELETE /api/v1/scores/:id
func (h *ScoreHandler) DeleteScore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scoreSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScoreError(c, err)
		return
	}

	response.OK(c, nil)
}

// GradeSheet 课程+班级成绩单
// GET /api/v1/scores/sheet?course_id=&class_id=&term=
func (h *ScoreHandler) GradeSheet(c *gin.Context) {
	var req dto.GradeSheetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	sheet, err := h.scoreSvc.GradeSheet(c.Request.Context(), &req)
	if err != nil {
		h.handleScoreError(c, err)
		return
	}

	response.OK(c, sheet)
}

func (h *ScoreHandler) handleScoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScoreNotFound):
		response.NotFound(c, 50001, "成绩记录不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.ErrorWithDetails(c, http.StatusBadRequest, 30101, "学生不存在", err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.ErrorWithDetails(c, http.StatusBadRequest, 40001, "课程不存在", err.Error())
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 30001, "班级不存在")
	default:
		response.InternalError(c)
	}
}
