package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// ClassroomHandler 课堂活动 HTTP 处理器
type ClassroomHandler struct {
	classroomSvc service.ClassroomService
	calendarSvc  service.CalendarService
}

// NewClassroomHandler 创建 ClassroomHandler
func NewClassroomHandler(classroomSvc service.ClassroomService, calendarSvc service.CalendarService) *ClassroomHandler {
	return &ClassroomHandler{classroomSvc: classroomSvc, calendarSvc: calendarSvc}
}

// ListActivities 课堂活动列表（日期倒序）
// GET /api/v1/activities
func (h *ClassroomHandler) ListActivities(c *gin.Context) {
	var req dto.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	list, err := h.classroomSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// CreateActivity 创建课堂活动
// POST /api/v1/activities
func (h *ClassroomHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	activity, err := h.classroomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.Created(c, activity)
}

// GetActivity 活动详情及学生得分
// GET /api/v1/activities/:id
func (h *ClassroomHandler) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.classroomSvc.Detail(c.Request.Context(), id)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, detail)
}

// DeleteActivity 删除课堂活动及其评分
// DELETE /api/v1/activities/:id
func (h *ClassroomHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.classroomSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, nil)
}

// GradeActivity 为学生评分
// PUT /api/v1/activities/:id/scores
func (h *ClassroomHandler) GradeActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.GradeActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	if err := h.classroomSvc.Grade(c.Request.Context(), id, &req); err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.OK(c, nil)
}

// calendarQuery 日历导出参数
type calendarQuery struct {
	CourseID uint   `form:"course_id" binding:"required,min=1"`
	Term     string `form:"term"      binding:"omitempty,term"`
}

// ExportCalendar 导出课程的课堂活动为 iCalendar 文件
// GET /api/v1/activities/calendar?course_id=&term=
func (h *ClassroomHandler) ExportCalendar(c *gin.Context) {
	var q calendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	data, filename, err := h.calendarSvc.ExportActivities(c.Request.Context(), q.CourseID, q.Term)
	if err != nil {
		h.handleClassroomError(c, err)
		return
	}

	response.Attachment(c, filename, "text/calendar; charset=utf-8", data)
}

func (h *ClassroomHandler) handleClassroomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 50101, "课堂活动不存在")
	case errors.Is(err, service.ErrActivityDate):
		response.BadRequest(c, 50102, "活动日期格式错误，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrActivityOverMax):
		response.BadRequest(c, 50103, "得分超过活动满分")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 40001, "课程不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.BadRequest(c, 30101, "学生不存在")
	default:
		response.InternalError(c)
	}
}
