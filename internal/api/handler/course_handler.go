package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// CourseHandler 课程与授课安排 HTTP 处理器
type CourseHandler struct {
	courseSvc      service.CourseService
	courseClassSvc service.CourseClassService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService, courseClassSvc service.CourseClassService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, courseClassSvc: courseClassSvc}
}

// ── 课程 ──

// ListCourses 课程列表
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// GetCourse 课程详情
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// CreateCourse 添加课程
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// UpdateCourse 更新课程
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 授课安排 ──

// ListCourseClasses 授课安排列表
// GET /api/v1/course-classes
func (h *CourseHandler) ListCourseClasses(c *gin.Context) {
	var req dto.CourseClassListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	items, err := h.courseClassSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// CreateCourseClass 将课程安排到班级
// POST /api/v1/course-classes
func (h *CourseHandler) CreateCourseClass(c *gin.Context) {
	var req dto.CreateCourseClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	item, err := h.courseClassSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, item)
}

// DeleteCourseClass 删除授课安排
// DELETE /api/v1/course-classes/:id
func (h *CourseHandler) DeleteCourseClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseClassSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 40001, "课程不存在")
	case errors.Is(err, service.ErrCourseClassNotFound):
		response.NotFound(c, 40101, "授课安排不存在")
	case errors.Is(err, service.ErrCourseClassExists):
		response.Conflict(c, 40102, "该课程本学期已安排到该班级")
	case errors.Is(err, service.ErrTeacherInvalid):
		response.BadRequest(c, 40103, "指定的教师不存在或不是教师角色")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 30001, "班级不存在")
	case errors.Is(err, service.ErrResourceInUse):
		response.Conflict(c, response.CodeConflict, "课程仍有关联数据，无法删除")
	default:
		response.InternalError(c)
	}
}
