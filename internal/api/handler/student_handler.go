package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/service"
	"github.com/clareleo/Huaixu/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// ListStudents 分页查询学生，支持关键字（姓名或学号）与班级筛选
// GET /api/v1/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// GetStudent 学生详情
// GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// CreateStudent 添加学生
// POST /api/v1/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.Created(c, student)
}

// UpdateStudent 更新学生信息
// PUT /api/v1/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, student)
}

// DeleteStudent 删除学生
// DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportStudents 从 xlsx 导入学生（学号、姓名两列，首行为表头）
// POST /api/v1/students/import  multipart: file, class_id（可选，导入到该班级）
func (h *StudentHandler) ImportStudents(c *gin.Context) {
	var classID *uint
	if raw := c.PostForm("class_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			response.BadRequest(c, response.CodeBadRequest, "无效的班级ID")
			return
		}
		cid := uint(id)
		classID = &cid
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请上传 Excel 文件")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, response.CodeBadRequest, "无法读取上传文件")
		return
	}
	defer f.Close()

	rows, err := h.studentSvc.ParseImportFile(f)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	result, err := h.studentSvc.ImportStudents(c.Request.Context(), rows, classID)
	if err != nil {
		h.handleStudentError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 30101, "学生不存在")
	case errors.Is(err, service.ErrStudentExists):
		response.Conflict(c, 30102, "学号已存在")
	case errors.Is(err, service.ErrClassNotFound):
		response.BadRequest(c, 30001, "班级不存在")
	case errors.Is(err, service.ErrImportBadFile):
		response.BadRequest(c, 30103, "无法解析Excel文件")
	case errors.Is(err, service.ErrImportNoData):
		response.BadRequest(c, 30104, "Excel文件无数据行（第一行为表头）")
	case errors.Is(err, service.ErrImportTooManyRows):
		response.BadRequest(c, 30105, err.Error())
	case errors.Is(err, service.ErrResourceInUse):
		response.Conflict(c, response.CodeConflict, "该学生仍有成绩或评价记录，无法删除")
	default:
		response.InternalError(c)
	}
}
