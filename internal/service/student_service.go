package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrStudentExists   = errors.New("学号已存在")
)

// StudentService 学生业务接口
type StudentService interface {
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	ParseImportFile(reader io.Reader) ([]ImportStudentRow, error)
	ImportStudents(ctx context.Context, rows []ImportStudentRow, classID *uint) (*dto.ImportResult, error)
}

// ImportStudentRow Excel 导入解析后的单行数据
type ImportStudentRow struct {
	Row       int
	StudentID string
	Name      string
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	filter := repository.StudentFilter{
		Keyword: strings.TrimSpace(req.Keyword),
		ClassID: req.ClassID,
	}
	students, total, err := s.repo.Student.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		list = append(list, toStudentResponse(&students[i]))
	}
	return list, total, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	id := strings.TrimSpace(req.StudentID)
	exists, err := s.repo.Student.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStudentExists
	}

	if err := s.checkClass(ctx, req.ClassID); err != nil {
		return nil, err
	}

	student := &model.Student{StudentID: id}
	applyStudentFields(student, &req.StudentFields)
	if err := s.repo.Student.Create(ctx, student); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrStudentExists
		}
		s.logger.Error("添加学生失败", zap.String("student_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("添加学生", zap.String("student_id", id), zap.String("name", student.Name))
	return s.GetByID(ctx, id)
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if err := s.checkClass(ctx, req.ClassID); err != nil {
		return nil, err
	}

	applyStudentFields(student, &req.StudentFields)
	student.Class = nil
	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.String("student_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("更新学生信息", zap.String("student_id", id))
	return s.GetByID(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		switch {
		case isNotFound(err):
			return ErrStudentNotFound
		case pkgerrors.IsForeignKey(err):
			return ErrResourceInUse
		}
		s.logger.Error("删除学生失败", zap.String("student_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除学生", zap.String("student_id", id))
	return nil
}

func (s *studentService) checkClass(ctx context.Context, classID *uint) error {
	if classID == nil {
		return nil
	}
	if _, err := s.repo.Class.GetByID(ctx, *classID); err != nil {
		if isNotFound(err) {
			return ErrClassNotFound
		}
		return err
	}
	return nil
}

// ────────────────────── ParseImportFile ──────────────────────

const maxImportRows = 5000

var (
	ErrImportNoData      = errors.New("Excel文件无数据行（第一行为表头）")
	ErrImportTooManyRows = fmt.Errorf("数据行数超过上限 %d 行", maxImportRows)
	ErrImportBadFile     = errors.New("无法解析Excel文件")
)

// ParseImportFile 解析学生导入文件
// 第一列学号、第二列姓名，首行为表头；学号或姓名为空的行忽略
func (s *studentService) ParseImportFile(reader io.Reader) ([]ImportStudentRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		s.logger.Warn("解析导入文件失败", zap.Error(err))
		return nil, ErrImportBadFile
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	var rows []ImportStudentRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		if len(row) < 2 {
			continue
		}
		item := ImportStudentRow{
			Row:       i + 1,
			StudentID: normalizeStudentID(row[0]),
			Name:      strings.TrimSpace(row[1]),
		}
		if item.StudentID == "" || item.Name == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}

	return rows, nil
}

// normalizeStudentID 去除空白以及数值单元格残留的 ".0"
func normalizeStudentID(v string) string {
	v = strings.TrimSpace(v)
	return strings.TrimSuffix(v, ".0")
}

// ────────────────────── ImportStudents ──────────────────────

// ImportStudents 逐行写入学生，每行独立提交
// 已存在的学号跳过计入 Duplicate，从不覆盖
func (s *studentService) ImportStudents(ctx context.Context, rows []ImportStudentRow, classID *uint) (*dto.ImportResult, error) {
	if err := s.checkClass(ctx, classID); err != nil {
		return nil, err
	}

	result := &dto.ImportResult{Total: len(rows)}

	for _, row := range rows {
		exists, err := s.repo.Student.Exists(ctx, row.StudentID)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportError{Row: row.Row, Reason: "查询学号失败"})
			s.logger.Error("导入学生查询失败", zap.Int("row", row.Row), zap.Error(err))
			continue
		}
		if exists {
			result.Duplicate++
			continue
		}

		student := &model.Student{StudentID: row.StudentID, Name: row.Name, ClassID: classID}
		if err := s.repo.Student.Create(ctx, student); err != nil {
			if pkgerrors.IsDuplicate(err) {
				result.Duplicate++
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportError{
				Row: row.Row, Reason: fmt.Sprintf("写入失败: %v", err),
			})
			s.logger.Error("导入学生写入失败", zap.Int("row", row.Row), zap.Error(err))
			continue
		}
		result.Success++
	}

	s.logger.Info("导入学生完成",
		zap.Int("total", result.Total),
		zap.Int("success", result.Success),
		zap.Int("duplicate", result.Duplicate),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// ── 内部辅助方法 ──

func applyStudentFields(student *model.Student, f *dto.StudentFields) {
	student.Name = strings.TrimSpace(f.Name)
	student.Gender = f.Gender
	student.BirthDate = f.BirthDate
	student.ClassID = f.ClassID
	student.AdmissionDate = f.AdmissionDate
	student.Contact = f.Contact
}

func toStudentResponse(st *model.Student) dto.StudentResponse {
	resp := dto.StudentResponse{
		StudentID:     st.StudentID,
		Name:          st.Name,
		Gender:        st.Gender,
		BirthDate:     st.BirthDate,
		ClassID:       st.ClassID,
		AdmissionDate: st.AdmissionDate,
		Contact:       st.Contact,
	}
	if st.Class != nil {
		resp.ClassName = st.Class.ClassName
	}
	return resp
}
