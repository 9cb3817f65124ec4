package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound      = errors.New("课程不存在")
	ErrCourseClassNotFound = errors.New("授课安排不存在")
	ErrCourseClassExists   = errors.New("该课程本学期已安排到该班级")
	ErrTeacherInvalid      = errors.New("指定的教师不存在或不是教师角色")
)

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id uint, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}
	list := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		list = append(list, toCourseResponse(&courses[i]))
	}
	return list, nil
}

func (s *courseService) GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{
		CourseName:  req.CourseName,
		Credit:      req.Credit,
		CourseType:  req.CourseType,
		Description: req.Description,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("添加课程失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("添加课程", zap.String("course_name", course.CourseName))
	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	course.CourseName = req.CourseName
	course.Credit = req.Credit
	course.CourseType = req.CourseType
	course.Description = req.Description
	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.Uint("course_id", id), zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		switch {
		case isNotFound(err):
			return ErrCourseNotFound
		case pkgerrors.IsForeignKey(err):
			return ErrResourceInUse
		}
		s.logger.Error("删除课程失败", zap.Uint("course_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除课程", zap.Uint("course_id", id))
	return nil
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          c.CourseID,
		CourseName:  c.CourseName,
		Credit:      c.Credit,
		CourseType:  c.CourseType,
		Description: c.Description,
	}
}

// ═══════════════════════════════════════════════════════════
// 授课安排
// ═══════════════════════════════════════════════════════════

// CourseClassService 授课安排业务接口
type CourseClassService interface {
	List(ctx context.Context, req *dto.CourseClassListRequest) ([]dto.CourseClassResponse, error)
	Create(ctx context.Context, req *dto.CreateCourseClassRequest) (*dto.CourseClassResponse, error)
	Delete(ctx context.Context, id uint) error
}

type courseClassService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseClassService 创建 CourseClassService 实例
func NewCourseClassService(repo *repository.Repository, logger *zap.Logger) CourseClassService {
	return &courseClassService{repo: repo, logger: logger}
}

func (s *courseClassService) List(ctx context.Context, req *dto.CourseClassListRequest) ([]dto.CourseClassResponse, error) {
	items, err := s.repo.CourseClass.List(ctx, repository.CourseClassFilter{
		CourseID: req.CourseID,
		ClassID:  req.ClassID,
		Term:     req.Term,
	})
	if err != nil {
		s.logger.Error("查询授课安排失败", zap.Error(err))
		return nil, err
	}

	list := make([]dto.CourseClassResponse, 0, len(items))
	for i := range items {
		list = append(list, toCourseClassResponse(&items[i]))
	}
	return list, nil
}

func (s *courseClassService) Create(ctx context.Context, req *dto.CreateCourseClassRequest) (*dto.CourseClassResponse, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if isNotFound(err) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if req.TeacherID != nil {
		teacher, err := s.repo.User.GetByID(ctx, *req.TeacherID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrTeacherInvalid
			}
			return nil, err
		}
		if teacher.Role != model.RoleTeacher {
			return nil, ErrTeacherInvalid
		}
	}

	cc := &model.CourseClass{
		CourseID:  req.CourseID,
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		Term:      req.Term,
	}
	if err := s.repo.CourseClass.Create(ctx, cc); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrCourseClassExists
		}
		s.logger.Error("添加授课安排失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("添加授课安排",
		zap.Uint("course_id", cc.CourseID),
		zap.Uint("class_id", cc.ClassID),
		zap.String("term", cc.Term),
	)

	created, err := s.repo.CourseClass.GetByID(ctx, cc.ID)
	if err != nil {
		return nil, err
	}
	resp := toCourseClassResponse(created)
	return &resp, nil
}

func (s *courseClassService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.CourseClass.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrCourseClassNotFound
		}
		s.logger.Error("删除授课安排失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除授课安排", zap.Uint("id", id))
	return nil
}

func toCourseClassResponse(cc *model.CourseClass) dto.CourseClassResponse {
	resp := dto.CourseClassResponse{
		ID:        cc.ID,
		CourseID:  cc.CourseID,
		ClassID:   cc.ClassID,
		TeacherID: cc.TeacherID,
		Term:      cc.Term,
	}
	if cc.Course != nil {
		resp.CourseName = cc.Course.CourseName
	}
	if cc.Class != nil {
		resp.ClassName = cc.Class.ClassName
	}
	if cc.Teacher != nil {
		resp.TeacherName = cc.Teacher.RealName
		if resp.TeacherName == "" {
			resp.TeacherName = cc.Teacher.Username
		}
	}
	return resp
}
