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

// ── 班级模块业务错误 ──

var (
	ErrClassNotFound    = errors.New("班级不存在")
	ErrClassHasStudents = errors.New("班级下仍有学生，无法删除")
)

// ClassService 班级业务接口
type ClassService interface {
	List(ctx context.Context) ([]dto.ClassResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ClassResponse, error)
	Create(ctx context.Context, req *dto.ClassRequest) (*dto.ClassResponse, error)
	Update(ctx context.Context, id uint, req *dto.ClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id uint) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) List(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}

	list := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		n, err := s.repo.Class.CountStudents(ctx, classes[i].ClassID)
		if err != nil {
			return nil, err
		}
		list = append(list, toClassResponse(&classes[i], n))
	}
	return list, nil
}

func (s *classService) GetByID(ctx context.Context, id uint) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	n, err := s.repo.Class.CountStudents(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toClassResponse(class, n)
	return &resp, nil
}

func (s *classService) Create(ctx context.Context, req *dto.ClassRequest) (*dto.ClassResponse, error) {
	class := &model.Class{
		ClassName:   req.ClassName,
		Grade:       req.Grade,
		Major:       req.Major,
		Description: req.Description,
	}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("添加班级失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("添加班级", zap.String("class_name", class.ClassName))
	resp := toClassResponse(class, 0)
	return &resp, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *dto.ClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	class.ClassName = req.ClassName
	class.Grade = req.Grade
	class.Major = req.Major
	class.Description = req.Description
	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("更新班级失败", zap.Uint("class_id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrClassNotFound
		}
		return err
	}

	n, err := s.repo.Class.CountStudents(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrClassHasStudents
	}

	if err := s.repo.Class.Delete(ctx, id); err != nil {
		if pkgerrors.IsForeignKey(err) {
			return ErrResourceInUse
		}
		s.logger.Error("删除班级失败", zap.Uint("class_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除班级", zap.Uint("class_id", id))
	return nil
}

func toClassResponse(c *model.Class, studentCount int64) dto.ClassResponse {
	return dto.ClassResponse{
		ID:           c.ClassID,
		ClassName:    c.ClassName,
		Grade:        c.Grade,
		Major:        c.Major,
		Description:  c.Description,
		StudentCount: studentCount,
	}
}
