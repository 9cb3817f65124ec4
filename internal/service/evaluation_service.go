package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
)

var (
	ErrEvaluationNotFound = errors.New("评价记录不存在")
)

// EvaluationService 学生评价业务接口
type EvaluationService interface {
	ListByStudent(ctx context.Context, studentID string) ([]dto.EvaluationResponse, error)
	// Create 评价人为当前登录用户
	Create(ctx context.Context, req *dto.CreateEvaluationRequest, evaluatorID uint) (*dto.EvaluationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type evaluationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEvaluationService 创建 EvaluationService 实例
func NewEvaluationService(repo *repository.Repository, logger *zap.Logger) EvaluationService {
	return &evaluationService{repo: repo, logger: logger}
}

func (s *evaluationService) ListByStudent(ctx context.Context, studentID string) ([]dto.EvaluationResponse, error) {
	exists, err := s.repo.Student.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	evals, err := s.repo.Evaluation.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询学生评价失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	list := make([]dto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		list = append(list, toEvaluationResponse(&evals[i]))
	}
	return list, nil
}

func (s *evaluationService) Create(ctx context.Context, req *dto.CreateEvaluationRequest, evaluatorID uint) (*dto.EvaluationResponse, error) {
	exists, err := s.repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	eval := &model.Evaluation{
		StudentID:   req.StudentID,
		EvalType:    req.EvalType,
		EvalContent: req.EvalContent,
		Score:       req.Score,
		EvaluatorID: &evaluatorID,
	}
	if err := s.repo.Evaluation.Create(ctx, eval); err != nil {
		s.logger.Error("添加评价失败", zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}
	if evaluator, err := s.repo.User.GetByID(ctx, evaluatorID); err == nil {
		eval.Evaluator = evaluator
	}

	s.logger.Info("添加评价",
		zap.Uint("eval_id", eval.EvalID),
		zap.String("student_id", eval.StudentID),
		zap.Uint("evaluator_id", evaluatorID),
	)
	resp := toEvaluationResponse(eval)
	return &resp, nil
}

func (s *evaluationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Evaluation.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrEvaluationNotFound
		}
		s.logger.Error("删除评价失败", zap.Uint("eval_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除评价", zap.Uint("eval_id", id))
	return nil
}

func toEvaluationResponse(e *model.Evaluation) dto.EvaluationResponse {
	resp := dto.EvaluationResponse{
		ID:          e.EvalID,
		StudentID:   e.StudentID,
		EvalType:    e.EvalType,
		EvalContent: e.EvalContent,
		Score:       e.Score,
		EvaluatorID: e.EvaluatorID,
		CreatedAt:   formatTime(e.CreatedAt),
	}
	if e.Evaluator != nil {
		resp.EvaluatorName = e.Evaluator.RealName
		if resp.EvaluatorName == "" {
			resp.EvaluatorName = e.Evaluator.Username
		}
	}
	return resp
}
