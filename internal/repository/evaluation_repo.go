package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
)

// EvaluationRepository 学生评价数据访问接口
type EvaluationRepository interface {
	Create(ctx context.Context, eval *model.Evaluation) error
	GetByID(ctx context.Context, id uint) (*model.Evaluation, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Evaluation, error)
	Delete(ctx context.Context, id uint) error
}

type evaluationRepo struct {
	db *gorm.DB
}

// NewEvaluationRepo 创建 EvaluationRepository 实例
func NewEvaluationRepo(db *gorm.DB) EvaluationRepository {
	return &evaluationRepo{db: db}
}

func (r *evaluationRepo) Create(ctx context.Context, eval *model.Evaluation) error {
	return r.db.WithContext(ctx).Omit("Evaluator").Create(eval).Error
}

func (r *evaluationRepo) GetByID(ctx context.Context, id uint) (*model.Evaluation, error) {
	var eval model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Evaluator").
		Where("eval_id = ?", id).
		First(&eval).Error
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

func (r *evaluationRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Evaluation, error) {
	var evals []model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Evaluator").
		Where("student_id = ?", studentID).
		Order("created_at DESC, eval_id DESC").
		Find(&evals).Error
	return evals, err
}

func (r *evaluationRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("eval_id = ?", id).Delete(&model.Evaluation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
