package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clareleo/Huaixu/internal/model"
)

// ScoreRepository 考试成绩数据访问接口
type ScoreRepository interface {
	// Upsert 按 (学号, 课程, 学期, 考试类型) 插入或覆盖分数
	Upsert(ctx context.Context, score *model.Score) error
	GetByID(ctx context.Context, id uint) (*model.Score, error)
	Delete(ctx context.Context, id uint) error
	// ListByCourseTerm 课程某学期的成绩，studentIDs 为空时返回全部
	ListByCourseTerm(ctx context.Context, courseID uint, term string, studentIDs []string) ([]model.Score, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Score, error)
}

type scoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo 创建 ScoreRepository 实例
func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Upsert(ctx context.Context, score *model.Score) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "course_id"}, {Name: "term"}, {Name: "exam_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(score).Error
}

func (r *scoreRepo) GetByID(ctx context.Context, id uint) (*model.Score, error) {
	var score model.Score
	if err := r.db.WithContext(ctx).Where("score_id = ?", id).First(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("score_id = ?", id).Delete(&model.Score{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scoreRepo) ListByCourseTerm(ctx context.Context, courseID uint, term string, studentIDs []string) ([]model.Score, error) {
	db := r.db.WithContext(ctx).Where("course_id = ? AND term = ?", courseID, term)
	if len(studentIDs) > 0 {
		db = db.Where("student_id IN ?", studentIDs)
	}
	var scores []model.Score
	err := db.Order("student_id, exam_type").Find(&scores).Error
	return scores, err
}

func (r *scoreRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Score, error) {
	var scores []model.Score
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("term DESC, course_id, exam_type").
		Find(&scores).Error
	return scores, err
}
