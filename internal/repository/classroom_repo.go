package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clareleo/Huaixu/internal/model"
)

// ActivityFilter 课堂活动筛选条件
type ActivityFilter struct {
	CourseID *uint
	Term     string
}

// ClassroomRepository 课堂活动与得分数据访问接口
type ClassroomRepository interface {
	CreateActivity(ctx context.Context, activity *model.ClassroomActivity) error
	GetActivity(ctx context.Context, id uint) (*model.ClassroomActivity, error)
	ListActivities(ctx context.Context, filter ActivityFilter) ([]model.ClassroomActivity, error)
	DeleteActivity(ctx context.Context, id uint) error
	CountActivities(ctx context.Context, courseID uint, term string) (int64, error)

	// UpsertScore 按 (活动, 学号) 插入或覆盖得分与评语
	UpsertScore(ctx context.Context, score *model.ClassroomScore) error
	ListScoresByActivity(ctx context.Context, activityID uint) ([]model.ClassroomScore, error)
	// ListScoresByCourseTerm 某课程某学期全部活动的得分
	ListScoresByCourseTerm(ctx context.Context, courseID uint, term string) ([]model.ClassroomScore, error)
}

type classroomRepo struct {
	db *gorm.DB
}

// NewClassroomRepo 创建 ClassroomRepository 实例
func NewClassroomRepo(db *gorm.DB) ClassroomRepository {
	return &classroomRepo{db: db}
}

func (r *classroomRepo) CreateActivity(ctx context.Context, activity *model.ClassroomActivity) error {
	return r.db.WithContext(ctx).Omit("Course").Create(activity).Error
}

func (r *classroomRepo) GetActivity(ctx context.Context, id uint) (*model.ClassroomActivity, error) {
	var activity model.ClassroomActivity
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("activity_id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *classroomRepo) ListActivities(ctx context.Context, filter ActivityFilter) ([]model.ClassroomActivity, error) {
	db := r.db.WithContext(ctx).Model(&model.ClassroomActivity{})
	if filter.CourseID != nil {
		db = db.Where("course_id = ?", *filter.CourseID)
	}
	if filter.Term != "" {
		db = db.Where("term = ?", filter.Term)
	}

	var activities []model.ClassroomActivity
	err := db.Preload("Course").
		Order("activity_date DESC, activity_id DESC").
		Find(&activities).Error
	return activities, err
}

func (r *classroomRepo) DeleteActivity(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("activity_id = ?", id).Delete(&model.ClassroomActivity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *classroomRepo) CountActivities(ctx context.Context, courseID uint, term string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ClassroomActivity{}).
		Where("course_id = ? AND term = ?", courseID, term).
		Count(&n).Error
	return n, err
}

func (r *classroomRepo) UpsertScore(ctx context.Context, score *model.ClassroomScore) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "activity_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "comment"}),
	}).Create(score).Error
}

func (r *classroomRepo) ListScoresByActivity(ctx context.Context, activityID uint) ([]model.ClassroomScore, error) {
	var scores []model.ClassroomScore
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("student_id").
		Find(&scores).Error
	return scores, err
}

func (r *classroomRepo) ListScoresByCourseTerm(ctx context.Context, courseID uint, term string) ([]model.ClassroomScore, error) {
	var scores []model.ClassroomScore
	err := r.db.WithContext(ctx).
		Joins("JOIN classroom_activities ca ON ca.activity_id = classroom_scores.activity_id").
		Where("ca.course_id = ? AND ca.term = ?", courseID, term).
		Order("classroom_scores.student_id, classroom_scores.activity_id").
		Find(&scores).Error
	return scores, err
}
