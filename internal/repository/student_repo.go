package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
)

// StudentFilter 学生列表筛选条件
type StudentFilter struct {
	Keyword string // 姓名或学号模糊匹配
	ClassID *uint
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter StudentFilter, offset, limit int) ([]model.Student, int64, error)
	ListAll(ctx context.Context, filter StudentFilter) ([]model.Student, error)
	ListByClasses(ctx context.Context, classIDs []uint) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit("Class").Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Where("student_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *studentRepo) filtered(ctx context.Context, filter StudentFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Student{})
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		db = db.Where("name LIKE ? OR student_id LIKE ?", like, like)
	}
	if filter.ClassID != nil {
		db = db.Where("class_id = ?", *filter.ClassID)
	}
	return db
}

func (r *studentRepo) List(ctx context.Context, filter StudentFilter, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.filtered(ctx, filter).
		Preload("Class").
		Order("student_id").
		Offset(offset).Limit(limit).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *studentRepo) ListAll(ctx context.Context, filter StudentFilter) ([]model.Student, error) {
	var students []model.Student
	err := r.filtered(ctx, filter).Preload("Class").Order("student_id").Find(&students).Error
	return students, err
}

func (r *studentRepo) ListByClasses(ctx context.Context, classIDs []uint) ([]model.Student, error) {
	var students []model.Student
	if len(classIDs) == 0 {
		return students, nil
	}
	err := r.db.WithContext(ctx).
		Where("class_id IN ?", classIDs).
		Order("student_id").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit("Class").Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("student_id = ?", id).Delete(&model.Student{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
