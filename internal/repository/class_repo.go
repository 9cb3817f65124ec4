package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id uint) error
	CountStudents(ctx context.Context, id uint) (int64, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Where("class_id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).Order("class_name, class_id").Find(&classes).Error
	return classes, err
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("class_id = ?", id).Delete(&model.Class{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *classRepo) CountStudents(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Where("class_id = ?", id).Count(&n).Error
	return n, err
}
