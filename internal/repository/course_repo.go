package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("course_id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Order("course_id").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("course_id = ?", id).Delete(&model.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ── 授课安排 ──

// CourseClassFilter 授课安排筛选条件
type CourseClassFilter struct {
	CourseID *uint
	ClassID  *uint
	Term     string
}

// CourseClassRepository 授课安排数据访问接口
type CourseClassRepository interface {
	Create(ctx context.Context, cc *model.CourseClass) error
	GetByID(ctx context.Context, id uint) (*model.CourseClass, error)
	List(ctx context.Context, filter CourseClassFilter) ([]model.CourseClass, error)
	Delete(ctx context.Context, id uint) error
	// ClassIDsByCourse 课程关联的班级；term 为空时不按学期过滤
	ClassIDsByCourse(ctx context.Context, courseID uint, term string) ([]uint, error)
}

type courseClassRepo struct {
	db *gorm.DB
}

// NewCourseClassRepo 创建 CourseClassRepository 实例
func NewCourseClassRepo(db *gorm.DB) CourseClassRepository {
	return &courseClassRepo{db: db}
}

func (r *courseClassRepo) Create(ctx context.Context, cc *model.CourseClass) error {
	return r.db.WithContext(ctx).Omit("Course", "Class", "Teacher").Create(cc).Error
}

func (r *courseClassRepo) GetByID(ctx context.Context, id uint) (*model.CourseClass, error) {
	var cc model.CourseClass
	err := r.db.WithContext(ctx).
		Preload("Course").Preload("Class").Preload("Teacher").
		Where("id = ?", id).
		First(&cc).Error
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *courseClassRepo) List(ctx context.Context, filter CourseClassFilter) ([]model.CourseClass, error) {
	db := r.db.WithContext(ctx).Model(&model.CourseClass{})
	if filter.CourseID != nil {
		db = db.Where("course_id = ?", *filter.CourseID)
	}
	if filter.ClassID != nil {
		db = db.Where("class_id = ?", *filter.ClassID)
	}
	if filter.Term != "" {
		db = db.Where("term = ?", filter.Term)
	}

	var list []model.CourseClass
	err := db.Preload("Course").Preload("Class").Preload("Teacher").
		Order("term DESC, course_id, class_id").
		Find(&list).Error
	return list, err
}

func (r *courseClassRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourseClass{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseClassRepo) ClassIDsByCourse(ctx context.Context, courseID uint, term string) ([]uint, error) {
	db := r.db.WithContext(ctx).Model(&model.CourseClass{}).Where("course_id = ?", courseID)
	if term != "" {
		db = db.Where("term = ?", term)
	}
	var ids []uint
	err := db.Distinct().Order("class_id").Pluck("class_id", &ids).Error
	return ids, err
}
