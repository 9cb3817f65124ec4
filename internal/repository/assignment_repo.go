package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/model"
)

// AssignmentRepository 作业文件夹与提交记录数据访问接口
type AssignmentRepository interface {
	CreateFolder(ctx context.Context, folder *model.AssignmentFolder) error
	GetFolder(ctx context.Context, id uint) (*model.AssignmentFolder, error)
	ListFolders(ctx context.Context, courseID *uint) ([]model.AssignmentFolder, error)
	DeleteFolder(ctx context.Context, id uint) error

	ListSubmissions(ctx context.Context, folderID uint) ([]model.AssignmentSubmission, error)
	GetSubmission(ctx context.Context, folderID uint, studentID string) (*model.AssignmentSubmission, error)
	CreateSubmission(ctx context.Context, sub *model.AssignmentSubmission) error
	UpdateSubmission(ctx context.Context, sub *model.AssignmentSubmission) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) CreateFolder(ctx context.Context, folder *model.AssignmentFolder) error {
	return r.db.WithContext(ctx).Omit("Course").Create(folder).Error
}

func (r *assignmentRepo) GetFolder(ctx context.Context, id uint) (*model.AssignmentFolder, error) {
	var folder model.AssignmentFolder
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("folder_id = ?", id).
		First(&folder).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *assignmentRepo) ListFolders(ctx context.Context, courseID *uint) ([]model.AssignmentFolder, error) {
	db := r.db.WithContext(ctx).Model(&model.AssignmentFolder{})
	if courseID != nil {
		db = db.Where("course_id = ?", *courseID)
	}
	var folders []model.AssignmentFolder
	err := db.Preload("Course").Order("created_at DESC, folder_id DESC").Find(&folders).Error
	return folders, err
}

func (r *assignmentRepo) DeleteFolder(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("folder_id = ?", id).Delete(&model.AssignmentFolder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *assignmentRepo) ListSubmissions(ctx context.Context, folderID uint) ([]model.AssignmentSubmission, error) {
	var subs []model.AssignmentSubmission
	err := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("student_id").
		Find(&subs).Error
	return subs, err
}

func (r *assignmentRepo) GetSubmission(ctx context.Context, folderID uint, studentID string) (*model.AssignmentSubmission, error) {
	var sub model.AssignmentSubmission
	err := r.db.WithContext(ctx).
		Where("folder_id = ? AND student_id = ?", folderID, studentID).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *assignmentRepo) CreateSubmission(ctx context.Context, sub *model.AssignmentSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *assignmentRepo) UpdateSubmission(ctx context.Context, sub *model.AssignmentSubmission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
