package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User        UserRepository
	Class       ClassRepository
	Student     StudentRepository
	Course      CourseRepository
	CourseClass CourseClassRepository
	Score       ScoreRepository
	Classroom   ClassroomRepository
	Assignment  AssignmentRepository
	Evaluation  EvaluationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Class:       NewClassRepo(db),
		Student:     NewStudentRepo(db),
		Course:      NewCourseRepo(db),
		CourseClass: NewCourseClassRepo(db),
		Score:       NewScoreRepo(db),
		Classroom:   NewClassroomRepo(db),
		Assignment:  NewAssignmentRepo(db),
		Evaluation:  NewEvaluationRepo(db),
	}
}

// BeginTx 开启事务
// 未绑定数据库（单元测试中的 mock 聚合）时返回 nil
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到事务连接的 Repository 聚合
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}

// Transaction 在同一事务内执行 fn，fn 返回错误时整体回滚
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
