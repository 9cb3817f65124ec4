package errors

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate 唯一约束冲突
	ErrDuplicate = errors.New("记录已存在")
	// ErrForeignKey 外键约束冲突：引用的记录不存在或仍被引用
	ErrForeignKey = errors.New("关联数据约束冲突")
	// ErrConstraint 取值违反 CHECK / NOT NULL 约束
	ErrConstraint = errors.New("数据不满足约束条件")
)

// Translate 将 SQLite 引擎错误转换为领域错误
// 无法识别的错误原样返回
func Translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	}

	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) {
		return err
	}
	if sqErr.Code != sqlite3.ErrConstraint {
		return err
	}

	switch sqErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrDuplicate
	case sqlite3.ErrConstraintForeignKey:
		return ErrForeignKey
	default:
		return ErrConstraint
	}
}

// IsDuplicate 判断是否为唯一约束冲突
func IsDuplicate(err error) bool {
	return errors.Is(Translate(err), ErrDuplicate)
}

// IsForeignKey 判断是否为外键约束冲突
func IsForeignKey(err error) bool {
	return errors.Is(Translate(err), ErrForeignKey)
}
