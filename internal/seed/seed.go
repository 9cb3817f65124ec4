// Package seed 启动时写入初始数据
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
)

// SeedAdmin 确保初始管理员账号存在
// 已存在同名用户时不做任何修改，返回 false
func SeedAdmin(ctx context.Context, repo *repository.Repository, cfg config.SeedConfig, logger *zap.Logger) (bool, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.Warn("未配置初始管理员账号，跳过")
		return false, nil
	}

	_, err := repo.User.GetByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("查询初始管理员失败: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("生成密码哈希失败: %w", err)
	}

	admin := &model.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		RealName:     "系统管理员",
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return false, nil
		}
		return false, fmt.Errorf("创建初始管理员失败: %w", err)
	}

	logger.Info("已创建初始管理员", zap.String("username", admin.Username))
	return true, nil
}
