package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	pkgerrors "github.com/clareleo/Huaixu/pkg/errors"
)

// ── 用户模块业务错误 ──

var (
	ErrUsernameExists = errors.New("用户名已存在")
	ErrUserSelfDelete = errors.New("不能删除自己")
)

// UserService 用户管理业务接口（系统设置）
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint, callerID uint) error
	ResetPassword(ctx context.Context, id uint, newPassword string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}
	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}
	return list, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		RealName:     req.RealName,
		Email:        req.Email,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if pkgerrors.IsDuplicate(err) {
			return nil, ErrUsernameExists
		}
		s.logger.Error("添加用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("添加用户", zap.String("username", user.Username), zap.String("role", user.Role))
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uint, callerID uint) error {
	if id == callerID {
		return ErrUserSelfDelete
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		switch {
		case isNotFound(err):
			return ErrUserNotFound
		case pkgerrors.IsForeignKey(err):
			return ErrResourceInUse
		}
		s.logger.Error("删除用户失败", zap.Uint("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除用户", zap.Uint("user_id", id))
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, id uint, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	if err := s.repo.User.UpdatePassword(ctx, id, hash); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		s.logger.Error("重置密码失败", zap.Uint("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("重置用户密码", zap.Uint("user_id", id))
	return nil
}

// toUserResponse 将 model.User 转换为 dto.UserResponse
func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		RealName:  user.RealName,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
	}
}
