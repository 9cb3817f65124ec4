package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrWrongPassword      = errors.New("原密码错误")
)

// 功能模块
const (
	ScreenStudents    = "students"
	ScreenClasses     = "classes"
	ScreenCourses     = "courses"
	ScreenGrades      = "grades"
	ScreenAssignments = "assignments"
	ScreenClassroom   = "classroom"
	ScreenReports     = "reports"
	ScreenSettings    = "settings"
)

// ScreensFor 角色可用的功能模块
func ScreensFor(role string) []string {
	switch role {
	case model.RoleAdmin:
		return []string{ScreenStudents, ScreenClasses, ScreenCourses, ScreenGrades,
			ScreenAssignments, ScreenClassroom, ScreenReports, ScreenSettings}
	case model.RoleTeacher:
		return []string{ScreenStudents, ScreenClasses, ScreenCourses, ScreenGrades,
			ScreenAssignments, ScreenClassroom, ScreenReports}
	case model.RoleStudent:
		return []string{ScreenReports}
	default:
		return []string{}
	}
}

// TokenRevoker Token 黑名单写入接口（Redis 实现）
type TokenRevoker interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uint) (*dto.MeResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg     *config.Config
	repo    *repository.Repository
	jwtMgr  *jwt.Manager
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:     cfg,
		repo:    repo,
		jwtMgr:  jwtMgr,
		revoker: revoker,
		logger:  logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("登录失败：用户不存在", zap.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("登录失败：密码错误", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username, user.Role)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户登录", zap.String("username", user.Username), zap.String("role", user.Role))

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:        toUserResponse(user),
		Screens:     ScreensFor(user.Role),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.MeResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &dto.MeResponse{
		User:    toUserResponse(user),
		Screens: ScreensFor(user.Role),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.revoker == nil || claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.revoker.BlacklistToken(ctx, claims.ID, s.jwtMgr.RevokeTTL(claims)); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.String("jti", claims.ID), zap.Error(err))
		return err
	}
	s.logger.Info("用户登出", zap.String("username", claims.Username))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}
	if err := s.repo.User.UpdatePassword(ctx, userID, hash); err != nil {
		s.logger.Error("更新密码失败", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("用户修改密码", zap.String("username", user.Username))
	return nil
}
