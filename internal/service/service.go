package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/pkg/jwt"
)

// ── 通用业务错误 ──

var (
	// ErrResourceInUse 记录仍被其他数据引用
	ErrResourceInUse = errors.New("数据仍被引用，无法删除")
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Class       ClassService
	Student     StudentService
	Course      CourseService
	CourseClass CourseClassService
	Score       ScoreService
	Classroom   ClassroomService
	Calendar    CalendarService
	Assignment  AssignmentService
	Evaluation  EvaluationService
	Report      ReportService
	Export      ExportService
}

// NewService 创建 Service 聚合
// revoker 为 nil 时登出不写黑名单
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) *Service {
	report := NewReportService(cfg, repo, logger)
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, revoker, logger),
		User:        NewUserService(repo, logger),
		Class:       NewClassService(repo, logger),
		Student:     NewStudentService(repo, logger),
		Course:      NewCourseService(repo, logger),
		CourseClass: NewCourseClassService(repo, logger),
		Score:       NewScoreService(cfg, repo, logger),
		Classroom:   NewClassroomService(repo, logger),
		Calendar:    NewCalendarService(repo, logger),
		Assignment:  NewAssignmentService(cfg, repo, logger),
		Evaluation:  NewEvaluationService(repo, logger),
		Report:      report,
		Export:      NewExportService(repo, report, logger),
	}
}

// ── 内部辅助方法 ──

const timeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
