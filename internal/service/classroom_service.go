package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
)

// ── 课堂活动模块业务错误 ──

var (
	ErrActivityNotFound = errors.New("课堂活动不存在")
	ErrActivityDate     = errors.New("活动日期格式错误，应为 YYYY-MM-DD")
	ErrActivityOverMax  = errors.New("得分超过活动满分")
)

const defaultActivityMaxScore = 100

// ClassroomService 课堂活动业务接口
type ClassroomService interface {
	List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, error)
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, id uint) error
	// Detail 活动信息及关联班级全部学生的得分，未评分记为 0
	Detail(ctx context.Context, id uint) (*dto.ActivityDetailResponse, error)
	Grade(ctx context.Context, id uint, req *dto.GradeActivityRequest) error
}

type classroomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassroomService 创建 ClassroomService 实例
func NewClassroomService(repo *repository.Repository, logger *zap.Logger) ClassroomService {
	return &classroomService{repo: repo, logger: logger}
}

func (s *classroomService) List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Classroom.ListActivities(ctx, repository.ActivityFilter{
		CourseID: req.CourseID,
		Term:     req.Term,
	})
	if err != nil {
		s.logger.Error("查询课堂活动失败", zap.Error(err))
		return nil, err
	}

	list := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		list = append(list, toActivityResponse(&activities[i]))
	}
	return list, nil
}

func (s *classroomService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	date, err := time.ParseInLocation(dateLayout, req.ActivityDate, time.Local)
	if err != nil {
		return nil, ErrActivityDate
	}

	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	maxScore := float64(defaultActivityMaxScore)
	if req.MaxScore != nil {
		maxScore = *req.MaxScore
	}

	activity := &model.ClassroomActivity{
		CourseID:     req.CourseID,
		Term:         req.Term,
		ActivityDate: date,
		ActivityType: req.ActivityType,
		Description:  req.Description,
		MaxScore:     maxScore,
	}
	if err := s.repo.Classroom.CreateActivity(ctx, activity); err != nil {
		s.logger.Error("添加课堂活动失败", zap.Error(err))
		return nil, err
	}
	activity.Course = course

	s.logger.Info("添加课堂活动",
		zap.Uint("activity_id", activity.ActivityID),
		zap.String("course", course.CourseName),
		zap.String("type", activity.ActivityType),
	)
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *classroomService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Classroom.DeleteActivity(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrActivityNotFound
		}
		s.logger.Error("删除课堂活动失败", zap.Uint("activity_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除课堂活动", zap.Uint("activity_id", id))
	return nil
}

func (s *classroomService) Detail(ctx context.Context, id uint) (*dto.ActivityDetailResponse, error) {
	activity, err := s.repo.Classroom.GetActivity(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	classIDs, err := s.repo.CourseClass.ClassIDsByCourse(ctx, activity.CourseID, activity.Term)
	if err != nil {
		return nil, err
	}
	students, err := s.repo.Student.ListByClasses(ctx, classIDs)
	if err != nil {
		return nil, err
	}
	scores, err := s.repo.Classroom.ListScoresByActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]model.ClassroomScore, len(scores))
	for _, sc := range scores {
		byStudent[sc.StudentID] = sc
	}

	resp := &dto.ActivityDetailResponse{
		Activity: toActivityResponse(activity),
		Students: make([]dto.ActivityStudentScore, 0, len(students)),
	}
	for _, st := range students {
		row := dto.ActivityStudentScore{StudentID: st.StudentID, Name: st.Name}
		if sc, ok := byStudent[st.StudentID]; ok {
			row.Score = sc.Score
			row.Comment = sc.Comment
			row.Scored = true
		}
		resp.Students = append(resp.Students, row)
	}
	return resp, nil
}

func (s *classroomService) Grade(ctx context.Context, id uint, req *dto.GradeActivityRequest) error {
	activity, err := s.repo.Classroom.GetActivity(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrActivityNotFound
		}
		return err
	}
	if *req.Score > activity.MaxScore {
		return ErrActivityOverMax
	}
	exists, err := s.repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrStudentNotFound
	}

	score := &model.ClassroomScore{
		ActivityID: id,
		StudentID:  req.StudentID,
		Score:      *req.Score,
		Comment:    req.Comment,
	}
	if err := s.repo.Classroom.UpsertScore(ctx, score); err != nil {
		s.logger.Error("保存课堂评分失败", zap.Uint("activity_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("保存课堂评分",
		zap.Uint("activity_id", id),
		zap.String("student_id", req.StudentID),
		zap.Float64("score", *req.Score),
	)
	return nil
}

func toActivityResponse(a *model.ClassroomActivity) dto.ActivityResponse {
	resp := dto.ActivityResponse{
		ID:           a.ActivityID,
		CourseID:     a.CourseID,
		Term:         a.Term,
		ActivityDate: a.ActivityDate.Format(dateLayout),
		ActivityType: a.ActivityType,
		Description:  a.Description,
		MaxScore:     a.MaxScore,
	}
	if a.Course != nil {
		resp.CourseName = a.Course.CourseName
	}
	return resp
}
