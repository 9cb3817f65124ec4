package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/grading"
	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
)

var (
	ErrReportSelectionRequired = errors.New("请选择具体的课程和班级")
)

// ReportService 成绩报表业务接口
type ReportService interface {
	Generate(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	cfg     *config.Config
	repo    *repository.Repository
	weights grading.Weights
	logger  *zap.Logger
}

// NewReportService 创建 ReportService 实例，权重取自 report 配置
func NewReportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{
		cfg:  cfg,
		repo: repo,
		weights: grading.Weights{
			Daily:     cfg.Report.DailyWeight,
			Midterm:   cfg.Report.MidtermWeight,
			Final:     cfg.Report.FinalWeight,
			Classroom: cfg.Report.ClassroomWeight,
		},
		logger: logger,
	}
}

func (s *reportService) Generate(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if req.CourseID == 0 || req.ClassID == 0 {
		return nil, ErrReportSelectionRequired
	}
	term := req.Term
	if term == "" {
		term = s.cfg.Report.DefaultTerm
	}

	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	class, err := s.repo.Class.GetByID(ctx, req.ClassID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	inputs, err := s.collectInputs(ctx, course.CourseID, class.ClassID, term)
	if err != nil {
		s.logger.Error("生成报表失败",
			zap.Uint("course_id", course.CourseID),
			zap.Uint("class_id", class.ClassID),
			zap.Error(err),
		)
		return nil, err
	}

	rows := grading.Build(s.weights, inputs)
	summary := grading.Summarize(rows)

	s.logger.Info("生成成绩报表",
		zap.String("course", course.CourseName),
		zap.String("class", class.ClassName),
		zap.String("term", term),
		zap.Int("students", len(rows)),
	)
	return &dto.ReportResponse{
		CourseID:   course.CourseID,
		CourseName: course.CourseName,
		ClassID:    class.ClassID,
		ClassName:  class.ClassName,
		Term:       term,
		Rows:       rows,
		Summary:    summary,
		StatsText:  StatsText(summary),
	}, nil
}

// collectInputs 汇总班级每个学生的各项成绩，按学号升序
func (s *reportService) collectInputs(ctx context.Context, courseID, classID uint, term string) ([]grading.Input, error) {
	students, err := s.repo.Student.ListByClasses(ctx, []uint{classID})
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return []grading.Input{}, nil
	}

	ids := make([]string, len(students))
	for i := range students {
		ids[i] = students[i].StudentID
	}
	scores, err := s.repo.Score.ListByCourseTerm(ctx, courseID, term, ids)
	if err != nil {
		return nil, err
	}
	activityCount, err := s.repo.Classroom.CountActivities(ctx, courseID, term)
	if err != nil {
		return nil, err
	}
	classroomScores, err := s.repo.Classroom.ListScoresByCourseTerm(ctx, courseID, term)
	if err != nil {
		return nil, err
	}

	inputs := make([]grading.Input, len(students))
	index := make(map[string]int, len(students))
	for i, st := range students {
		inputs[i] = grading.Input{StudentID: st.StudentID, Name: st.Name}
		index[st.StudentID] = i
	}

	for _, sc := range scores {
		i, ok := index[sc.StudentID]
		if !ok {
			continue
		}
		switch sc.ExamType {
		case model.ExamDaily:
			inputs[i].Daily = sc.Score
		case model.ExamMidterm:
			inputs[i].Midterm = sc.Score
		case model.ExamFinal:
			inputs[i].Final = sc.Score
		}
	}

	perStudent := make(map[string][]float64, len(students))
	for _, cs := range classroomScores {
		perStudent[cs.StudentID] = append(perStudent[cs.StudentID], cs.Score)
	}
	for i := range inputs {
		inputs[i].Classroom = grading.ClassroomComponent(perStudent[inputs[i].StudentID], int(activityCount))
	}
	return inputs, nil
}

// StatsText 报表底部的统计说明
func StatsText(sum grading.Summary) string {
	if !sum.HasData {
		return "暂无成绩数据"
	}
	return fmt.Sprintf("统计信息: 平均分 %.1f | 最高分 %.1f | 最低分 %.1f | 及格率 %.1f%% | 学生总数 %d",
		sum.Average, sum.Max, sum.Min, sum.PassRate, sum.StudentCount)
}
