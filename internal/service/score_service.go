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

// ── 成绩模块业务错误 ──

var (
	ErrScoreNotFound = errors.New("成绩记录不存在")
)

// ScoreService 成绩录入业务接口
type ScoreService interface {
	Upsert(ctx context.Context, req *dto.ScoreRequest) (*dto.ScoreResponse, error)
	// BatchUpsert 同一事务内写入全部成绩，任一条失败整体回滚
	BatchUpsert(ctx context.Context, req *dto.BatchScoreRequest) (int, error)
	Delete(ctx context.Context, id uint) error
	GradeSheet(ctx context.Context, req *dto.GradeSheetRequest) (*dto.GradeSheetResponse, error)
}

type scoreService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService 创建 ScoreService 实例
func NewScoreService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{cfg: cfg, repo: repo, logger: logger}
}

func (s *scoreService) Upsert(ctx context.Context, req *dto.ScoreRequest) (*dto.ScoreResponse, error) {
	score, err := upsertScore(ctx, s.repo, req)
	if err != nil {
		if !errors.Is(err, ErrStudentNotFound) && !errors.Is(err, ErrCourseNotFound) {
			s.logger.Error("录入成绩失败", zap.String("student_id", req.StudentID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("更新成绩",
		zap.String("student_id", score.StudentID),
		zap.Uint("course_id", score.CourseID),
		zap.String("exam_type", score.ExamType),
		zap.Float64("score", score.Score),
	)
	return &dto.ScoreResponse{
		ID:        score.ScoreID,
		StudentID: score.StudentID,
		CourseID:  score.CourseID,
		Term:      score.Term,
		ExamType:  score.ExamType,
		Score:     score.Score,
	}, nil
}

func (s *scoreService) BatchUpsert(ctx context.Context, req *dto.BatchScoreRequest) (int, error) {
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		for i := range req.Scores {
			if _, err := upsertScore(ctx, txRepo, &req.Scores[i]); err != nil {
				return fmt.Errorf("第 %d 条成绩: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("批量录入成绩失败，已回滚", zap.Error(err))
		return 0, err
	}

	s.logger.Info("批量录入成绩", zap.Int("count", len(req.Scores)))
	return len(req.Scores), nil
}

func upsertScore(ctx context.Context, repo *repository.Repository, req *dto.ScoreRequest) (*model.Score, error) {
	exists, err := repo.Student.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}
	if _, err := repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	score := &model.Score{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Term:      req.Term,
		ExamType:  req.ExamType,
		Score:     *req.Score,
	}
	if err := repo.Score.Upsert(ctx, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *scoreService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Score.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrScoreNotFound
		}
		s.logger.Error("删除成绩失败", zap.Uint("score_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("删除成绩", zap.Uint("score_id", id))
	return nil
}

// GradeSheet 班级某课程某学期的成绩单
// 统计值基于已录入的全部成绩
func (s *scoreService) GradeSheet(ctx context.Context, req *dto.GradeSheetRequest) (*dto.GradeSheetResponse, error) {
	term := req.Term
	if term == "" {
		term = s.cfg.Report.DefaultTerm
	}

	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if isNotFound(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if isNotFound(err) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	students, err := s.repo.Student.ListByClasses(ctx, []uint{req.ClassID})
	if err != nil {
		s.logger.Error("查询班级学生失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.GradeSheetResponse{
		CourseID: req.CourseID,
		ClassID:  req.ClassID,
		Term:     term,
		Rows:     make([]dto.GradeSheetRow, 0, len(students)),
	}
	if len(students) == 0 {
		return resp, nil
	}

	ids := make([]string, len(students))
	for i := range students {
		ids[i] = students[i].StudentID
	}
	scores, err := s.repo.Score.ListByCourseTerm(ctx, req.CourseID, term, ids)
	if err != nil {
		s.logger.Error("查询成绩失败", zap.Error(err))
		return nil, err
	}

	byStudent := make(map[string]*dto.GradeSheetRow, len(students))
	for _, st := range students {
		resp.Rows = append(resp.Rows, dto.GradeSheetRow{StudentID: st.StudentID, Name: st.Name})
	}
	for i := range resp.Rows {
		byStudent[resp.Rows[i].StudentID] = &resp.Rows[i]
	}

	values := make([]float64, 0, len(scores))
	for _, sc := range scores {
		row, ok := byStudent[sc.StudentID]
		if !ok {
			continue
		}
		v := sc.Score
		switch sc.ExamType {
		case model.ExamDaily:
			row.Daily = &v
		case model.ExamMidterm:
			row.Midterm = &v
		case model.ExamFinal:
			row.Final = &v
		case model.ExamAssignment:
			row.Assignment = &v
		}
		values = append(values, v)
	}
	resp.Stats = scoreStats(values)

	return resp, nil
}

func scoreStats(values []float64) dto.ScoreStats {
	stats := dto.ScoreStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	var sum float64
	passed := 0
	stats.Max, stats.Min = values[0], values[0]
	for _, v := range values {
		sum += v
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
		if v >= 60 {
			passed++
		}
	}
	stats.Average = grading.Round2(sum / float64(len(values)))
	stats.PassRate = grading.Round2(float64(passed) / float64(len(values)) * 100)
	return stats
}
