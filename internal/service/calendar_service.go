package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/clareleo/Huaixu/internal/model"
	"github.com/clareleo/Huaixu/internal/repository"
)

// ── 课堂活动日历导出 ──

const calendarProductID = "-//Huaixu//Grade Management//CN"

// CalendarService 课堂活动 iCalendar 导出
type CalendarService interface {
	// ExportActivities 导出某课程（可选学期）的全部课堂活动为全天事件
	ExportActivities(ctx context.Context, courseID uint, term string) ([]byte, string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) ExportActivities(ctx context.Context, courseID uint, term string) ([]byte, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrCourseNotFound
		}
		return nil, "", err
	}

	activities, err := s.repo.Classroom.ListActivities(ctx, repository.ActivityFilter{
		CourseID: &courseID,
		Term:     term,
	})
	if err != nil {
		s.logger.Error("查询课堂活动失败", zap.Error(err))
		return nil, "", err
	}

	cal := buildActivityCalendar(course, activities, time.Now())

	filename := course.CourseName + "_课堂活动.ics"
	if term != "" {
		filename = fmt.Sprintf("%s_%s_课堂活动.ics", course.CourseName, term)
	}

	s.logger.Info("导出课堂活动日历",
		zap.Uint("course_id", courseID),
		zap.Int("count", len(activities)),
	)
	return []byte(cal.Serialize()), filename, nil
}

func buildActivityCalendar(course *model.Course, activities []model.ClassroomActivity, stamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)
	cal.SetXWRCalName(course.CourseName + " 课堂活动")

	for _, a := range activities {
		event := cal.AddEvent(fmt.Sprintf("activity-%d@huaixu", a.ActivityID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(a.ActivityDate)
		event.SetAllDayEndAt(a.ActivityDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s · %s", course.CourseName, a.ActivityType))
		desc := fmt.Sprintf("学期: %s\n满分: %.1f", a.Term, a.MaxScore)
		if a.Description != "" {
			desc = a.Description + "\n" + desc
		}
		event.SetDescription(desc)
		event.AddProperty(ics.ComponentPropertyCategories, a.ActivityType)
	}
	return cal
}
