package dto

import "github.com/clareleo/Huaixu/internal/grading"

// ── 成绩报表 DTO ──

// ReportRequest 报表查询参数
// 课程与班级必选，学期缺省时使用 report.default_term
type ReportRequest struct {
	CourseID uint   `form:"course_id" binding:"omitempty,min=1"`
	ClassID  uint   `form:"class_id"  binding:"omitempty,min=1"`
	Term     string `form:"term"      binding:"omitempty,term"`
}

// ReportResponse 成绩报表
type ReportResponse struct {
	CourseID   uint            `json:"course_id"`
	CourseName string          `json:"course_name"`
	ClassID    uint            `json:"class_id"`
	ClassName  string          `json:"class_name"`
	Term       string          `json:"term"`
	Rows       []grading.Row   `json:"rows"`
	Summary    grading.Summary `json:"summary"`
	StatsText  string          `json:"stats_text"`
}
