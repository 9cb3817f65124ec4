package dto

// ── 成绩模块 DTO ──

// ScoreRequest 录入单条成绩请求
type ScoreRequest struct {
	StudentID string   `json:"student_id" binding:"required,max=20"`
	CourseID  uint     `json:"course_id"  binding:"required,min=1"`
	Term      string   `json:"term"       binding:"required,term"`
	ExamType  string   `json:"exam_type"  binding:"required,oneof=daily midterm final assignment"`
	Score     *float64 `json:"score"      binding:"required,min=0,max=100"`
}

// BatchScoreRequest 批量录入成绩请求（同一事务）
type BatchScoreRequest struct {
	Scores []ScoreRequest `json:"scores" binding:"required,min=1,max=500,dive"`
}

// ScoreResponse 成绩信息
type ScoreResponse struct {
	ID        uint    `json:"id"`
	StudentID string  `json:"student_id"`
	CourseID  uint    `json:"course_id"`
	Term      string  `json:"term"`
	ExamType  string  `json:"exam_type"`
	Score     float64 `json:"score"`
}

// GradeSheetRequest 成绩单查询参数
type GradeSheetRequest struct {
	CourseID uint   `form:"course_id" binding:"required,min=1"`
	ClassID  uint   `form:"class_id"  binding:"required,min=1"`
	Term     string `form:"term"      binding:"omitempty,term"`
}

// GradeSheetRow 成绩单中一名学生的各类成绩，未录入为 null
type GradeSheetRow struct {
	StudentID  string   `json:"student_id"`
	Name       string   `json:"name"`
	Daily      *float64 `json:"daily"`
	Midterm    *float64 `json:"midterm"`
	Final      *float64 `json:"final"`
	Assignment *float64 `json:"assignment"`
}

// ScoreStats 已录入成绩的统计
type ScoreStats struct {
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
	Max      float64 `json:"max"`
	Min      float64 `json:"min"`
	PassRate float64 `json:"pass_rate"`
}

// GradeSheetResponse 成绩单
type GradeSheetResponse struct {
	CourseID uint            `json:"course_id"`
	ClassID  uint            `json:"class_id"`
	Term     string          `json:"term"`
	Rows     []GradeSheetRow `json:"rows"`
	Stats    ScoreStats      `json:"stats"`
}
