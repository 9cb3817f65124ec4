package model

import "time"

// Timestamps 通用时间字段（由 GORM 自动维护）
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// ── 枚举值 ──

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// 学生性别
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// 课程类型
const (
	CourseTypeRequired = "required"
	CourseTypeElective = "elective"
)

// 考试类型
const (
	ExamDaily      = "daily"
	ExamMidterm    = "midterm"
	ExamFinal      = "final"
	ExamAssignment = "assignment"
)

// 作业提交状态
const (
	SubmissionNotSubmitted = "not_submitted"
	SubmissionSubmitted    = "submitted"
	SubmissionGraded       = "graded"
)

// GenderLabel 性别中文名
func GenderLabel(g string) string {
	switch g {
	case GenderMale:
		return "男"
	case GenderFemale:
		return "女"
	case GenderOther:
		return "其他"
	default:
		return ""
	}
}

// CourseTypeLabel 课程类型中文名
func CourseTypeLabel(t string) string {
	switch t {
	case CourseTypeRequired:
		return "必修"
	case CourseTypeElective:
		return "选修"
	default:
		return ""
	}
}
