package dto

// ── 课堂活动模块 DTO ──

// ActivityListRequest 课堂活动查询参数
type ActivityListRequest struct {
	CourseID *uint  `form:"course_id" binding:"omitempty,min=1"`
	Term     string `form:"term"      binding:"omitempty,term"`
}

// CreateActivityRequest 创建课堂活动请求
type CreateActivityRequest struct {
	CourseID     uint     `json:"course_id"     binding:"required,min=1"`
	Term         string   `json:"term"          binding:"required,term"`
	ActivityDate string   `json:"activity_date" binding:"required,datetime=2006-01-02"`
	ActivityType string   `json:"activity_type" binding:"required,max=20"`
	Description  string   `json:"description"   binding:"omitempty,max=500"`
	MaxScore     *float64 `json:"max_score"     binding:"omitempty,gt=0,max=100"`
}

// ActivityResponse 课堂活动信息
type ActivityResponse struct {
	ID           uint    `json:"id"`
	CourseID     uint    `json:"course_id"`
	CourseName   string  `json:"course_name"`
	Term         string  `json:"term"`
	ActivityDate string  `json:"activity_date"`
	ActivityType string  `json:"activity_type"`
	Description  string  `json:"description"`
	MaxScore     float64 `json:"max_score"`
}

// ActivityStudentScore 活动详情中的学生得分，未评分为 0
type ActivityStudentScore struct {
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Comment   string  `json:"comment"`
	Scored    bool    `json:"scored"`
}

// ActivityDetailResponse 课堂活动详情
type ActivityDetailResponse struct {
	Activity ActivityResponse       `json:"activity"`
	Students []ActivityStudentScore `json:"students"`
}

// GradeActivityRequest 课堂评分请求
type GradeActivityRequest struct {
	StudentID string   `json:"student_id" binding:"required,max=20"`
	Score     *float64 `json:"score"      binding:"required,min=0,max=100"`
	Comment   string   `json:"comment"    binding:"omitempty,max=500"`
}
