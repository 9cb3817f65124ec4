package dto

// ── 课程模块 DTO ──

// CourseRequest 创建 / 更新课程请求
type CourseRequest struct {
	CourseName  string  `json:"course_name" binding:"required,max=100"`
	Credit      float64 `json:"credit"      binding:"required,min=0.5,max=10"`
	CourseType  string  `json:"course_type" binding:"required,oneof=required elective"`
	Description string  `json:"description" binding:"omitempty,max=500"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID          uint    `json:"id"`
	CourseName  string  `json:"course_name"`
	Credit      float64 `json:"credit"`
	CourseType  string  `json:"course_type"`
	Description string  `json:"description"`
}

// ── 授课安排 DTO ──

// CourseClassListRequest 授课安排查询参数
type CourseClassListRequest struct {
	CourseID *uint  `form:"course_id" binding:"omitempty,min=1"`
	ClassID  *uint  `form:"class_id"  binding:"omitempty,min=1"`
	Term     string `form:"term"      binding:"omitempty,term"`
}

// CreateCourseClassRequest 创建授课安排请求
type CreateCourseClassRequest struct {
	CourseID  uint   `json:"course_id"  binding:"required,min=1"`
	ClassID   uint   `json:"class_id"   binding:"required,min=1"`
	TeacherID *uint  `json:"teacher_id" binding:"omitempty,min=1"`
	Term      string `json:"term"       binding:"required,term"`
}

// CourseClassResponse 授课安排信息
type CourseClassResponse struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	CourseName  string `json:"course_name"`
	ClassID     uint   `json:"class_id"`
	ClassName   string `json:"class_name"`
	TeacherID   *uint  `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	Term        string `json:"term"`
}
