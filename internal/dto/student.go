package dto

// ── 学生模块 DTO ──

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword"  binding:"omitempty,max=50"`
	ClassID *uint  `form:"class_id" binding:"omitempty,min=1"`
}

// CreateStudentRequest 添加学生请求
type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required,max=20"`
	StudentFields
}

// UpdateStudentRequest 更新学生请求（学号不可修改）
type UpdateStudentRequest struct {
	StudentFields
}

// StudentFields 学生可编辑字段
type StudentFields struct {
	Name          string `json:"name"           binding:"required,max=50"`
	Gender        string `json:"gender"         binding:"omitempty,oneof=male female other"`
	BirthDate     string `json:"birth_date"     binding:"omitempty,datetime=2006-01-02"`
	ClassID       *uint  `json:"class_id"       binding:"omitempty,min=1"`
	AdmissionDate string `json:"admission_date" binding:"omitempty,datetime=2006-01-02"`
	Contact       string `json:"contact"        binding:"omitempty,max=50"`
}

// StudentResponse 学生信息
type StudentResponse struct {
	StudentID     string `json:"student_id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birth_date"`
	ClassID       *uint  `json:"class_id"`
	ClassName     string `json:"class_name"`
	AdmissionDate string `json:"admission_date"`
	Contact       string `json:"contact"`
}
