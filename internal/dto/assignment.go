package dto

// ── 作业模块 DTO ──

// CreateFolderRequest 添加作业文件夹请求
type CreateFolderRequest struct {
	FolderPath  string `json:"folder_path" binding:"required,max=1024"`
	CourseID    uint   `json:"course_id"   binding:"required,min=1"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// FolderResponse 作业文件夹信息
type FolderResponse struct {
	ID          uint   `json:"id"`
	FolderPath  string `json:"folder_path"`
	CourseID    uint   `json:"course_id"`
	CourseName  string `json:"course_name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// SubmissionRow 文件夹详情中的一名学生
type SubmissionRow struct {
	StudentID  string   `json:"student_id"`
	Name       string   `json:"name"`
	Files      []string `json:"files"`
	Status     string   `json:"status"` // not_submitted | submitted | graded
	Score      *float64 `json:"score"`
	Feedback   string   `json:"feedback"`
	SubmitTime string   `json:"submit_time,omitempty"`
}

// FolderDetailResponse 作业文件夹详情
type FolderDetailResponse struct {
	Folder    FolderResponse  `json:"folder"`
	Exists    bool            `json:"exists"`
	Students  []SubmissionRow `json:"students"`
	Submitted int             `json:"submitted"`
	Total     int             `json:"total"`
}

// ScanResponse 扫描作业目录结果
type ScanResponse struct {
	Changed    bool     `json:"changed"`
	Added      []string `json:"added"`
	Removed    []string `json:"removed"`
	NewRecords int      `json:"new_records"`
}

// GradeSubmissionRequest 作业批改请求
type GradeSubmissionRequest struct {
	StudentID string   `json:"student_id" binding:"required,max=20"`
	Score     *float64 `json:"score"      binding:"required,min=0,max=100"`
	Feedback  string   `json:"feedback"   binding:"omitempty,max=1000"`
}
