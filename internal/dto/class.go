package dto

// ── 班级模块 DTO ──

// ClassRequest 创建 / 更新班级请求
type ClassRequest struct {
	ClassName   string `json:"class_name"  binding:"required,max=50"`
	Grade       string `json:"grade"       binding:"omitempty,max=20"`
	Major       string `json:"major"       binding:"omitempty,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// ClassResponse 班级信息
type ClassResponse struct {
	ID           uint   `json:"id"`
	ClassName    string `json:"class_name"`
	Grade        string `json:"grade"`
	Major        string `json:"major"`
	Description  string `json:"description"`
	StudentCount int64  `json:"student_count"`
}
