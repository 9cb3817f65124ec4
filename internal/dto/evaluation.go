package dto

// ── 学生评价 DTO ──

// CreateEvaluationRequest 添加评价请求
type CreateEvaluationRequest struct {
	StudentID   string   `json:"student_id"   binding:"required,max=20"`
	EvalType    string   `json:"eval_type"    binding:"required,max=20"`
	EvalContent string   `json:"eval_content" binding:"omitempty,max=2000"`
	Score       *float64 `json:"score"        binding:"omitempty,min=0,max=100"`
}

// EvaluationResponse 评价信息
type EvaluationResponse struct {
	ID            uint     `json:"id"`
	StudentID     string   `json:"student_id"`
	EvalType      string   `json:"eval_type"`
	EvalContent   string   `json:"eval_content"`
	Score         *float64 `json:"score"`
	EvaluatorID   *uint    `json:"evaluator_id"`
	EvaluatorName string   `json:"evaluator_name"`
	CreatedAt     string   `json:"created_at"`
}
