package dto

// ── 用户模块 DTO ──

// CreateUserRequest 添加用户请求
type CreateUserRequest struct {
	Username string `json:"username"  binding:"required,min=2,max=50"`
	Password string `json:"password"  binding:"required,min=6,max=50"`
	Role     string `json:"role"      binding:"required,oneof=admin teacher student"`
	RealName string `json:"real_name" binding:"omitempty,max=50"`
	Email    string `json:"email"     binding:"omitempty,email"`
}

// ResetPasswordRequest 管理员重置密码请求
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	RealName  string `json:"real_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
