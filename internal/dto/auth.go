package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // 秒，0 表示不过期
	User        UserResponse `json:"user"`
	Screens     []string     `json:"screens"`
}

// MeResponse 当前用户信息（GET /auth/me）
type MeResponse struct {
	User    UserResponse `json:"user"`
	Screens []string     `json:"screens"`
}
