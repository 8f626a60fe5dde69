package dto

// LoginRequest HTTP登录（签发Token）请求
type LoginRequest struct {
	Name     string `json:"name" binding:"required,max=64" example:"alice"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
}

// CreateUserRequest HTTP创建用户请求
// user_group只允许admin/user，缺省为user
type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,max=64" example:"alice"`
	UserGroup string `json:"user_group" binding:"omitempty,oneof=admin user" example:"user"`
	Password  string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
}

// NameUri 路径用户名参数
type NameUri struct {
	Name string `uri:"name" binding:"required"`
}
