package dto

// CreateTagRequest HTTP创建标签请求
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=64" example:"favorites"`
	Data string `json:"data" binding:"omitempty,max=1024"`
}

// UpdateTagRequest HTTP更新标签请求
type UpdateTagRequest struct {
	Name string `json:"name" binding:"required,max=64" example:"favorites"`
	Data string `json:"data" binding:"omitempty,max=1024"`
}
