package dto

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	Name        string   `json:"name" binding:"required,max=128" example:"Frank Herbert"`
	BirthDate   string   `json:"birth_date" binding:"omitempty,max=32" example:"1920-10-08"`
	OlKey       string   `json:"ol_key" binding:"omitempty,max=64" example:"OL79034A"`
	ImageSmall  string   `json:"image_small" binding:"omitempty,url,max=255"`
	ImageMedium string   `json:"image_medium" binding:"omitempty,url,max=255"`
	ImageLarge  string   `json:"image_large" binding:"omitempty,url,max=255"`
	Subjects    []string `json:"subjects" binding:"omitempty,dive,max=128"`
}

// ListAuthorsRequest HTTP作者列表请求
type ListAuthorsRequest struct {
	Name string `form:"name" binding:"omitempty,max=128" example:"Herbert"`
	PageQuery
}
