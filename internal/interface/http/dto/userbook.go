package dto

// AddUserBookRequest HTTP加入书架请求
type AddUserBookRequest struct {
	BookID uint     `json:"book_id" binding:"required" example:"1"`
	Rating bool     `json:"rating" example:"true"`
	Tags   []string `json:"tags" binding:"omitempty,dive,max=64"`
}

// ListUserBooksRequest HTTP书架列表请求
type ListUserBooksRequest struct {
	PageQuery
}

// UserBookUri 书架记录路径参数
type UserBookUri struct {
	Name string `uri:"name" binding:"required"`
	ID   uint   `uri:"id" binding:"required"`
}
