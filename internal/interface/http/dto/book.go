package dto

// CreateBookRequest HTTP创建图书请求
type CreateBookRequest struct {
	AuthorID uint     `json:"author_id" binding:"required" example:"1"`
	Title    string   `json:"title" binding:"required,max=255" example:"Dune"`
	Year     int      `json:"year" binding:"omitempty,min=0" example:"1965"`
	OlWorks  string   `json:"ol_works" binding:"omitempty,max=64" example:"/works/OL893415W"`
	Isbns    []string `json:"isbns" binding:"omitempty,dive,max=32"`
	Subjects []string `json:"subjects" binding:"omitempty,dive,max=128"`
}

// ListBooksRequest HTTP图书列表请求
// title/id/authorId三种条件是"或"的关系：命中任意条件的图书都返回
// 一个条件都不提供则返回全部
type ListBooksRequest struct {
	Title     string `form:"title" binding:"omitempty,max=255" example:"Dune"`
	IDs       []uint `form:"id"`
	AuthorIDs []uint `form:"authorId"`
	PageQuery
}
