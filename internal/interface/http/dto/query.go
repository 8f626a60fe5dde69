package dto

// QueryAuthorRequest 作者目录查询参数
type QueryAuthorRequest struct {
	Author string `form:"author"` // 作者姓名或片段
}

// QueryTitleRequest 书名目录查询参数，三个条件都可选
type QueryTitleRequest struct {
	Author string `form:"author"`
	Title  string `form:"title"`
	Isbn   string `form:"isbn"`
}
