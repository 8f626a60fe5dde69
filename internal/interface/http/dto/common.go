package dto

// PageQuery 分页查询参数
// 指针类型区分"未提供"和"提供了0"：
// start未提供默认0；segmentSize未提供或<=0表示取到结尾
type PageQuery struct {
	Start       *int `form:"start" example:"0"`
	SegmentSize *int `form:"segmentSize" example:"20"`
}

// IDUri 路径ID参数
type IDUri struct {
	ID uint `uri:"id" binding:"required"`
}
