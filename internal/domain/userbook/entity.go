package userbook

import (
	"time"
)

// UserBook 书架记录：某个用户收藏的一本书
// 设计说明：
// 1. UserID + BookID构成用户书架上的一条记录，允许同一本书出现在多个用户的书架
// 2. Tags是用户给这条记录打的标签列表，持久化层负责列表⇄CSV列的转换
// 3. 非admin用户只能操作自己的书架（接口层校验）
type UserBook struct {
	ID        uint
	UserID    uint     // 所属用户ID
	BookID    uint     // 图书ID
	Rating    bool     // 是否喜欢（赞/踩）
	Tags      []string // 用户标签
	DateAdded time.Time
}
