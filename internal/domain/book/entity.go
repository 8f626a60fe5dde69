package book

import (
	"time"
)

// Book 图书实体
// 设计说明：
// 1. AuthorID关联作者服务的作者记录，作者姓名不落库（响应时补全）
// 2. Isbns/Subjects是有序字符串列表，持久化层负责列表⇄CSV列的转换
// 3. Title有唯一约束，重复创建返回冲突
type Book struct {
	ID        uint
	AuthorID  uint     // 作者ID（跨服务外键）
	Title     string   // 书名
	Year      int      // 首次出版年份
	OlWorks   string   // openlibrary works URL
	Isbns     []string // ISBN列表
	Subjects  []string // 主题列表
	CreatedAt time.Time
	UpdatedAt time.Time
}
