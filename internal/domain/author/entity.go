package author

import (
	"time"
)

// Author 作者实体
// 设计说明：
// 1. Name是业务唯一标识（数据库层保证唯一性）
// 2. Subjects是有序字符串列表，持久化层负责列表⇄CSV列的转换
// 3. 图书服务通过作者ID反查作者名（列表补全），本实体即其数据来源
type Author struct {
	ID          uint
	Name        string   // 作者姓名
	BirthDate   string   // 出生日期（自由格式文本，来源数据不保证规整）
	OlKey       string   // openlibrary作者key
	ImageSmall  string   // 头像URL（小）
	ImageMedium string   // 头像URL（中）
	ImageLarge  string   // 头像URL（大）
	Subjects    []string // 主题列表
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
