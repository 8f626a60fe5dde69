package tag

import "time"

// Tag 标签实体
// Name有唯一约束；Data是标签附加数据，可以为空
type Tag struct {
	ID        uint
	Name      string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
