package user

import (
	"time"
)

// User 用户实体
// 设计说明：
// 1. Name是业务唯一标识（数据库层保证唯一性）
// 2. UserGroup决定角色（admin可执行创建/删除类写操作）
// 3. Password只存bcrypt哈希，实体上不出现明文
type User struct {
	ID        uint
	Name      string // 用户名（唯一）
	UserGroup string // 用户组：admin | user
	Password  string // bcrypt哈希
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GroupAdmin 管理员用户组
const GroupAdmin = "admin"

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.UserGroup == GroupAdmin
}
