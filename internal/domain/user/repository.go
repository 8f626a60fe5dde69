package user

import (
	"context"
)

// Repository 用户仓储接口（依赖倒置，由infrastructure层实现）
type Repository interface {
	// Create 创建用户
	Create(ctx context.Context, u *User) error

	// FindByName 根据用户名查找用户
	FindByName(ctx context.Context, name string) (*User, error)

	// FindAll 查询全部用户
	FindAll(ctx context.Context) ([]*User, error)

	// Delete 删除用户
	Delete(ctx context.Context, name string) error
}
