package author

import (
	"context"
)

// Repository 作者仓储接口（依赖倒置，由infrastructure层实现）
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByName 按姓名（子串）匹配作者
	FindByName(ctx context.Context, name string) ([]*Author, error)

	// FindAll 查询全部作者
	FindAll(ctx context.Context) ([]*Author, error)

	// Delete 删除作者
	Delete(ctx context.Context, id uint) error
}
