package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置，由infrastructure层实现）
// 设计说明：列表查询按条件种类拆成独立方法，由领域服务负责并集合并。
// 每个方法都是只读、彼此独立，可以并发调用。
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 按书名（子串）匹配图书
	FindByTitle(ctx context.Context, title string) ([]*Book, error)

	// FindByIDs 按ID集合查找图书
	FindByIDs(ctx context.Context, ids []uint) ([]*Book, error)

	// FindByAuthorIDs 按作者ID集合查找图书
	FindByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Book, error)

	// FindAll 查询全部图书
	FindAll(ctx context.Context) ([]*Book, error)

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error
}
