package userbook

import (
	"context"
)

// Repository 书架仓储接口（依赖倒置，由infrastructure层实现）
type Repository interface {
	Create(ctx context.Context, ub *UserBook) error
	FindByID(ctx context.Context, id uint) (*UserBook, error)
	FindByUser(ctx context.Context, userID uint) ([]*UserBook, error)
	Delete(ctx context.Context, id uint) error
}
