package tag

import (
	"context"
)

// Repository 标签仓储接口（依赖倒置，由infrastructure层实现）
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	FindByID(ctx context.Context, id uint) (*Tag, error)
	FindAll(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uint) error
}
