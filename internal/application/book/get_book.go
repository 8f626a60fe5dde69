package book

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
// 详情与列表一样补全作者名，补全失败不影响详情返回
type GetBookUseCase struct {
	bookService book.Service
	resolver    AuthorNameResolver
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service, resolver AuthorNameResolver) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		resolver:    resolver,
	}
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint, authHeader string) (*BookView, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	view := toBookView(b)
	if uc.resolver != nil {
		view.AuthorName = resolveAuthorName(ctx, uc.resolver, b.AuthorID, authHeader)
	}
	return &view, nil
}
