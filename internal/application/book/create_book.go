package book

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/book"
)

// CreateBookUseCase 图书创建用例
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	AuthorID uint
	Title    string
	Year     int
	OlWorks  string
	Isbns    []string
	Subjects []string
}

// Execute 执行图书创建
// 书名唯一约束冲突时返回409，由持久化层翻译
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookView, error) {
	created, err := uc.bookService.CreateBook(ctx, &book.Book{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Year:     req.Year,
		OlWorks:  req.OlWorks,
		Isbns:    req.Isbns,
		Subjects: req.Subjects,
	})
	if err != nil {
		return nil, err
	}

	view := toBookView(created)
	return &view, nil
}
