package book

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/book"
	"github.com/xiebiao/mybooks/pkg/window"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持书名子串、图书ID集合、作者ID集合三种条件的并集查询
// 2. 查询结果先补全作者名，再做分页截取（分页窗口的total为补全后的全量数）
// 3. 补全失败降级：作者名留空，不影响列表返回
type ListBooksUseCase struct {
	bookService book.Service
	resolver    AuthorNameResolver
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, resolver AuthorNameResolver) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		resolver:    resolver,
	}
}

// ListBooksRequest 列表查询请求DTO
// Start/SegmentSize为nil表示调用方未提供，分页取默认值
type ListBooksRequest struct {
	Title       string // 书名子串
	IDs         []uint // 图书ID集合
	AuthorIDs   []uint // 作者ID集合
	Start       *int   // 分页起点（0起）
	SegmentSize *int   // 分页大小
	AuthHeader  string // 调用方Authorization头（透传给作者服务）
}

// BookView 图书视图DTO
type BookView struct {
	ID         uint     `json:"id"`
	AuthorID   uint     `json:"author_id"`
	AuthorName string   `json:"author_name"` // 补全自作者服务，失败时为空
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	OlWorks    string   `json:"ol_works,omitempty"`
	Isbns      []string `json:"isbns,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*window.Page[BookView], error) {
	// 1. 领域层并集查询（无条件即全部）
	books, err := uc.bookService.ListBooks(ctx, book.ListQuery{
		Title:     req.Title,
		IDs:       req.IDs,
		AuthorIDs: req.AuthorIDs,
	})
	if err != nil {
		return nil, err
	}

	// 2. 转换为视图DTO
	views := make([]BookView, len(books))
	for i, b := range books {
		views[i] = toBookView(b)
	}

	// 3. 全量补全作者名（在分页之前）
	enrichAuthorNames(ctx, uc.resolver, views, req.AuthHeader)

	// 4. 分页截取
	page := window.Paginate(views, req.Start, req.SegmentSize)
	return &page, nil
}

func toBookView(b *book.Book) BookView {
	return BookView{
		ID:       b.ID,
		AuthorID: b.AuthorID,
		Title:    b.Title,
		Year:     b.Year,
		OlWorks:  b.OlWorks,
		Isbns:    b.Isbns,
		Subjects: b.Subjects,
	}
}
