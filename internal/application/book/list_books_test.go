package book

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mybooks/internal/domain/book"
)

// fakeBookService 固定结果的图书领域服务（测试用）
type fakeBookService struct {
	books []*book.Book
	err   error
}

func (f *fakeBookService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) ListBooks(ctx context.Context, q book.ListQuery) ([]*book.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func (f *fakeBookService) DeleteBook(ctx context.Context, id uint) error { return nil }

// fakeResolver 作者名解析器（测试用）
// failIDs中的作者ID解析失败，其余返回"author-<id>"
// 解析是并发调用的，记录现场需要加锁
type fakeResolver struct {
	mu       sync.Mutex
	failIDs  map[uint]bool
	lastAuth string
}

func (f *fakeResolver) GetAuthorName(ctx context.Context, authorID uint, authHeader string) (string, error) {
	f.mu.Lock()
	f.lastAuth = authHeader
	f.mu.Unlock()

	if f.failIDs[authorID] {
		return "", errors.New("author service unavailable")
	}
	return fmt.Sprintf("author-%d", authorID), nil
}

func intPtr(v int) *int { return &v }

func TestListBooksUseCase(t *testing.T) {
	ctx := context.Background()
	books := []*book.Book{
		{ID: 1, AuthorID: 10, Title: "Dune"},
		{ID: 2, AuthorID: 20, Title: "Hyperion"},
		{ID: 3, AuthorID: 30, Title: "Foundation"},
	}

	t.Run("全部补全作者名", func(t *testing.T) {
		uc := NewListBooksUseCase(&fakeBookService{books: books}, &fakeResolver{})

		page, err := uc.Execute(ctx, ListBooksRequest{AuthHeader: "Bearer tok"})
		require.NoError(t, err)
		require.Len(t, page.Results, 3)
		assert.Equal(t, "author-10", page.Results[0].AuthorName)
		assert.Equal(t, "author-20", page.Results[1].AuthorName)
		assert.Equal(t, "author-30", page.Results[2].AuthorName)
	})

	t.Run("单条补全失败只降级该条", func(t *testing.T) {
		resolver := &fakeResolver{failIDs: map[uint]bool{20: true}}
		uc := NewListBooksUseCase(&fakeBookService{books: books}, resolver)

		page, err := uc.Execute(ctx, ListBooksRequest{})
		require.NoError(t, err)
		require.Len(t, page.Results, 3)
		assert.Equal(t, "author-10", page.Results[0].AuthorName)
		assert.Equal(t, "", page.Results[1].AuthorName)
		assert.Equal(t, "author-30", page.Results[2].AuthorName)
	})

	t.Run("透传调用方Authorization头", func(t *testing.T) {
		resolver := &fakeResolver{}
		uc := NewListBooksUseCase(&fakeBookService{books: books[:1]}, resolver)

		_, err := uc.Execute(ctx, ListBooksRequest{AuthHeader: "Bearer caller-token"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer caller-token", resolver.lastAuth)
	})

	t.Run("分页截取发生在补全之后", func(t *testing.T) {
		uc := NewListBooksUseCase(&fakeBookService{books: books}, &fakeResolver{})

		page, err := uc.Execute(ctx, ListBooksRequest{Start: intPtr(1), SegmentSize: intPtr(1)})
		require.NoError(t, err)
		// 窗口内的记录也完成了补全，total为截取前的全量数
		require.Len(t, page.Results, 1)
		assert.Equal(t, "author-20", page.Results[0].AuthorName)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 1, page.Start)
	})

	t.Run("查询失败直接返回错误", func(t *testing.T) {
		uc := NewListBooksUseCase(&fakeBookService{err: errors.New("db down")}, &fakeResolver{})

		_, err := uc.Execute(ctx, ListBooksRequest{})
		assert.Error(t, err)
	})
}

func TestGetBookUseCase(t *testing.T) {
	ctx := context.Background()
	svc := &fakeBookService{books: []*book.Book{{ID: 1, AuthorID: 10, Title: "Dune"}}}

	t.Run("详情补全作者名", func(t *testing.T) {
		uc := NewGetBookUseCase(svc, &fakeResolver{})

		view, err := uc.Execute(ctx, 1, "Bearer tok")
		require.NoError(t, err)
		assert.Equal(t, "author-10", view.AuthorName)
	})

	t.Run("补全失败详情仍返回", func(t *testing.T) {
		uc := NewGetBookUseCase(svc, &fakeResolver{failIDs: map[uint]bool{10: true}})

		view, err := uc.Execute(ctx, 1, "Bearer tok")
		require.NoError(t, err)
		assert.Equal(t, "Dune", view.Title)
		assert.Equal(t, "", view.AuthorName)
	})

	t.Run("图书不存在返回错误", func(t *testing.T) {
		uc := NewGetBookUseCase(svc, &fakeResolver{})

		_, err := uc.Execute(ctx, 404, "")
		assert.Error(t, err)
	})
}
