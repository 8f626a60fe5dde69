package book

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存图书仓储（测试用）
type fakeRepository struct {
	books      []*Book
	titleErr   error
	idsErr     error
	authorsErr error
	findAllErr error
}

func (f *fakeRepository) Create(ctx context.Context, b *Book) error { return nil }

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookNotFound
}

func (f *fakeRepository) FindByTitle(ctx context.Context, title string) ([]*Book, error) {
	if f.titleErr != nil {
		return nil, f.titleErr
	}
	var out []*Book
	for _, b := range f.books {
		if strings.Contains(b.Title, title) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByIDs(ctx context.Context, ids []uint) ([]*Book, error) {
	if f.idsErr != nil {
		return nil, f.idsErr
	}
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*Book
	for _, b := range f.books {
		if want[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Book, error) {
	if f.authorsErr != nil {
		return nil, f.authorsErr
	}
	want := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		want[id] = true
	}
	var out []*Book
	for _, b := range f.books {
		if want[b.AuthorID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]*Book, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return append([]*Book{}, f.books...), nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error { return nil }

func testBooks() []*Book {
	return []*Book{
		{ID: 3, AuthorID: 1, Title: "Children of Dune"},
		{ID: 1, AuthorID: 1, Title: "Dune"},
		{ID: 7, AuthorID: 2, Title: "Hyperion"},
		{ID: 5, AuthorID: 1, Title: "Dune Messiah"},
	}
}

func bookIDs(books []*Book) []uint {
	ids := make([]uint, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("无条件返回全部并按ID升序", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})

		got, err := svc.ListBooks(ctx, ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 3, 5, 7}, bookIDs(got))
	})

	t.Run("单条件按书名子串匹配", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})

		got, err := svc.ListBooks(ctx, ListQuery{Title: "Dune"})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 3, 5}, bookIDs(got))
	})

	t.Run("多条件取并集且按ID去重", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})

		// id=7命中ID条件，authorId=2也命中同一本书，结果只出现一次
		got, err := svc.ListBooks(ctx, ListQuery{
			IDs:       []uint{1, 7},
			AuthorIDs: []uint{2},
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 7}, bookIDs(got))
	})

	t.Run("提供了条件但全部落空返回空集", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})

		got, err := svc.ListBooks(ctx, ListQuery{Title: "不存在的书"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("三种条件同时给全", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})

		got, err := svc.ListBooks(ctx, ListQuery{
			Title:     "Hyperion",
			IDs:       []uint{1},
			AuthorIDs: []uint{1},
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 3, 5, 7}, bookIDs(got))
	})

	t.Run("相同查询重复执行结果一致", func(t *testing.T) {
		svc := NewService(&fakeRepository{books: testBooks()})
		q := ListQuery{IDs: []uint{5, 1}, AuthorIDs: []uint{2}}

		first, err := svc.ListBooks(ctx, q)
		require.NoError(t, err)
		second, err := svc.ListBooks(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, bookIDs(first), bookIDs(second))
	})

	t.Run("任一条件查询失败整体报错", func(t *testing.T) {
		svc := NewService(&fakeRepository{
			books:  testBooks(),
			idsErr: errors.New("connection reset"),
		})

		_, err := svc.ListBooks(ctx, ListQuery{
			Title: "Dune",
			IDs:   []uint{1},
		})
		assert.Error(t, err)
	})

	t.Run("全量查询失败报错", func(t *testing.T) {
		svc := NewService(&fakeRepository{findAllErr: errors.New("connection reset")})

		_, err := svc.ListBooks(ctx, ListQuery{})
		assert.Error(t, err)
	})
}

func TestCreateBook(t *testing.T) {
	svc := NewService(&fakeRepository{})

	t.Run("书名为空拒绝创建", func(t *testing.T) {
		_, err := svc.CreateBook(context.Background(), &Book{AuthorID: 1})
		assert.Error(t, err)
	})
}
