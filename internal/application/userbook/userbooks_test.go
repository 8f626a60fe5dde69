package userbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mybooks/internal/domain/book"
	"github.com/xiebiao/mybooks/internal/domain/user"
	"github.com/xiebiao/mybooks/internal/domain/userbook"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// fakeUserService 固定用户表（测试用）
type fakeUserService struct {
	users map[string]*user.User
}

func (f *fakeUserService) Authenticate(ctx context.Context, name, password string) (*user.User, error) {
	return nil, user.ErrBadCredentials
}

func (f *fakeUserService) CreateUser(ctx context.Context, name, group, password string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUserService) GetUser(ctx context.Context, name string) (*user.User, error) {
	u, ok := f.users[name]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserService) DeleteUser(ctx context.Context, name string) error   { return nil }

// fakeBookService 固定图书表（测试用）
type fakeBookService struct {
	books map[uint]*book.Book
}

func (f *fakeBookService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookService) ListBooks(ctx context.Context, q book.ListQuery) ([]*book.Book, error) {
	return nil, nil
}

func (f *fakeBookService) DeleteBook(ctx context.Context, id uint) error { return nil }

// fakeShelfRepo 内存书架仓储，经领域服务接入用例
type fakeShelfRepo struct {
	records map[uint]*userbook.UserBook
	next    uint
}

func (f *fakeShelfRepo) Create(ctx context.Context, ub *userbook.UserBook) error {
	f.next++
	ub.ID = f.next
	f.records[ub.ID] = ub
	return nil
}

func (f *fakeShelfRepo) FindByID(ctx context.Context, id uint) (*userbook.UserBook, error) {
	ub, ok := f.records[id]
	if !ok {
		return nil, userbook.ErrUserBookNotFound
	}
	return ub, nil
}

func (f *fakeShelfRepo) FindByUser(ctx context.Context, userID uint) ([]*userbook.UserBook, error) {
	var out []*userbook.UserBook
	for _, ub := range f.records {
		if ub.UserID == userID {
			out = append(out, ub)
		}
	}
	return out, nil
}

func (f *fakeShelfRepo) Delete(ctx context.Context, id uint) error {
	delete(f.records, id)
	return nil
}

func newFixture() (*AddUserBookUseCase, *ListUserBooksUseCase, *RemoveUserBookUseCase) {
	userSvc := &fakeUserService{users: map[string]*user.User{
		"alice": {ID: 1, Name: "alice", UserGroup: "user"},
		"bob":   {ID: 2, Name: "bob", UserGroup: "user"},
	}}
	bookSvc := &fakeBookService{books: map[uint]*book.Book{
		42: {ID: 42, Title: "Dune"},
	}}
	shelfSvc := userbook.NewService(&fakeShelfRepo{records: make(map[uint]*userbook.UserBook)})

	return NewAddUserBookUseCase(shelfSvc, userSvc, bookSvc),
		NewListUserBooksUseCase(shelfSvc, userSvc),
		NewRemoveUserBookUseCase(shelfSvc, userSvc)
}

func forbiddenCode(err error) int {
	return apperrors.GetAppError(err).Code
}

func TestAddUserBook(t *testing.T) {
	ctx := context.Background()

	t.Run("本人加入书架", func(t *testing.T) {
		add, _, _ := newFixture()

		view, err := add.Execute(ctx, AddUserBookRequest{
			UserName: "alice",
			BookID:   42,
			Rating:   true,
			Caller:   Caller{Name: "alice"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), view.UserID)
		assert.Equal(t, uint(42), view.BookID)
	})

	t.Run("操作他人书架返回403", func(t *testing.T) {
		add, _, _ := newFixture()

		_, err := add.Execute(ctx, AddUserBookRequest{
			UserName: "alice",
			BookID:   42,
			Caller:   Caller{Name: "bob"},
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, forbiddenCode(err))
	})

	t.Run("admin可操作任意书架", func(t *testing.T) {
		add, _, _ := newFixture()

		_, err := add.Execute(ctx, AddUserBookRequest{
			UserName: "alice",
			BookID:   42,
			Caller:   Caller{Name: "root", IsAdmin: true},
		})
		assert.NoError(t, err)
	})

	t.Run("图书不存在返回404", func(t *testing.T) {
		add, _, _ := newFixture()

		_, err := add.Execute(ctx, AddUserBookRequest{
			UserName: "alice",
			BookID:   999,
			Caller:   Caller{Name: "alice"},
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("目标用户不存在返回404", func(t *testing.T) {
		add, _, _ := newFixture()

		_, err := add.Execute(ctx, AddUserBookRequest{
			UserName: "nobody",
			BookID:   42,
			Caller:   Caller{Name: "root", IsAdmin: true},
		})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestListAndRemoveUserBooks(t *testing.T) {
	ctx := context.Background()
	add, list, remove := newFixture()

	added, err := add.Execute(ctx, AddUserBookRequest{
		UserName: "alice",
		BookID:   42,
		Caller:   Caller{Name: "alice"},
	})
	require.NoError(t, err)

	t.Run("本人查询书架", func(t *testing.T) {
		page, err := list.Execute(ctx, ListUserBooksRequest{
			UserName: "alice",
			Caller:   Caller{Name: "alice"},
		})
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, uint(42), page.Results[0].BookID)
	})

	t.Run("查询他人书架返回403", func(t *testing.T) {
		_, err := list.Execute(ctx, ListUserBooksRequest{
			UserName: "alice",
			Caller:   Caller{Name: "bob"},
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, forbiddenCode(err))
	})

	t.Run("删除他人书架记录返回403", func(t *testing.T) {
		err := remove.Execute(ctx, "alice", added.ID, Caller{Name: "bob"})
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeForbidden, forbiddenCode(err))
	})

	t.Run("本人删除书架记录", func(t *testing.T) {
		require.NoError(t, remove.Execute(ctx, "alice", added.ID, Caller{Name: "alice"}))

		page, err := list.Execute(ctx, ListUserBooksRequest{
			UserName: "alice",
			Caller:   Caller{Name: "alice"},
		})
		require.NoError(t, err)
		assert.Empty(t, page.Results)
	})
}
