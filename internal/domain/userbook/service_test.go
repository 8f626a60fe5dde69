package userbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存书架仓储（测试用）
type fakeRepository struct {
	records map[uint]*UserBook
	next    uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[uint]*UserBook)}
}

func (f *fakeRepository) Create(ctx context.Context, ub *UserBook) error {
	f.next++
	ub.ID = f.next
	f.records[ub.ID] = ub
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*UserBook, error) {
	ub, ok := f.records[id]
	if !ok {
		return nil, ErrUserBookNotFound
	}
	return ub, nil
}

func (f *fakeRepository) FindByUser(ctx context.Context, userID uint) ([]*UserBook, error) {
	var out []*UserBook
	for _, ub := range f.records {
		if ub.UserID == userID {
			out = append(out, ub)
		}
	}
	return out, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	delete(f.records, id)
	return nil
}

func TestAddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常加入书架", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		ub, err := svc.AddBook(ctx, 1, 42, true, []string{"sci-fi"})
		require.NoError(t, err)
		assert.NotZero(t, ub.ID)
		assert.Equal(t, uint(1), ub.UserID)
		assert.Equal(t, uint(42), ub.BookID)
		assert.False(t, ub.DateAdded.IsZero())
	})

	t.Run("用户或图书ID为零拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.AddBook(ctx, 0, 42, false, nil)
		assert.Error(t, err)
		_, err = svc.AddBook(ctx, 1, 0, false, nil)
		assert.Error(t, err)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	for _, bookID := range []uint{30, 10, 20} {
		_, err := svc.AddBook(ctx, 1, bookID, false, nil)
		require.NoError(t, err)
	}
	_, err := svc.AddBook(ctx, 2, 99, false, nil)
	require.NoError(t, err)

	t.Run("只返回该用户的记录且按ID升序", func(t *testing.T) {
		records, err := svc.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, records, 3)
		for i := 1; i < len(records); i++ {
			assert.Less(t, records[i-1].ID, records[i].ID)
		}
	})

	t.Run("无记录的用户返回空集", func(t *testing.T) {
		records, err := svc.ListByUser(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRemoveBook(t *testing.T) {
	ctx := context.Background()

	t.Run("删除本人记录", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		ub, err := svc.AddBook(ctx, 1, 42, false, nil)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveBook(ctx, 1, ub.ID))

		records, err := svc.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("记录属于他人时按不存在处理", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		ub, err := svc.AddBook(ctx, 1, 42, false, nil)
		require.NoError(t, err)

		err = svc.RemoveBook(ctx, 2, ub.ID)
		assert.ErrorIs(t, err, ErrUserBookNotFound)

		// 原记录未被删除
		records, err := svc.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("记录不存在返回404", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		err := svc.RemoveBook(ctx, 1, 999)
		assert.ErrorIs(t, err, ErrUserBookNotFound)
	})
}
