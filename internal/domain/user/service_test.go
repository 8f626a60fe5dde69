package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存用户仓储（测试用）
type fakeRepository struct {
	users map[string]*User
	next  uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	if _, exists := f.users[u.Name]; exists {
		return ErrUserDuplicate
	}
	f.next++
	u.ID = f.next
	f.users[u.Name] = u
	return nil
}

func (f *fakeRepository) FindByName(ctx context.Context, name string) (*User, error) {
	u, ok := f.users[name]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]*User, error) {
	out := make([]*User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepository) Delete(ctx context.Context, name string) error {
	delete(f.users, name)
	return nil
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("密码落库前做哈希", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		u, err := svc.CreateUser(ctx, "alice", "user", "secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", u.Password)
		assert.NotEmpty(t, u.Password)
	})

	t.Run("用户组缺省为user", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		u, err := svc.CreateUser(ctx, "alice", "", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "user", u.UserGroup)
		assert.False(t, u.IsAdmin())
	})

	t.Run("用户名重复返回冲突", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.CreateUser(ctx, "alice", "user", "secret123")
		require.NoError(t, err)
		_, err = svc.CreateUser(ctx, "alice", "user", "secret456")
		assert.ErrorIs(t, err, ErrUserDuplicate)
	})

	t.Run("用户名或密码为空拒绝", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.CreateUser(ctx, "", "user", "secret123")
		assert.Error(t, err)
		_, err = svc.CreateUser(ctx, "alice", "user", "")
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.CreateUser(ctx, "alice", "admin", "secret123")
	require.NoError(t, err)

	t.Run("正确密码认证通过", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name)
		assert.True(t, u.IsAdmin())
	})

	t.Run("错误密码返回统一错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("用户不存在返回相同错误", func(t *testing.T) {
		// 不区分用户不存在和密码错误，避免用户名枚举
		_, err := svc.Authenticate(ctx, "nobody", "secret123")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}
