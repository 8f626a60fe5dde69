package user

import (
	"context"
	"sort"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// Service 用户领域服务接口
type Service interface {
	// Authenticate 校验用户名密码（登录）
	// 校验失败统一返回ErrBadCredentials，不区分用户不存在和密码错误
	Authenticate(ctx context.Context, name, password string) (*User, error)

	// CreateUser 创建用户（明文密码在此处做bcrypt哈希）
	CreateUser(ctx context.Context, name, group, password string) (*User, error)

	// GetUser 根据用户名获取用户
	GetUser(ctx context.Context, name string) (*User, error)

	// ListUsers 查询全部用户（按ID升序）
	ListUsers(ctx context.Context) ([]*User, error)

	// DeleteUser 删除用户
	DeleteUser(ctx context.Context, name string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Authenticate 校验用户名密码
func (s *service) Authenticate(ctx context.Context, name, password string) (*User, error) {
	u, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	return u, nil
}

// CreateUser 创建用户
func (s *service) CreateUser(ctx context.Context, name, group, password string) (*User, error) {
	if name == "" || password == "" {
		return nil, apperrors.ErrInvalidParams
	}
	if group == "" {
		group = "user"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码哈希失败")
	}

	u := &User{
		Name:      name,
		UserGroup: group,
		Password:  string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser 根据用户名获取用户
func (s *service) GetUser(ctx context.Context, name string) (*User, error) {
	return s.repo.FindByName(ctx, name)
}

// ListUsers 查询全部用户
func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// DeleteUser 删除用户
func (s *service) DeleteUser(ctx context.Context, name string) error {
	// 先查再删，不存在时返回404
	if _, err := s.repo.FindByName(ctx, name); err != nil {
		return err
	}
	return s.repo.Delete(ctx, name)
}
