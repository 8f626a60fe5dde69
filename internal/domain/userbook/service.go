package userbook

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// Service 书架领域服务接口
type Service interface {
	// AddBook 把图书加入用户书架
	AddBook(ctx context.Context, userID, bookID uint, rating bool, tags []string) (*UserBook, error)

	// ListByUser 查询用户书架（按ID升序）
	ListByUser(ctx context.Context, userID uint) ([]*UserBook, error)

	// RemoveBook 从用户书架删除记录
	// 记录不属于该用户时按不存在处理（不泄露他人书架信息）
	RemoveBook(ctx context.Context, userID, userBookID uint) error
}

type service struct {
	repo Repository
}

// NewService 创建书架领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddBook(ctx context.Context, userID, bookID uint, rating bool, tags []string) (*UserBook, error) {
	if userID == 0 || bookID == 0 {
		return nil, apperrors.ErrInvalidParams
	}

	ub := &UserBook{
		UserID:    userID,
		BookID:    bookID,
		Rating:    rating,
		Tags:      tags,
		DateAdded: time.Now(),
	}
	if err := s.repo.Create(ctx, ub); err != nil {
		return nil, err
	}
	return ub, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*UserBook, error) {
	items, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *service) RemoveBook(ctx context.Context, userID, userBookID uint) error {
	ub, err := s.repo.FindByID(ctx, userBookID)
	if err != nil {
		return err
	}
	if ub.UserID != userID {
		return ErrUserBookNotFound
	}
	return s.repo.Delete(ctx, userBookID)
}
