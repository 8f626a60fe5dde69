package author

import (
	"context"
	"sort"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	CreateAuthor(ctx context.Context, a *Author) (*Author, error)

	// GetAuthor 根据ID获取作者
	GetAuthor(ctx context.Context, id uint) (*Author, error)

	// ListAuthors 查询作者列表
	// name非空时按姓名子串匹配，为空时返回全部；结果按ID升序（确定性输出）
	ListAuthors(ctx context.Context, name string) ([]*Author, error)

	// DeleteAuthor 删除作者
	DeleteAuthor(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, a *Author) (*Author, error) {
	if a.Name == "" {
		return nil, apperrors.ErrInvalidParams
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthor 根据ID获取作者
func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAuthors 查询作者列表
func (s *service) ListAuthors(ctx context.Context, name string) ([]*Author, error) {
	var (
		authors []*Author
		err     error
	)
	if name != "" {
		authors, err = s.repo.FindByName(ctx, name)
	} else {
		authors, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	return authors, nil
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
