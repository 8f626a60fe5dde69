package tag

import (
	"context"
	"sort"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// Service 标签领域服务接口
type Service interface {
	CreateTag(ctx context.Context, name, data string) (*Tag, error)
	GetTag(ctx context.Context, id uint) (*Tag, error)
	ListTags(ctx context.Context) ([]*Tag, error)
	UpdateTag(ctx context.Context, id uint, name, data string) (*Tag, error)
	DeleteTag(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建标签领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTag(ctx context.Context, name, data string) (*Tag, error) {
	if name == "" {
		return nil, apperrors.ErrInvalidParams
	}
	t := &Tag{Name: name, Data: data}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTag(ctx context.Context, id uint) (*Tag, error) {
	return s.repo.FindByID(ctx, id)
}

// ListTags 查询全部标签（按ID升序）
func (s *service) ListTags(ctx context.Context) ([]*Tag, error) {
	tags, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (s *service) UpdateTag(ctx context.Context, id uint, name, data string) (*Tag, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		t.Name = name
	}
	t.Data = data
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) DeleteTag(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
