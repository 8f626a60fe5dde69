package book

import (
	"context"
	"sort"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// ListQuery 图书列表查询条件
// 三种条件可以同时出现，彼此是"或"的关系（并集）：
// 命中任意一个条件的图书都会出现在结果里
type ListQuery struct {
	Title     string // 书名子串匹配
	IDs       []uint // 图书ID集合
	AuthorIDs []uint // 作者ID集合
}

// hasPredicates 是否提供了任何查询条件
func (q ListQuery) hasPredicates() bool {
	return q.Title != "" || len(q.IDs) > 0 || len(q.AuthorIDs) > 0
}

// Service 图书领域服务接口
type Service interface {
	// CreateBook 创建图书
	CreateBook(ctx context.Context, b *Book) (*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 多条件并集查询
	// 语义：
	// 1. 未提供任何条件 → 返回全部图书（"无条件即全部"，不是"无条件即为空"）
	// 2. 提供了条件但全部落空 → 返回空集（不回退到全部）
	// 3. 同一本书命中多个条件只出现一次（按ID去重）
	// 4. 结果按ID升序（确定性输出，与命中顺序无关）
	ListBooks(ctx context.Context, q ListQuery) ([]*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	if b.Title == "" {
		return nil, apperrors.ErrInvalidParams
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// lookupResult 单个条件查询的结果
type lookupResult struct {
	books []*Book
	err   error
}

// ListBooks 多条件并集查询
// 每种条件对应一次仓储查询，查询之间只读且互不依赖，并发执行；
// 合并/排序必须等全部查询完成后进行
func (s *service) ListBooks(ctx context.Context, q ListQuery) ([]*Book, error) {
	// 1. 无条件 → 全量
	if !q.hasPredicates() {
		books, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return sortByID(books), nil
	}

	// 2. 组装条件查询
	lookups := make([]func(context.Context) ([]*Book, error), 0, 3)
	if q.Title != "" {
		lookups = append(lookups, func(ctx context.Context) ([]*Book, error) {
			return s.repo.FindByTitle(ctx, q.Title)
		})
	}
	if len(q.IDs) > 0 {
		lookups = append(lookups, func(ctx context.Context) ([]*Book, error) {
			return s.repo.FindByIDs(ctx, q.IDs)
		})
	}
	if len(q.AuthorIDs) > 0 {
		lookups = append(lookups, func(ctx context.Context) ([]*Book, error) {
			return s.repo.FindByAuthorIDs(ctx, q.AuthorIDs)
		})
	}

	// 3. 并发执行各条件查询
	ch := make(chan lookupResult, len(lookups))
	for _, lookup := range lookups {
		go func(fn func(context.Context) ([]*Book, error)) {
			books, err := fn(ctx)
			ch <- lookupResult{books: books, err: err}
		}(lookup)
	}

	// 4. 等待全部完成，按ID去重合并
	seen := make(map[uint]*Book)
	var firstErr error
	for range lookups {
		r := <-ch
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		for _, b := range r.books {
			seen[b.ID] = b
		}
	}
	if firstErr != nil {
		// 条件查询失败意味着数据源依赖故障，属于内部错误
		return nil, firstErr
	}

	// 5. 排序输出
	merged := make([]*Book, 0, len(seen))
	for _, b := range seen {
		merged = append(merged, b)
	}
	return sortByID(merged), nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// sortByID 按图书ID升序排序（图书的自然全序）
func sortByID(books []*Book) []*Book {
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}
