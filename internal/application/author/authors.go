package author

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/author"
	"github.com/xiebiao/mybooks/pkg/window"
)

// =========================================
// 作者用例集合
// =========================================

// AuthorView 作者视图DTO
type AuthorView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	BirthDate   string   `json:"birth_date,omitempty"`
	OlKey       string   `json:"ol_key,omitempty"`
	ImageSmall  string   `json:"image_small,omitempty"`
	ImageMedium string   `json:"image_medium,omitempty"`
	ImageLarge  string   `json:"image_large,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
}

func toAuthorView(a *author.Author) AuthorView {
	return AuthorView{
		ID:          a.ID,
		Name:        a.Name,
		BirthDate:   a.BirthDate,
		OlKey:       a.OlKey,
		ImageSmall:  a.ImageSmall,
		ImageMedium: a.ImageMedium,
		ImageLarge:  a.ImageLarge,
		Subjects:    a.Subjects,
	}
}

// CreateAuthorUseCase 作者创建用例
type CreateAuthorUseCase struct {
	authorService author.Service
}

// NewCreateAuthorUseCase 创建作者创建用例
func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

// CreateAuthorRequest 创建请求DTO
type CreateAuthorRequest struct {
	Name        string
	BirthDate   string
	OlKey       string
	ImageSmall  string
	ImageMedium string
	ImageLarge  string
	Subjects    []string
}

// Execute 执行作者创建（姓名重复返回409）
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorView, error) {
	created, err := uc.authorService.CreateAuthor(ctx, &author.Author{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		OlKey:       req.OlKey,
		ImageSmall:  req.ImageSmall,
		ImageMedium: req.ImageMedium,
		ImageLarge:  req.ImageLarge,
		Subjects:    req.Subjects,
	})
	if err != nil {
		return nil, err
	}

	view := toAuthorView(created)
	return &view, nil
}

// GetAuthorUseCase 作者详情用例
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建作者详情用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// Execute 执行详情查询（不存在返回404）
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorView, error) {
	a, err := uc.authorService.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toAuthorView(a)
	return &view, nil
}

// ListAuthorsUseCase 作者列表用例
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// ListAuthorsRequest 列表请求DTO
type ListAuthorsRequest struct {
	Name        string // 姓名子串，空串表示不过滤
	Start       *int
	SegmentSize *int
}

// Execute 执行列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, req ListAuthorsRequest) (*window.Page[AuthorView], error) {
	authors, err := uc.authorService.ListAuthors(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	views := make([]AuthorView, len(authors))
	for i, a := range authors {
		views[i] = toAuthorView(a)
	}

	page := window.Paginate(views, req.Start, req.SegmentSize)
	return &page, nil
}

// DeleteAuthorUseCase 作者删除用例
type DeleteAuthorUseCase struct {
	authorService author.Service
}

// NewDeleteAuthorUseCase 创建作者删除用例
func NewDeleteAuthorUseCase(authorService author.Service) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorService: authorService}
}

// Execute 执行作者删除（不存在返回404）
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	return uc.authorService.DeleteAuthor(ctx, id)
}
