package tag

import (
	"context"

	"github.com/xiebiao/mybooks/internal/domain/tag"
	"github.com/xiebiao/mybooks/pkg/window"
)

// =========================================
// 标签用例集合
// =========================================

// TagView 标签视图DTO
type TagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Data string `json:"data,omitempty"`
}

func toTagView(t *tag.Tag) TagView {
	return TagView{ID: t.ID, Name: t.Name, Data: t.Data}
}

// CreateTagUseCase 标签创建用例
type CreateTagUseCase struct {
	tagService tag.Service
}

// NewCreateTagUseCase 创建标签创建用例
func NewCreateTagUseCase(tagService tag.Service) *CreateTagUseCase {
	return &CreateTagUseCase{tagService: tagService}
}

// Execute 执行标签创建（名称重复返回409）
func (uc *CreateTagUseCase) Execute(ctx context.Context, name, data string) (*TagView, error) {
	created, err := uc.tagService.CreateTag(ctx, name, data)
	if err != nil {
		return nil, err
	}
	view := toTagView(created)
	return &view, nil
}

// GetTagUseCase 标签详情用例
type GetTagUseCase struct {
	tagService tag.Service
}

// NewGetTagUseCase 创建标签详情用例
func NewGetTagUseCase(tagService tag.Service) *GetTagUseCase {
	return &GetTagUseCase{tagService: tagService}
}

// Execute 执行详情查询（不存在返回404）
func (uc *GetTagUseCase) Execute(ctx context.Context, id uint) (*TagView, error) {
	t, err := uc.tagService.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toTagView(t)
	return &view, nil
}

// ListTagsUseCase 标签列表用例
type ListTagsUseCase struct {
	tagService tag.Service
}

// NewListTagsUseCase 创建标签列表用例
func NewListTagsUseCase(tagService tag.Service) *ListTagsUseCase {
	return &ListTagsUseCase{tagService: tagService}
}

// Execute 执行列表查询
func (uc *ListTagsUseCase) Execute(ctx context.Context, start, segmentSize *int) (*window.Page[TagView], error) {
	tags, err := uc.tagService.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TagView, len(tags))
	for i, t := range tags {
		views[i] = toTagView(t)
	}

	page := window.Paginate(views, start, segmentSize)
	return &page, nil
}

// UpdateTagUseCase 标签更新用例
type UpdateTagUseCase struct {
	tagService tag.Service
}

// NewUpdateTagUseCase 创建标签更新用例
func NewUpdateTagUseCase(tagService tag.Service) *UpdateTagUseCase {
	return &UpdateTagUseCase{tagService: tagService}
}

// Execute 执行标签更新（不存在返回404，新名称冲突返回409）
func (uc *UpdateTagUseCase) Execute(ctx context.Context, id uint, name, data string) (*TagView, error) {
	updated, err := uc.tagService.UpdateTag(ctx, id, name, data)
	if err != nil {
		return nil, err
	}
	view := toTagView(updated)
	return &view, nil
}

// DeleteTagUseCase 标签删除用例
type DeleteTagUseCase struct {
	tagService tag.Service
}

// NewDeleteTagUseCase 创建标签删除用例
func NewDeleteTagUseCase(tagService tag.Service) *DeleteTagUseCase {
	return &DeleteTagUseCase{tagService: tagService}
}

// Execute 执行标签删除（不存在返回404）
func (uc *DeleteTagUseCase) Execute(ctx context.Context, id uint) error {
	return uc.tagService.DeleteTag(ctx, id)
}
