package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mybooks/internal/domain/tag"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// tagRepository 标签仓储的MySQL实现
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓储
func NewTagRepository(db *gorm.DB) tag.Repository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, t *tag.Tag) error {
	model := tagModelFromEntity(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.NewConflict(tag.ErrTagDuplicate.Message, err)
		}
		return apperrors.Wrap(err, "创建标签失败")
	}

	t.ID = model.ID
	t.CreatedAt = model.CreatedAt
	t.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *tagRepository) FindByID(ctx context.Context, id uint) (*tag.Tag, error) {
	var model TagModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tag.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "查询标签失败")
	}
	return model.ToEntity(), nil
}

func (r *tagRepository) FindAll(ctx context.Context) ([]*tag.Tag, error) {
	var models []TagModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询标签列表失败")
	}

	entities := make([]*tag.Tag, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].ToEntity())
	}
	return entities, nil
}

func (r *tagRepository) Update(ctx context.Context, t *tag.Tag) error {
	model := tagModelFromEntity(t)

	result := r.db.WithContext(ctx).Model(&TagModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name": model.Name,
			"data": model.Data,
		})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return apperrors.NewConflict(tag.ErrTagDuplicate.Message, result.Error)
		}
		return apperrors.Wrap(result.Error, "更新标签失败")
	}
	if result.RowsAffected == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&TagModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除标签失败")
	}
	if result.RowsAffected == 0 {
		return tag.ErrTagNotFound
	}
	return nil
}
