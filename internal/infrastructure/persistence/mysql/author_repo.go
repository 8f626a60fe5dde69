package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mybooks/internal/domain/author"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// authorRepository 作者仓储的MySQL实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := authorModelFromEntity(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.NewConflict(author.ErrAuthorDuplicate.Message, err)
		}
		return apperrors.Wrap(err, "创建作者失败")
	}

	// 回写自增ID
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	return model.ToEntity(), nil
}

func (r *authorRepository) FindByName(ctx context.Context, name string) ([]*author.Author, error) {
	var models []AuthorModel
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按姓名查询作者失败")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func toAuthorEntities(models []AuthorModel) []*author.Author {
	entities := make([]*author.Author, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].ToEntity())
	}
	return entities
}
