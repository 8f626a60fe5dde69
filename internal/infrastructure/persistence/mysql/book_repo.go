package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mybooks/internal/domain/book"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// bookRepository 图书仓储的MySQL实现
// 设计说明：各查询方法只读且互不依赖，领域服务会并发调用它们做并集合并，
// gorm.DB本身并发安全，无需额外同步
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := bookModelFromEntity(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.NewConflict(book.ErrBookDuplicate.Message, err)
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return model.ToEntity(), nil
}

func (r *bookRepository) FindByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("title LIKE ?", "%"+title+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按书名查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByIDs(ctx context.Context, ids []uint) ([]*book.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []BookModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "按ID集合查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*book.Book, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	var models []BookModel
	if err := r.db.WithContext(ctx).Where("author_id IN ?", authorIDs).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "按作者查询图书失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func toBookEntities(models []BookModel) []*book.Book {
	entities := make([]*book.Book, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].ToEntity())
	}
	return entities
}
