package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mybooks/internal/domain/userbook"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// userBookRepository 书架仓储的MySQL实现
type userBookRepository struct {
	db *gorm.DB
}

// NewUserBookRepository 创建书架仓储
func NewUserBookRepository(db *gorm.DB) userbook.Repository {
	return &userBookRepository{db: db}
}

func (r *userBookRepository) Create(ctx context.Context, ub *userbook.UserBook) error {
	model := userBookModelFromEntity(ub)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "添加书架记录失败")
	}

	ub.ID = model.ID
	ub.DateAdded = model.DateAdded
	return nil
}

func (r *userBookRepository) FindByID(ctx context.Context, id uint) (*userbook.UserBook, error) {
	var model UserBookModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userbook.ErrUserBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询书架记录失败")
	}
	return model.ToEntity(), nil
}

func (r *userBookRepository) FindByUser(ctx context.Context, userID uint) ([]*userbook.UserBook, error) {
	var models []UserBookModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询用户书架失败")
	}

	entities := make([]*userbook.UserBook, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].ToEntity())
	}
	return entities, nil
}

func (r *userBookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&UserBookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书架记录失败")
	}
	if result.RowsAffected == 0 {
		return userbook.ErrUserBookNotFound
	}
	return nil
}
