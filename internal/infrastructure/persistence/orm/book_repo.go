package orm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookapi/internal/domain/book"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责领域实体与GORM模型之间的转换
// 3. 把驱动错误(唯一约束冲突、记录不存在)转换为领域错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// List 查询全部图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("book_id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// FindByID 根据BookID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, "book_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Create 创建图书
// 必填校验在BookModel.BeforeCreate中完成
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, book.ErrInvalidBook) {
			return err
		}
		if isDuplicateError(err) {
			return apperrors.WithCause(book.ErrBookDuplicate, err)
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 按BookID部分更新
// 只更新非nil字段；Title、Author与创建时使用同一校验规则
func (r *bookRepository) Update(ctx context.Context, id int64, fields book.UpdateFields) (book.UpdateResult, error) {
	if fields.IsEmpty() {
		return book.UpdateResult{}, nil
	}

	updates := make(map[string]interface{}, 3)
	if fields.Title != nil {
		if err := validateText(*fields.Title); err != nil {
			return book.UpdateResult{}, err
		}
		updates["title"] = *fields.Title
	}
	if fields.Author != nil {
		if err := validateText(*fields.Author); err != nil {
			return book.UpdateResult{}, err
		}
		updates["author"] = *fields.Author
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}

	result := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Where("book_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return book.UpdateResult{}, apperrors.Wrap(result.Error, "更新图书失败")
	}

	return book.UpdateResult{RowsAffected: result.RowsAffected}, nil
}

// Delete 按BookID物理删除
func (r *bookRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("book_id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "删除图书失败")
	}
	return result.RowsAffected, nil
}
