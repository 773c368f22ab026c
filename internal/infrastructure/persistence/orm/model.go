package orm

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gorm.io/gorm"

	"github.com/xiebiao/bookapi/internal/domain/book"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// requiredText 书名、作者的校验规则，创建和更新共用
const requiredText = "required,notblank"

var bookValidator = newBookValidator()

func newBookValidator() *validator.Validate {
	v := validator.New()
	// notblank: 只含空白字符的字符串视为缺失
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// BookModel GORM图书模型
// 1. BookID由调用方提供，关闭自增
// 2. 删除为物理删除，删除后同一BookID可以重新创建
type BookModel struct {
	BookID      int64     `gorm:"primaryKey;autoIncrement:false;comment:图书ID" validate:"required"`
	Title       string    `gorm:"size:200;not null;comment:书名" validate:"required,notblank"`
	Author      string    `gorm:"size:100;not null;comment:作者" validate:"required,notblank"`
	Description string    `gorm:"type:text;comment:图书描述"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate 插入前校验必填字段
func (m *BookModel) BeforeCreate(_ *gorm.DB) error {
	if err := bookValidator.Struct(m); err != nil {
		return apperrors.WithCause(book.ErrInvalidBook, err)
	}
	return nil
}

// validateText 单独校验待更新的书名或作者
func validateText(value string) error {
	if err := bookValidator.Var(value, requiredText); err != nil {
		return apperrors.WithCause(book.ErrInvalidBook, err)
	}
	return nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		BookID:      b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		BookID:      m.BookID,
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
