package dto

import "github.com/xiebiao/bookapi/internal/domain/book"

// CreateBookRequest HTTP创建请求
// 必填校验由存储层完成，这里只负责JSON解析
type CreateBookRequest struct {
	BookID      int64  `json:"bookId" example:"1"`
	Title       string `json:"title" example:"The Hobbit"`
	Author      string `json:"author" example:"J. R. R. Tolkien"`
	Description string `json:"description" example:"Someone finds a nice piece of jewellery while on holiday."`
}

// ToEntity 转换为领域实体
func (r CreateBookRequest) ToEntity() *book.Book {
	return &book.Book{
		BookID:      r.BookID,
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
	}
}

// UpdateBookRequest HTTP更新请求
// 指针字段：未出现在请求体中的字段不更新
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty" example:"The Hobbit"`
	Author      *string `json:"author,omitempty" example:"J. R. R. Tolkien"`
	Description *string `json:"description,omitempty" example:"There and back again."`
}

// ToFields 转换为领域更新字段
func (r UpdateBookRequest) ToFields() book.UpdateFields {
	return book.UpdateFields{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
	}
}

// BookResponse HTTP图书响应
type BookResponse struct {
	BookID      int64  `json:"bookId" example:"1"`
	Title       string `json:"title" example:"The Hobbit"`
	Author      string `json:"author" example:"J. R. R. Tolkien"`
	Description string `json:"description" example:"Someone finds a nice piece of jewellery while on holiday."`
}

// NewBookResponse 领域实体 → 响应
func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		BookID:      b.BookID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
	}
}

// NewBookListResponse 列表响应，空列表序列化为[]
func NewBookListResponse(books []*book.Book) []BookResponse {
	list := make([]BookResponse, len(books))
	for i, b := range books {
		list[i] = NewBookResponse(b)
	}
	return list
}

// UpdateBookResponse HTTP更新响应
type UpdateBookResponse struct {
	RowsAffected int64 `json:"rowsAffected" example:"1"`
}
