package book

import (
	"time"
)

// Book 图书实体
// 设计说明:
// 1. BookID由调用方提供,同时作为主键(存储层保证唯一)
// 2. Title、Author必填,Description可选
// 3. 实体本身不依赖GORM,模型转换由Repository负责
type Book struct {
	BookID      int64
	Title       string
	Author      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateFields 部分更新字段
// nil表示该字段不更新
type UpdateFields struct {
	Title       *string
	Author      *string
	Description *string
}

// IsEmpty 是否没有任何待更新字段
func (f UpdateFields) IsEmpty() bool {
	return f.Title == nil && f.Author == nil && f.Description == nil
}

// UpdateResult 更新结果
type UpdateResult struct {
	RowsAffected int64
}
