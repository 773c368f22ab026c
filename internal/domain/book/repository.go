package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义,infrastructure层实现
type Repository interface {
	// List 查询全部图书,按BookID升序
	List(ctx context.Context) ([]*Book, error)

	// FindByID 根据BookID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id int64) (*Book, error)

	// Create 创建图书
	// 唯一键冲突返回ErrBookDuplicate,必填字段缺失返回ErrInvalidBook
	Create(ctx context.Context, book *Book) error

	// Update 按BookID部分更新,id不存在时RowsAffected为0
	Update(ctx context.Context, id int64, fields UpdateFields) (UpdateResult, error)

	// Delete 按BookID删除,返回删除的行数(0或1)
	Delete(ctx context.Context, id int64) (int64, error)
}
