package book

import (
	"context"
)

// Service 图书服务接口
// 纯透传:每个方法对应一个Repository操作,错误原样返回,不做分类
type Service interface {
	ListBooks(ctx context.Context) ([]*Book, error)
	GetBook(ctx context.Context, id int64) (*Book, error)
	CreateBook(ctx context.Context, book *Book) (*Book, error)
	UpdateBook(ctx context.Context, id int64, fields UpdateFields) (UpdateResult, error)
	DeleteBook(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) GetBook(ctx context.Context, id int64) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook 创建图书,成功时返回回填了时间戳的实体
func (s *service) CreateBook(ctx context.Context, book *Book) (*Book, error) {
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *service) UpdateBook(ctx context.Context, id int64, fields UpdateFields) (UpdateResult, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *service) DeleteBook(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
