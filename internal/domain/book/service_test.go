package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockRepository Repository的testify mock
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]*Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]*Book)
	return books, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*Book)
	return b, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, b *Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, id int64, fields UpdateFields) (UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(UpdateResult), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_ListBooks(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	books := []*Book{{BookID: 1, Title: "The Hobbit", Author: "J. R. R. Tolkien"}}
	repo.On("List", ctx).Return(books, nil)

	got, err := NewService(repo).ListBooks(ctx)

	require.NoError(t, err)
	assert.Equal(t, books, got)
	repo.AssertExpectations(t)
}

func TestService_GetBook(t *testing.T) {
	ctx := context.Background()

	t.Run("找到图书", func(t *testing.T) {
		repo := new(mockRepository)
		want := &Book{BookID: 2, Title: "The Shop Before Life", Author: "Neil Hughes"}
		repo.On("FindByID", ctx, int64(2)).Return(want, nil)

		got, err := NewService(repo).GetBook(ctx, 2)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("不存在时原样返回ErrBookNotFound", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByID", ctx, int64(9)).Return(nil, ErrBookNotFound)

		got, err := NewService(repo).GetBook(ctx, 9)

		assert.Nil(t, got)
		assert.Same(t, ErrBookNotFound, err)
	})
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("成功返回同一实体", func(t *testing.T) {
		repo := new(mockRepository)
		b := &Book{BookID: 3, Title: "T", Author: "A"}
		repo.On("Create", ctx, b).Return(nil)

		got, err := NewService(repo).CreateBook(ctx, b)

		require.NoError(t, err)
		assert.Same(t, b, got)
	})

	t.Run("错误不做分类直接透传", func(t *testing.T) {
		for _, wantErr := range []error{ErrBookDuplicate, ErrInvalidBook, errors.New("disk full")} {
			repo := new(mockRepository)
			b := &Book{BookID: 3}
			repo.On("Create", ctx, b).Return(wantErr)

			got, err := NewService(repo).CreateBook(ctx, b)

			assert.Nil(t, got)
			assert.Same(t, wantErr, err)
		}
	})
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	title := "New title"
	fields := UpdateFields{Title: &title}
	repo.On("Update", ctx, int64(1), fields).Return(UpdateResult{RowsAffected: 1}, nil)

	got, err := NewService(repo).UpdateBook(ctx, 1, fields)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.RowsAffected)
	repo.AssertExpectations(t)
}

func TestService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("Delete", ctx, int64(1)).Return(int64(1), nil)
	repo.On("Delete", ctx, int64(2)).Return(int64(0), nil)

	svc := NewService(repo)

	n, err := svc.DeleteBook(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.DeleteBook(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateFields_IsEmpty(t *testing.T) {
	assert.True(t, UpdateFields{}.IsEmpty())
	desc := ""
	assert.False(t, UpdateFields{Description: &desc}.IsEmpty())
}
