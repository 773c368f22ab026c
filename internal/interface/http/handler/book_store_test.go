package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/orm"
	"github.com/xiebiao/bookapi/internal/interface/http/dto"
)

// 以下测试使用真实的GORM仓储(sqlite内存库)，覆盖处理器到存储的完整链路

func newStoreRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Dialect: config.DialectSQLite, DBName: ":memory:"},
	}
	db, err := orm.NewDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if seed {
		require.NoError(t, orm.Seed(context.Background(), db, zap.NewNop()))
	}

	return newTestRouter(book.NewService(orm.NewBookRepository(db)))
}

func TestBookStore_EmptyList(t *testing.T) {
	r := newStoreRouter(t, false)

	w := doRequest(r, http.MethodGet, "/api/v1/books", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBookStore_SeededScenario(t *testing.T) {
	r := newStoreRouter(t, true)

	w := doRequest(r, http.MethodGet, "/api/v1/books", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = doRequest(r, http.MethodGet, "/api/v1/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"bookId": 1,
		"title": "The Hobbit",
		"author": "J. R. R. Tolkien",
		"description": "Someone finds a nice piece of jewellery while on holiday."
	}`, w.Body.String())

	w = doRequest(r, http.MethodDelete, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book with id 1 has been successfully deleted", w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book with id 1 was not found", w.Body.String())

	w = doRequest(r, http.MethodDelete, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book with id 1 was not found", w.Body.String())
}

func TestBookStore_CreateTaxonomy(t *testing.T) {
	r := newStoreRouter(t, true)

	w := doRequest(r, http.MethodPost, "/api/v1/books",
		`{"bookId":3,"title":"Matilda","author":"Roald Dahl","description":""}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"bookId":3,"title":"Matilda","author":"Roald Dahl","description":""}`, w.Body.String())

	w = doRequest(r, http.MethodPost, "/api/v1/books",
		`{"bookId":2,"title":"Duplicate","author":"Someone"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The book already exists", w.Body.String())

	for _, body := range []string{
		`{"title":"No id","author":"Someone"}`,
		`{"bookId":4,"author":"Someone"}`,
		`{"bookId":5,"title":"No author"}`,
	} {
		w = doRequest(r, http.MethodPost, "/api/v1/books", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Invalid book details", w.Body.String(), body)
	}
}

func TestBookStore_UpdateThenGet(t *testing.T) {
	r := newStoreRouter(t, true)

	w := doRequest(r, http.MethodPatch, "/api/v1/books/2", `{"description":"A shop that sells lives."}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/books/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "A shop that sells lives.", got.Description)
	assert.Equal(t, "The Shop Before Life", got.Title)
}

func TestBookStore_MissingIDs(t *testing.T) {
	r := newStoreRouter(t, true)

	for _, id := range []string{"0", "77", "-1", "abc"} {
		w := doRequest(r, http.MethodGet, "/api/v1/books/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, fmt.Sprintf("Book with id %s was not found", id), w.Body.String())
	}
}

func TestBookStore_NumericIDForms(t *testing.T) {
	r := newStoreRouter(t, true)

	for _, id := range []string{"1.0", "0x1", "1e0", "+1"} {
		w := doRequest(r, http.MethodGet, "/api/v1/books/"+id, "")
		require.Equal(t, http.StatusOK, w.Code, id)
		var got dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "The Hobbit", got.Title, id)
	}

	w := doRequest(r, http.MethodPatch, "/api/v1/books/2abc", `{"author":"N. Hughes"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/books/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "N. Hughes", got.Author)

	// 删除提示保留原始写法
	w = doRequest(r, http.MethodDelete, "/api/v1/books/1.0", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Book with id 1.0 has been successfully deleted", w.Body.String())
}

func TestBookStore_EmptyUpdateBody(t *testing.T) {
	r := newStoreRouter(t, true)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/books/1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "J. R. R. Tolkien", got.Author)
}
