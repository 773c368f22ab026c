package handler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
	"github.com/xiebiao/bookapi/pkg/response"
)

// 固定的响应文本，调用方按文本匹配
const (
	msgBookExists  = "The book already exists"
	msgInvalidBook = "Invalid book details"
)

// BookHandler 图书HTTP处理器
// 只负责把服务层结果映射为状态码和响应体，不持有跨请求状态
type BookHandler struct {
	bookService book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// RegisterRoutes 注册 /books 路由
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:bookId", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:bookId", h.UpdateBook)
		books.PATCH("/:bookId", h.UpdateBook)
		books.DELETE("/:bookId", h.DeleteBook)
	}
}

// ListBooks 查询全部图书
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		response.Unhandled(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewBookListResponse(books))
}

// GetBook 查询单本图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {string} string "Book with id <bookId> was not found"
// @Router       /books/{bookId} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	rawID := c.Param("bookId")

	// 无法解析的id与不存在的id行为一致
	id, ok := coerceBookID(rawID)
	if !ok {
		response.Text(c, http.StatusNotFound, notFoundMessage(rawID))
		return
	}

	b, err := h.bookService.GetBook(c.Request.Context(), id)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrCodeBookNotFound {
			response.Text(c, http.StatusNotFound, notFoundMessage(rawID))
			return
		}
		response.Unhandled(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewBookResponse(b))
}

// CreateBook 创建图书
// @Summary      创建图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 {string} string "The book already exists | Invalid book details"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Rejected(c, apperrors.WithCause(apperrors.ErrBindError, err), msgInvalidBook)
		return
	}

	b, err := h.bookService.CreateBook(c.Request.Context(), req.ToEntity())
	if err != nil {
		switch apperrors.CodeOf(err) {
		case apperrors.ErrCodeDuplicateEntry:
			response.Text(c, http.StatusBadRequest, msgBookExists)
		case apperrors.ErrCodeInvalidParams:
			response.Text(c, http.StatusBadRequest, msgInvalidBook)
		default:
			response.Unhandled(c, err)
		}
		return
	}
	response.JSON(c, http.StatusCreated, dto.NewBookResponse(b))
}

// UpdateBook 部分更新图书
// 空请求体视为没有待更新字段；id取前导数字，如 2abc → 2
// 204时net/http不会发送响应体，更新结果只有服务端日志可见
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Param        bookId  path string                true "图书ID"
// @Param        request body dto.UpdateBookRequest true "待更新字段"
// @Success      204 {object} dto.UpdateBookResponse
// @Router       /books/{bookId} [put]
// @Router       /books/{bookId} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Rejected(c, apperrors.WithCause(apperrors.ErrBindError, err), msgInvalidBook)
		return
	}

	var result book.UpdateResult
	if id, ok := leadingBookID(c.Param("bookId")); ok {
		var err error
		result, err = h.bookService.UpdateBook(c.Request.Context(), id, req.ToFields())
		if err != nil {
			response.Unhandled(c, err)
			return
		}
	}
	response.JSON(c, http.StatusNoContent, dto.UpdateBookResponse{RowsAffected: result.RowsAffected})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      plain
// @Param        bookId path string true "图书ID"
// @Success      200 {string} string "Book with id <bookId> has been successfully deleted"
// @Failure      404 {string} string "Book with id <bookId> was not found"
// @Router       /books/{bookId} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	rawID := c.Param("bookId")

	var deleted int64
	if id, ok := coerceBookID(rawID); ok {
		var err error
		deleted, err = h.bookService.DeleteBook(c.Request.Context(), id)
		if err != nil {
			response.Unhandled(c, err)
			return
		}
	}

	if deleted == 0 {
		response.Text(c, http.StatusNotFound, notFoundMessage(rawID))
		return
	}
	response.Text(c, http.StatusOK, fmt.Sprintf("Book with id %s has been successfully deleted", rawID))
}

// coerceBookID 按数值语义转换路径参数，用于查询和删除
// 接受 1、1.0、1e0、0x1 等整数值写法，小数、NaN、Infinity 视为无法解析
func coerceBookID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		id, err := strconv.ParseInt(s, 0, 64)
		return id, err == nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// leadingBookID 取路径参数的前导整数，用于更新
// 可带正负号，0x前缀按十六进制，遇到第一个非数字字符停止
func leadingBookID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, digits := 10, "0123456789"
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, digits = 16, "0123456789abcdefABCDEF"
		s = s[2:]
	}

	end := 0
	for end < len(s) && strings.IndexByte(digits, s[end]) >= 0 {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		id = -id
	}
	return id, true
}

func notFoundMessage(rawID string) string {
	return fmt.Sprintf("Book with id %s was not found", rawID)
}
