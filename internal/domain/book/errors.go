package book

import (
	apperrors "github.com/xiebiao/bookapi/pkg/errors"
)

// 图书领域错误定义
// 上层通过Code区分错误类别,Message仅供日志
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrBookDuplicate bookId已存在
	ErrBookDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "bookId已存在")

	// ErrInvalidBook 必填字段缺失或非法
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidParams, "图书信息不完整")
)
