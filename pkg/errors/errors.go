package errors

import (
	"errors"
	"fmt"
)

// AppError 应用错误
// 设计说明：
// 1. Code是错误的判别字段，上层只根据Code分类，不解析Message文本
// 2. Message是面向调用方的提示信息
// 3. Err是底层原因（数据库驱动错误等），只进日志
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 同Code的AppError视为同一类错误
// 这样 errors.Is(Wrap(...)后的错误, ErrBookDuplicate) 只比较判别字段
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（数据库错误、网络错误），归类为内部错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WithCause 基于预定义错误附加底层原因，保留原Code
func WithCause(base *AppError, err error) *AppError {
	return &AppError{
		Code:    base.Code,
		Message: base.Message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// - 4xxxx: 调用方错误（参数校验、唯一约束）
// - 5xxxx: 服务端错误

const (
	ErrCodeInternal = 50000 // 内部错误

	ErrCodeBookNotFound = 40402 // 图书不存在

	ErrCodeDuplicateEntry = 40009 // 重复记录(唯一键冲突)

	ErrCodeInvalidParams = 40900 // 参数错误(字段缺失/非法)
	ErrCodeBindError     = 40901 // 请求体解析失败
)

// ErrBindError 请求体无法解码，由处理器挂到gin.Context上供访问日志输出
var ErrBindError = New(ErrCodeBindError, "参数格式错误")

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// CodeOf 返回错误的判别码，nil返回0，非AppError返回ErrCodeInternal
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	return GetAppError(err).Code
}
