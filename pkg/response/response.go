package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构（运维类接口使用）
// Code=0表示成功
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// JSON 指定状态码的JSON响应
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Text 纯文本响应
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// Unhandled 未分类的错误：挂到gin上下文交给日志中间件，返回500
// 不向调用方暴露内部错误信息
func Unhandled(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// Rejected 请求体无法解析：错误按bind类型挂到上下文，返回400和固定文本
func Rejected(c *gin.Context, err error, message string) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.String(http.StatusBadRequest, message)
}
