package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response 统一响应结构
type Response struct {
	Success bool   `json:"success"`           // 是否成功
	Data    any    `json:"data,omitempty"`    // 响应数据
	Error   string `json:"error,omitempty"`   // 错误消息
	Details any    `json:"details,omitempty"` // 错误详情，如字段级校验信息
	Message string `json:"message,omitempty"` // 附加消息
	Cached  bool   `json:"cached,omitempty"`  // 是否命中缓存
}

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`   // 字段名
	Message string `json:"message"` // 错误描述
}

// debugMode 为true时错误响应携带内部错误详情
var debugMode bool

// SetDebugMode 设置调试模式
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// Success 返回成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessCached 返回缓存命中的成功响应
func SuccessCached(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Cached:  true,
	})
}

// Created 返回创建成功响应
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string, err error) {
	// 记录详细错误信息，但不向客户端暴露
	resp := Response{
		Success: false,
		Error:   message,
	}
	if err != nil {
		c.Error(err)
		if debugMode {
			resp.Details = gin.H{"error": err.Error()}
		}
	}

	c.JSON(code, resp)
}

// ErrorWithDetails 携带详情的错误响应
func ErrorWithDetails(c *gin.Context, code int, message string, details any) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// ValidationError 参数校验错误响应，逐项列出所有未通过的字段
func ValidationError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		ErrorWithDetails(c, http.StatusBadRequest, "参数校验失败", details)
		return
	}

	Error(c, http.StatusBadRequest, "参数校验失败", err)
}

// BadRequest 400错误响应
func BadRequest(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// NotFound 404错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict 409错误响应
func Conflict(c *gin.Context, message string, err error) {
	Error(c, http.StatusConflict, message, err)
}

// InternalServerError 500错误响应
func InternalServerError(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}

// NotImplemented 501错误响应
func NotImplemented(c *gin.Context, message string) {
	c.JSON(http.StatusNotImplemented, Response{
		Success: false,
		Error:   message,
		Message: "该功能将在后续版本中提供",
	})
}

// validationMessage 将校验标签转换为可读的错误描述
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "min":
		return "不能小于" + fe.Param()
	case "max":
		return "不能大于" + fe.Param()
	case "oneof":
		return "必须是[" + fe.Param() + "]中的一个"
	case "email":
		return "必须是有效的邮箱地址"
	default:
		return "校验失败"
	}
}
