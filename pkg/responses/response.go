package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-cms/pkg/errors"
)

// Response 统一响应结构
// 所有接口（成功或失败）都使用该信封，前端依赖 success 字段判断结果
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Error   *string           `json:"error,omitempty"`  // 仅debug模式返回底层错误
	Errors  map[string]string `json:"errors,omitempty"` // 字段级验证错误
}

// Pagination 分页元数据
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
}

// PageData 分页数据载荷
type PageData struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// NewPagination 计算分页元数据（last_page向上取整，至少为1）
func NewPagination(total int64, page, perPage int) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Pagination{
		Total:       total,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// PageSuccess 分页成功响应
func PageSuccess(c *gin.Context, items interface{}, total int64, page, perPage int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "success",
		Data: PageData{
			Items:      items,
			Pagination: NewPagination(total, page, perPage),
		},
	})
}

// ValidationFailed 验证失败响应
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  fields,
	})
}

// Responder 错误响应器
// debug开关通过配置显式注入，决定失败信封中是否携带底层错误信息
type Responder struct {
	Debug bool
}

// NewResponder 创建错误响应器
func NewResponder(debug bool) Responder {
	return Responder{Debug: debug}
}

// Error 错误响应
// AppError按其错误码映射HTTP状态；未知错误统一按500处理
func (r Responder) Error(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Code == errors.CodeValidationError && appErr.Fields != nil {
			ValidationFailed(c, appErr.Fields)
			return
		}

		resp := Response{
			Success: false,
			Message: appErr.Message,
		}
		if r.Debug && appErr.Err != nil {
			detail := appErr.Err.Error()
			resp.Error = &detail
		}
		c.JSON(appErr.Code, resp)
		return
	}

	resp := Response{
		Success: false,
		Message: "Internal server error",
	}
	if r.Debug {
		detail := err.Error()
		resp.Error = &detail
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// ErrorWithCode 自定义错误响应
func (r Responder) ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}
