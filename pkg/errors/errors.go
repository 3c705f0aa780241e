package errors

import "fmt"

// 错误码（与HTTP状态码一致）
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeValidationError = 422
	CodeInternalError   = 500
	CodeDatabaseError   = 500
)

// AppError 应用错误
type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // 字段级验证错误
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidation 创建带字段错误的验证错误
func NewValidation(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: message,
		Fields:  fields,
	}
}

// 预定义错误
var (
	ErrBadRequest    = New(CodeBadRequest, "Invalid request parameters")
	ErrNotFound      = New(CodeNotFound, "Resource not found")
	ErrInternalError = New(CodeInternalError, "Internal server error")
	ErrDatabaseError = New(CodeDatabaseError, "Database error")

	// 具体业务错误
	ErrProjectNotFound     = New(CodeNotFound, "Project not found")
	ErrAwardNotFound       = New(CodeNotFound, "Award not found")
	ErrArticleNotFound     = New(CodeNotFound, "Press article not found")
	ErrBlogNotFound        = New(CodeNotFound, "Blog post not found")
	ErrHeroProjectNotFound = New(CodeNotFound, "Hero project not found")
	ErrEnquiryNotFound     = New(CodeNotFound, "Contact enquiry not found")
	ErrInvalidCategory     = New(CodeNotFound, "Invalid category")
)
