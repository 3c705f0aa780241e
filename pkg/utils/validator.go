package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap 将绑定错误转换为字段级错误映射
// key为字段的snake_case名称，value为可读的错误说明
func ValidationErrorMap(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	// 处理validator的验证错误
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			name := ToSnakeCase(e.Field())
			fields[name] = formatFieldError(name, e)
		}
		return fields
	}

	// 处理JSON解析错误
	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		name := jsonErr.Field
		if name == "" {
			name = "body"
		}
		fields[name] = fmt.Sprintf("The %s field should be of type %s.", name, jsonErr.Type.String())
		return fields
	}

	// 处理JSON语法错误
	if _, ok := err.(*json.SyntaxError); ok {
		fields["body"] = "The request body is not valid JSON."
		return fields
	}

	fields["body"] = err.Error()
	return fields
}

// formatFieldError 格式化单个字段的验证错误
func formatFieldError(name string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters.", name, e.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", name, e.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", name, e.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", name)
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s.", name, e.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s.", name, e.Param())
	case "numeric":
		return fmt.Sprintf("The %s field must be numeric.", name)
	default:
		return fmt.Sprintf("The %s field failed validation on the '%s' rule.", name, e.Tag())
	}
}

// ToSnakeCase 将驼峰字段名转换为snake_case
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// 连续大写（如URL）视为一个单词
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
