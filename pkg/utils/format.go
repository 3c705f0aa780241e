package utils

import (
	"strings"
	"time"
)

// AssetURL 拼接资源完整URL
// 存储的相对路径与baseURL拼接；已经是绝对URL的值原样返回，避免二次拼接
func AssetURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// AssetURLs 对路径列表逐项拼接资源URL
func AssetURLs(baseURL string, paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = AssetURL(baseURL, p)
	}
	return result
}

// FormatMonthYear 格式化为展示用的"月 年"形式（如 "March 2024"）
// 仅用于展示字段，不修改存储值
func FormatMonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2006")
}
