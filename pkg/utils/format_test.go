package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssetURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{"相对路径拼接", "http://localhost:8080/storage", "covers/a.jpg", "http://localhost:8080/storage/covers/a.jpg"},
		{"base带尾斜杠", "http://localhost:8080/storage/", "covers/a.jpg", "http://localhost:8080/storage/covers/a.jpg"},
		{"path带头斜杠", "http://localhost:8080/storage", "/covers/a.jpg", "http://localhost:8080/storage/covers/a.jpg"},
		{"绝对http原样返回", "http://localhost:8080/storage", "http://cdn.example.com/a.jpg", "http://cdn.example.com/a.jpg"},
		{"绝对https原样返回", "http://localhost:8080/storage", "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"空路径返回空", "http://localhost:8080/storage", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssetURL(tt.baseURL, tt.path))
		})
	}
}

// 已拼接过的URL再次经过序列化不应被二次拼接
func TestAssetURLIdempotent(t *testing.T) {
	base := "http://localhost:8080/storage"
	once := AssetURL(base, "covers/a.jpg")
	assert.Equal(t, once, AssetURL(base, once))
}

func TestAssetURLs(t *testing.T) {
	base := "http://localhost:8080/storage"
	got := AssetURLs(base, []string{"a.jpg", "https://cdn.example.com/b.jpg"})
	assert.Equal(t, []string{
		"http://localhost:8080/storage/a.jpg",
		"https://cdn.example.com/b.jpg",
	}, got)

	assert.Empty(t, AssetURLs(base, nil))
}

func TestFormatMonthYear(t *testing.T) {
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 2024", FormatMonthYear(d))
	assert.Equal(t, "", FormatMonthYear(time.Time{}))
}
