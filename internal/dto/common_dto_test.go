package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryGetPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"未传页码默认第一页", 0, 1},
		{"负数按第一页处理", -3, 1},
		{"正常页码", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PageQuery{Page: tt.page}
			assert.Equal(t, tt.want, q.GetPage())
		})
	}
}

func TestPageQueryGetPerPage(t *testing.T) {
	tests := []struct {
		name        string
		perPage     int
		defaultSize int
		want        int
	}{
		{"未传使用默认值", 0, 12, 12},
		{"未传使用博客默认值", 0, 6, 6},
		{"正常值", 24, 12, 24},
		{"超上限按100截断", 500, 12, 100},
		{"负数使用默认值", -1, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PageQuery{PerPage: tt.perPage}
			assert.Equal(t, tt.want, q.GetPerPage(tt.defaultSize))
		})
	}
}

func TestPageQueryGetOffset(t *testing.T) {
	q := PageQuery{Page: 3, PerPage: 10}
	assert.Equal(t, 20, q.GetOffset(12))

	first := PageQuery{}
	assert.Equal(t, 0, first.GetOffset(12))
}
