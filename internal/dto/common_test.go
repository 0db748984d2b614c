package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Pagination
	}{
		{
			name: "空结果", page: 1, limit: 12, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, HasNext: false, HasPrev: false, Limit: 12},
		},
		{
			name: "不满一页", page: 1, limit: 12, total: 5,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 5, HasNext: false, HasPrev: false, Limit: 12},
		},
		{
			name: "中间页前后都有", page: 2, limit: 12, total: 25,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true, Limit: 12},
		},
		{
			name: "最后一页没有下一页", page: 3, limit: 12, total: 25,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNext: false, HasPrev: true, Limit: 12},
		},
		{
			name: "整除时页数不多算", page: 1, limit: 10, total: 30,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 30, HasNext: true, HasPrev: false, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}
