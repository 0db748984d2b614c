package dto

import (
	"fmt"
	"strings"

	"github.com/makeoo/recipe-api/pkg/cache"
)

// TagListQuery 标签列表查询参数
type TagListQuery struct {
	Search  string `form:"search" binding:"omitempty,max=50"`
	Limit   int    `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
	Popular bool   `form:"popular"`
}

// Normalize 规范化查询参数
func (q *TagListQuery) Normalize() {
	if q.Limit < 1 {
		q.Limit = 50
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	q.Search = strings.TrimSpace(q.Search)
}

// CacheKey 生成标签列表缓存键，必须在Normalize之后调用
func (q *TagListQuery) CacheKey() string {
	return fmt.Sprintf(cache.TagListKey, q.Search, q.Limit, q.Popular)
}

// TagItem 标签响应项
type TagItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	UsageCount int    `json:"usageCount"`
}
