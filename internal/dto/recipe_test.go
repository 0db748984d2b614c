package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeListQueryNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query RecipeListQuery
		want  RecipeListQuery
	}{
		{
			name:  "零值回落到默认值",
			query: RecipeListQuery{},
			want:  RecipeListQuery{Page: 1, Limit: 12, Sort: "newest"},
		},
		{
			name:  "负数页码修正为1",
			query: RecipeListQuery{Page: -3, Limit: 20, Sort: "oldest"},
			want:  RecipeListQuery{Page: 1, Limit: 20, Sort: "oldest"},
		},
		{
			name:  "超大limit收敛到上限",
			query: RecipeListQuery{Page: 2, Limit: 999, Sort: "likes"},
			want:  RecipeListQuery{Page: 2, Limit: 50, Sort: "likes"},
		},
		{
			name:  "搜索词去掉首尾空白",
			query: RecipeListQuery{Page: 1, Limit: 12, Sort: "newest", Search: "  木工  "},
			want:  RecipeListQuery{Page: 1, Limit: 12, Sort: "newest", Search: "木工"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Normalize()
			assert.Equal(t, tt.want, tt.query)
		})
	}
}

func TestRecipeListQueryTagList(t *testing.T) {
	q := RecipeListQuery{Tags: "eco, recycle ,,wood"}
	assert.Equal(t, []string{"eco", "recycle", "wood"}, q.TagList())

	empty := RecipeListQuery{}
	assert.Nil(t, empty.TagList())
}

func TestRecipeListQueryOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"newest", "recipes.created_at DESC"},
		{"oldest", "recipes.created_at ASC"},
		{"popular", "recipes.views_count DESC"},
		{"likes", "recipes.likes_count DESC"},
		{"", "recipes.created_at DESC"},
	}

	for _, tt := range tests {
		q := RecipeListQuery{Sort: tt.sort}
		assert.Equal(t, tt.want, q.OrderClause(), "sort=%s", tt.sort)
	}
}

func TestRecipeListQueryOffset(t *testing.T) {
	q := RecipeListQuery{Page: 3, Limit: 12}
	assert.Equal(t, 24, q.Offset())
}

// 等效的查询参数必须映射到同一个缓存键
func TestRecipeListQueryCacheKeyStable(t *testing.T) {
	a := RecipeListQuery{Page: 1, Limit: 12, Tags: "eco,recycle", Search: " 花盆 ", Sort: "newest"}
	b := RecipeListQuery{Page: 1, Limit: 12, Tags: "eco, recycle ", Search: "花盆", Sort: "newest"}
	a.Normalize()
	b.Normalize()
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := RecipeListQuery{Page: 2, Limit: 12, Tags: "eco,recycle", Search: "花盆", Sort: "newest"}
	c.Normalize()
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestToolInputEssential(t *testing.T) {
	truthy := true
	falsy := false

	assert.True(t, (&ToolInput{}).Essential(), "未传isRequired时默认必需")
	assert.True(t, (&ToolInput{IsRequired: &truthy}).Essential())
	assert.False(t, (&ToolInput{IsRequired: &falsy}).Essential())
}

func bindCreateRequest(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req RecipeCreateRequest
	return c.ShouldBindJSON(&req)
}

// materials/tools/steps三个数组必传，空数组合法，缺失拒绝
func TestRecipeCreateRequestRequiresChildArrays(t *testing.T) {
	valid := `{
		"title": "旧木板置物架",
		"description": "用回收旧木板做一个简单实用的置物架。",
		"difficulty": "beginner",
		"estimatedTimeMinutes": 30,
		"categoryId": 1,
		"materials": [],
		"tools": [],
		"steps": []
	}`
	require.NoError(t, bindCreateRequest(t, valid))

	missingArrays := `{
		"title": "旧木板置物架",
		"description": "用回收旧木板做一个简单实用的置物架。",
		"difficulty": "beginner",
		"estimatedTimeMinutes": 30,
		"categoryId": 1
	}`
	assert.Error(t, bindCreateRequest(t, missingArrays))
}

func TestTagListQueryNormalize(t *testing.T) {
	q := TagListQuery{Limit: 0, Search: " eco "}
	q.Normalize()
	assert.Equal(t, 50, q.Limit)
	assert.Equal(t, "eco", q.Search)

	over := TagListQuery{Limit: 500}
	over.Normalize()
	assert.Equal(t, 100, over.Limit)
}
