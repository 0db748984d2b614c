package dto

import (
	"fmt"
	"strings"

	"github.com/makeoo/recipe-api/pkg/cache"
)

// RecipeListQuery 教程列表查询参数
type RecipeListQuery struct {
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int    `form:"limit,default=12" binding:"omitempty,min=1,max=50"`
	Category   string `form:"category" binding:"omitempty"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Search     string `form:"search" binding:"omitempty,max=100"`
	Tags       string `form:"tags" binding:"omitempty"`
	Sort       string `form:"sort,default=newest" binding:"omitempty,oneof=newest oldest popular likes"`
}

// Normalize 规范化查询参数，保证越界值不会进入查询与缓存键
func (q *RecipeListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 12
	}
	if q.Limit > 50 {
		q.Limit = 50
	}
	if q.Sort == "" {
		q.Sort = "newest"
	}
	q.Search = strings.TrimSpace(q.Search)
}

// TagList 解析逗号分隔的标签参数，去掉空段
func (q *RecipeListQuery) TagList() []string {
	if q.Tags == "" {
		return nil
	}
	parts := strings.Split(q.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// OrderClause 将排序别名映射为SQL排序子句
func (q *RecipeListQuery) OrderClause() string {
	switch q.Sort {
	case "oldest":
		return "recipes.created_at ASC"
	case "popular":
		return "recipes.views_count DESC"
	case "likes":
		return "recipes.likes_count DESC"
	default:
		return "recipes.created_at DESC"
	}
}

// Offset 计算查询偏移量
func (q *RecipeListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// CacheKey 生成列表缓存键，必须在Normalize之后调用，
// 同一组等效参数始终得到同一个键
func (q *RecipeListQuery) CacheKey() string {
	return fmt.Sprintf(cache.RecipeListKey,
		q.Page, q.Limit, q.Category, q.Difficulty, q.Search, strings.Join(q.TagList(), ","), q.Sort)
}

// MaterialInput 创建教程时的材料项
type MaterialInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Quantity string `json:"quantity" binding:"omitempty,max=50"`
	Notes    string `json:"notes" binding:"omitempty,max=255"`
}

// ToolInput 创建教程时的工具项
// IsRequired 用指针区分"未传"与"显式false"，未传按必需工具处理
type ToolInput struct {
	Name       string `json:"name" binding:"required,max=100"`
	IsRequired *bool  `json:"isRequired" binding:"omitempty"`
	Notes      string `json:"notes" binding:"omitempty,max=255"`
}

// Essential 只有显式传false才算非必需
func (t *ToolInput) Essential() bool {
	return t.IsRequired == nil || *t.IsRequired
}

// StepInput 创建教程时的步骤项
type StepInput struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty"`
	Tip         string `json:"tip" binding:"omitempty"`
}

// RecipeCreateRequest 创建教程请求
type RecipeCreateRequest struct {
	Title                string          `json:"title" binding:"required,min=1,max=200"`
	Description          string          `json:"description" binding:"required,min=10"`
	Difficulty           string          `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	EstimatedTimeMinutes int             `json:"estimatedTimeMinutes" binding:"required,min=1"`
	CategoryID           uint            `json:"categoryId" binding:"required"`
	Materials            []MaterialInput `json:"materials" binding:"required,dive"`
	Tools                []ToolInput     `json:"tools" binding:"required,dive"`
	Steps                []StepInput     `json:"steps" binding:"required,dive"`
	Tags                 []string        `json:"tags" binding:"omitempty,dive,min=1,max=50"`
}

// RecipeCreateResult 创建教程响应
type RecipeCreateResult struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// CommentCreateRequest 发表评论请求，内容trim后为空在控制器里单独拦
type CommentCreateRequest struct {
	Content string `json:"content" binding:"omitempty,max=1000"`
}

// AuthorInfo 作者摘要
type AuthorInfo struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	IsVerified  bool   `json:"isVerified"`
}

// CategoryInfo 分类摘要
type CategoryInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"iconName,omitempty"`
	ColorCode   string `json:"colorCode,omitempty"`
}

// TagInfo 标签摘要
type TagInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RecipeCounts 教程子表的数量统计
type RecipeCounts struct {
	Materials int64 `json:"materials"`
	Tools     int64 `json:"tools"`
	Steps     int64 `json:"steps"`
	Comments  int64 `json:"comments"`
}

// RecipeListItem 列表中的教程摘要，counts只在数据库查询路径下填充
type RecipeListItem struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Slug                 string        `json:"slug"`
	Description          string        `json:"description"`
	ThumbnailURL         string        `json:"thumbnailUrl,omitempty"`
	Difficulty           string        `json:"difficulty"`
	EstimatedTimeMinutes int           `json:"estimatedTimeMinutes"`
	Category             CategoryInfo  `json:"category"`
	Author               AuthorInfo    `json:"author"`
	LikesCount           int           `json:"likesCount"`
	CommentsCount        int           `json:"commentsCount"`
	ViewsCount           int           `json:"viewsCount"`
	Tags                 []TagInfo     `json:"tags"`
	PublishedAt          string        `json:"publishedAt,omitempty"`
	CreatedAt            string        `json:"createdAt"`
	UpdatedAt            string        `json:"updatedAt"`
	Counts               *RecipeCounts `json:"counts,omitempty"`
}

// RecipeListResult 教程列表响应
type RecipeListResult struct {
	Recipes    []RecipeListItem `json:"recipes"`
	Pagination Pagination       `json:"pagination"`
}

// MaterialDetail 详情中的材料项
type MaterialDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  string `json:"quantity,omitempty"`
	Notes     string `json:"notes,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// ToolDetail 详情中的工具项，isRequired是isEssential的历史别名，两个字段都返回
type ToolDetail struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsEssential bool   `json:"isEssential"`
	IsRequired  bool   `json:"isRequired"`
	Notes       string `json:"notes,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// StepDetail 详情中的步骤项
type StepDetail struct {
	ID                   string `json:"id"`
	StepNumber           int    `json:"stepNumber"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	Tip                  string `json:"tip,omitempty"`
	ImageURL             string `json:"imageUrl,omitempty"`
	EstimatedTimeMinutes int    `json:"estimatedTimeMinutes"`
	SortOrder            int    `json:"sortOrder"`
}

// CommentDetail 评论响应项
type CommentDetail struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	LikesCount int        `json:"likesCount"`
	User       AuthorInfo `json:"user"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

// RecipeDetail 教程详情响应，viewsCount返回的是本次浏览计入后的值
type RecipeDetail struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Slug                 string           `json:"slug"`
	Description          string           `json:"description"`
	ThumbnailURL         string           `json:"thumbnailUrl,omitempty"`
	Difficulty           string           `json:"difficulty"`
	EstimatedTimeMinutes int              `json:"estimatedTimeMinutes"`
	Category             CategoryInfo     `json:"category"`
	Author               AuthorInfo       `json:"author"`
	LikesCount           int              `json:"likesCount"`
	CommentsCount        int              `json:"commentsCount"`
	ViewsCount           int              `json:"viewsCount"`
	Materials            []MaterialDetail `json:"materials"`
	Tools                []ToolDetail     `json:"tools"`
	Steps                []StepDetail     `json:"steps"`
	Tags                 []TagItem        `json:"tags"`
	Comments             []CommentDetail  `json:"comments"`
	PublishedAt          string           `json:"publishedAt,omitempty"`
	CreatedAt            string           `json:"createdAt"`
	UpdatedAt            string           `json:"updatedAt"`
}

// LikeResult 点赞切换结果
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}
