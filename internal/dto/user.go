package dto

// UserStats 用户活跃度统计
type UserStats struct {
	RecipesCount  int64 `json:"recipesCount"`
	LikesGiven    int64 `json:"likesGiven"`
	CommentsCount int64 `json:"commentsCount"`
}

// UserProfile 用户公开资料
type UserProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Location    string    `json:"location,omitempty"`
	WebsiteURL  string    `json:"websiteUrl,omitempty"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   string    `json:"createdAt"`
	Stats       UserStats `json:"stats"`
}

// UserSummary 用户摘要
type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// UserRecipeItem 用户教程列表项，比通用列表项精简，不含作者字段
type UserRecipeItem struct {
	ID                   string       `json:"id"`
	Title                string       `json:"title"`
	Slug                 string       `json:"slug"`
	Description          string       `json:"description"`
	Difficulty           string       `json:"difficulty"`
	EstimatedTimeMinutes int          `json:"estimatedTimeMinutes"`
	Category             CategoryInfo `json:"category"`
	LikesCount           int          `json:"likesCount"`
	CommentsCount        int          `json:"commentsCount"`
	ViewsCount           int          `json:"viewsCount"`
	Tags                 []TagInfo    `json:"tags"`
	PublishedAt          string       `json:"publishedAt,omitempty"`
	CreatedAt            string       `json:"createdAt"`
}

// UserRecipesResult 用户教程列表响应
type UserRecipesResult struct {
	User       UserSummary      `json:"user"`
	Recipes    []UserRecipeItem `json:"recipes"`
	Pagination Pagination       `json:"pagination"`
}

// UserRecipesQuery 用户教程列表查询参数
type UserRecipesQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=12" binding:"omitempty,min=1,max=50"`
}

// Normalize 规范化查询参数
func (q *UserRecipesQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 12
	}
	if q.Limit > 50 {
		q.Limit = 50
	}
}
