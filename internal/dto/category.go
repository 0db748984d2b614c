package dto

// CategoryItem 分类响应项，recipesCount只统计已发布教程
type CategoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	IconName     string `json:"iconName,omitempty"`
	ColorCode    string `json:"colorCode,omitempty"`
	RecipesCount int64  `json:"recipesCount"`
	SortOrder    int    `json:"sortOrder"`
}
