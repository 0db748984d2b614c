package model

import (
	"time"
)

// 教程难度
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// 教程状态: draft -> published，archived为保留的终态（当前流程未使用）
const (
	RecipeStatusDraft     = "draft"
	RecipeStatusPublished = "published"
	RecipeStatusArchived  = "archived"
)

// Recipe 教程模型
type Recipe struct {
	Base
	Title                string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug                 string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description          string     `gorm:"type:text;not null" json:"description"`
	ThumbnailURL         string     `gorm:"type:varchar(255)" json:"thumbnail_url"`
	Difficulty           string     `gorm:"type:varchar(20);not null;index" json:"difficulty"` // beginner intermediate advanced
	EstimatedTimeMinutes int        `gorm:"type:int(11);not null" json:"estimated_time_minutes"`
	CategoryID           uint       `gorm:"type:int(11);not null;index" json:"category_id"`
	AuthorID             uint       `gorm:"type:int(11);not null;index" json:"author_id"`
	Status               string     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	LikesCount           int        `gorm:"type:int(11);not null;default:0" json:"likes_count"`
	CommentsCount        int        `gorm:"type:int(11);not null;default:0" json:"comments_count"`
	ViewsCount           int        `gorm:"type:int(11);not null;default:0" json:"views_count"`
	PublishedAt          *time.Time `gorm:"index" json:"published_at"`

	// 关联
	Category  Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author    User             `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Materials []RecipeMaterial `gorm:"foreignKey:RecipeID" json:"materials,omitempty"`
	Tools     []RecipeTool     `gorm:"foreignKey:RecipeID" json:"tools,omitempty"`
	Steps     []RecipeStep     `gorm:"foreignKey:RecipeID" json:"steps,omitempty"`
	Tags      []Tag            `gorm:"many2many:recipe_tags;" json:"tags,omitempty"`
	Comments  []RecipeComment  `gorm:"foreignKey:RecipeID" json:"comments,omitempty"`
}

// TableName 指定表名
func (Recipe) TableName() string {
	return "recipes"
}
