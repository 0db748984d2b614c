package model

// Tag 标签模型
// UsageCount 只增不减：打标签时+1，现有流程没有取消关联的入口
type Tag struct {
	Base
	Name       string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Slug       string `gorm:"type:varchar(100);not null;index" json:"slug"`
	UsageCount int    `gorm:"type:int(11);not null;default:0;index" json:"usage_count"`

	// 关联
	Recipes []*Recipe `gorm:"many2many:recipe_tags;" json:"recipes,omitempty"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// RecipeTag 教程-标签关联模型
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey;type:int(11);not null" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey;type:int(11);not null" json:"tag_id"`
}

// TableName 指定表名
func (RecipeTag) TableName() string {
	return "recipe_tags"
}
