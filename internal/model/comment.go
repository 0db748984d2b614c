package model

// RecipeComment 教程评论模型
// IsDeleted 为软删除标记，被删除的评论不出现在任何读取路径中但保留在表里
type RecipeComment struct {
	Base
	RecipeID   uint   `gorm:"type:int(11);not null;index" json:"recipe_id"`
	UserID     uint   `gorm:"type:int(11);not null;index" json:"user_id"`
	Content    string `gorm:"type:text;not null" json:"content"`
	LikesCount int    `gorm:"type:int(11);not null;default:0" json:"likes_count"`
	IsDeleted  bool   `gorm:"type:tinyint(1);not null;default:0;index" json:"is_deleted"`

	// 关联
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (RecipeComment) TableName() string {
	return "recipe_comments"
}
