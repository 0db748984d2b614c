package model

// RecipeLike 教程点赞模型
// (recipe_id, user_id) 唯一，点赞状态以该表为准，Recipe.LikesCount 是同事务维护的冗余计数
type RecipeLike struct {
	Base
	RecipeID uint `gorm:"type:int(11);not null;uniqueIndex:uk_recipe_user" json:"recipe_id"`
	UserID   uint `gorm:"type:int(11);not null;uniqueIndex:uk_recipe_user" json:"user_id"`

	// 关联
	Recipe Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (RecipeLike) TableName() string {
	return "recipe_likes"
}
