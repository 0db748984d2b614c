package model

// Category 分类模型
type Category struct {
	Base
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	IconName    string `gorm:"type:varchar(50)" json:"icon_name"`
	ColorCode   string `gorm:"type:varchar(20)" json:"color_code"`
	SortOrder   int    `gorm:"type:int(11);not null;default:0;index" json:"sort_order"`
	IsActive    bool   `gorm:"type:tinyint(1);not null;default:1;index" json:"is_active"`

	// 关联
	Recipes []*Recipe `gorm:"foreignKey:CategoryID" json:"recipes,omitempty"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
