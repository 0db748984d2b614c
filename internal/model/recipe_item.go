package model

// RecipeMaterial 教程材料模型
type RecipeMaterial struct {
	Base
	RecipeID  uint   `gorm:"type:int(11);not null;index" json:"recipe_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Quantity  string `gorm:"type:varchar(50)" json:"quantity"`
	Notes     string `gorm:"type:varchar(255)" json:"notes"`
	SortOrder int    `gorm:"type:int(11);not null;default:0" json:"sort_order"`
}

// TableName 指定表名
func (RecipeMaterial) TableName() string {
	return "recipe_materials"
}

// RecipeTool 教程工具模型
type RecipeTool struct {
	Base
	RecipeID    uint   `gorm:"type:int(11);not null;index" json:"recipe_id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	IsEssential bool   `gorm:"type:tinyint(1);not null;default:1" json:"is_essential"`
	Notes       string `gorm:"type:varchar(255)" json:"notes"`
	SortOrder   int    `gorm:"type:int(11);not null;default:0" json:"sort_order"`
}

// TableName 指定表名
func (RecipeTool) TableName() string {
	return "recipe_tools"
}

// RecipeStep 教程步骤模型
// StepNumber 与 SortOrder 是两个独立字段：前者是面向展示的1起始编号，后者决定排序
type RecipeStep struct {
	Base
	RecipeID             uint   `gorm:"type:int(11);not null;index" json:"recipe_id"`
	StepNumber           int    `gorm:"type:int(11);not null" json:"step_number"`
	Title                string `gorm:"type:varchar(100);not null" json:"title"`
	Description          string `gorm:"type:text" json:"description"`
	Tip                  string `gorm:"type:text" json:"tip"`
	ImageURL             string `gorm:"type:varchar(255)" json:"image_url"`
	EstimatedTimeMinutes int    `gorm:"type:int(11);not null;default:0" json:"estimated_time_minutes"`
	SortOrder            int    `gorm:"type:int(11);not null;default:0" json:"sort_order"`
}

// TableName 指定表名
func (RecipeStep) TableName() string {
	return "recipe_steps"
}
