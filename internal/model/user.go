package model

// User 用户模型
type User struct {
	Base
	Username    string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email       string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	DisplayName string `gorm:"type:varchar(50)" json:"display_name"`
	Bio         string `gorm:"type:text" json:"bio"`
	AvatarURL   string `gorm:"type:varchar(255)" json:"avatar_url"`
	Location    string `gorm:"type:varchar(100)" json:"location"`
	WebsiteURL  string `gorm:"type:varchar(255)" json:"website_url"`
	IsVerified  bool   `gorm:"type:tinyint(1);not null;default:0" json:"is_verified"`
	IsActive    bool   `gorm:"type:tinyint(1);not null;default:1;index" json:"is_active"`

	// 关联
	Recipes  []*Recipe        `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
	Likes    []*RecipeLike    `gorm:"foreignKey:UserID" json:"likes,omitempty"`
	Comments []*RecipeComment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
