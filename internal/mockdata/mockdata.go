// Package mockdata 提供演示模式下的固定数据，
// 让前端在没有MySQL和Redis的环境下也能联调
package mockdata

import (
	"github.com/makeoo/recipe-api/internal/dto"
)

// RecipeList 演示模式的教程列表，分页参数原样回显
func RecipeList(page, limit int) dto.RecipeListResult {
	return dto.RecipeListResult{
		Recipes: []dto.RecipeListItem{
			{
				ID:                   "1",
				Title:                "用饮料瓶做花盆",
				Slug:                 "pet-bottle-planter",
				Description:          "把喝完的饮料瓶改造成好看的小花盆，新手也能轻松完成的环保小项目。",
				Difficulty:           "beginner",
				EstimatedTimeMinutes: 30,
				Category: dto.CategoryInfo{
					ID:        "1",
					Name:      "园艺",
					Slug:      "gardening",
					IconName:  "leaf",
					ColorCode: "#22c55e",
				},
				Author: dto.AuthorInfo{
					ID:          "1",
					Username:    "midori",
					DisplayName: "小绿",
					IsVerified:  true,
				},
				LikesCount:    42,
				CommentsCount: 8,
				ViewsCount:    150,
				Tags: []dto.TagInfo{
					{ID: "1", Name: "环保", Slug: "eco"},
					{ID: "2", Name: "回收利用", Slug: "recycle"},
				},
				PublishedAt: "2025-01-20T10:00:00Z",
				CreatedAt:   "2025-01-20T10:00:00Z",
				UpdatedAt:   "2025-01-20T10:00:00Z",
			},
			{
				ID:                   "2",
				Title:                "旧衣服改造环保袋",
				Slug:                 "old-clothes-eco-bag",
				Description:          "用不穿的T恤和布料缝一个实用的环保袋，适合刚接触缝纫的朋友。",
				Difficulty:           "beginner",
				EstimatedTimeMinutes: 45,
				Category: dto.CategoryInfo{
					ID:        "2",
					Name:      "服饰配件",
					Slug:      "clothing",
					IconName:  "shirt",
					ColorCode: "#f59e0b",
				},
				Author: dto.AuthorInfo{
					ID:          "2",
					Username:    "sakura",
					DisplayName: "小樱",
					IsVerified:  false,
				},
				LikesCount:    28,
				CommentsCount: 5,
				ViewsCount:    89,
				Tags: []dto.TagInfo{
					{ID: "1", Name: "环保", Slug: "eco"},
					{ID: "3", Name: "时尚", Slug: "fashion"},
				},
				PublishedAt: "2025-01-19T14:30:00Z",
				CreatedAt:   "2025-01-19T14:30:00Z",
				UpdatedAt:   "2025-01-19T14:30:00Z",
			},
		},
		Pagination: dto.Pagination{
			CurrentPage: page,
			TotalPages:  1,
			TotalItems:  2,
			HasNext:     false,
			HasPrev:     false,
			Limit:       limit,
		},
	}
}

// RecipeDetail 演示模式的教程详情，只认id "1" 和slug "pet-bottle-planter"
func RecipeDetail(identifier string) (dto.RecipeDetail, bool) {
	if identifier != "1" && identifier != "pet-bottle-planter" {
		return dto.RecipeDetail{}, false
	}

	return dto.RecipeDetail{
		ID:                   "1",
		Title:                "用饮料瓶做花盆",
		Slug:                 "pet-bottle-planter",
		Description:          "把喝完的饮料瓶改造成好看的小花盆，新手也能轻松完成的环保小项目。既能体验种植的乐趣，又能培养回收利用的意识。",
		Difficulty:           "beginner",
		EstimatedTimeMinutes: 30,
		Category: dto.CategoryInfo{
			ID:          "1",
			Name:        "园艺",
			Slug:        "gardening",
			Description: "植物与园艺相关的DIY项目",
			IconName:    "leaf",
			ColorCode:   "#22c55e",
		},
		Author: dto.AuthorInfo{
			ID:          "1",
			Username:    "midori",
			DisplayName: "小绿",
			Bio:         "喜欢园艺和环保手工的创作者",
			IsVerified:  true,
		},
		LikesCount:    42,
		CommentsCount: 8,
		ViewsCount:    150,
		Materials: []dto.MaterialDetail{
			{ID: "1", Name: "空饮料瓶（2L）", Quantity: "1个", Notes: "洗净并撕掉标签", SortOrder: 1},
			{ID: "2", Name: "培养土", Quantity: "适量", Notes: "园艺店或超市都能买到", SortOrder: 2},
			{ID: "3", Name: "种子或幼苗", Quantity: "适量", Notes: "推荐香草或小型花卉", SortOrder: 3},
		},
		Tools: []dto.ToolDetail{
			{ID: "1", Name: "美工刀", IsEssential: true, IsRequired: true, Notes: "换上新刀片会更顺手", SortOrder: 1},
			{ID: "2", Name: "剪刀", IsEssential: false, IsRequired: false, Notes: "收边时使用", SortOrder: 2},
		},
		Steps: []dto.StepDetail{
			{
				ID:                   "1",
				StepNumber:           1,
				Title:                "准备瓶子",
				Description:          "把瓶子洗干净并撕掉标签，完全晾干后再进行下一步。",
				Tip:                  "用热水泡一下标签会更容易撕",
				EstimatedTimeMinutes: 5,
				SortOrder:            1,
			},
			{
				ID:                   "2",
				StepNumber:           2,
				Title:                "打排水孔",
				Description:          "在瓶底钻5到6个直径约5毫米的小孔，这一步决定排水效果。",
				Tip:                  "用烧热的锥子钻孔更整齐",
				EstimatedTimeMinutes: 5,
				SortOrder:            2,
			},
			{
				ID:                   "3",
				StepNumber:           3,
				Title:                "切开瓶身",
				Description:          "用美工刀把瓶子上方三分之一切掉，切口再用剪刀修整光滑。",
				Tip:                  "先用记号笔画好切割线就不容易切歪",
				EstimatedTimeMinutes: 10,
				SortOrder:            3,
			},
			{
				ID:                   "4",
				StepNumber:           4,
				Title:                "装土种植",
				Description:          "倒入培养土到七八分满，播种或移栽幼苗，最后轻轻浇水就完成了。",
				Tip:                  "第一次浇水要轻，等土稳定后再正常养护",
				EstimatedTimeMinutes: 10,
				SortOrder:            4,
			},
		},
		Tags: []dto.TagItem{
			{ID: "1", Name: "环保", Slug: "eco", UsageCount: 45},
			{ID: "2", Name: "回收利用", Slug: "recycle", UsageCount: 32},
			{ID: "4", Name: "园艺", Slug: "gardening", UsageCount: 28},
		},
		Comments: []dto.CommentDetail{
			{
				ID:         "1",
				Content:    "讲解很清楚，照着做完在里面种了罗勒！",
				LikesCount: 0,
				User: dto.AuthorInfo{
					ID:          "2",
					Username:    "hana_diy",
					DisplayName: "小花",
					IsVerified:  false,
				},
				CreatedAt: "2025-01-21T09:15:00Z",
				UpdatedAt: "2025-01-21T09:15:00Z",
			},
			{
				ID:         "2",
				Content:    "和孩子一起做得很开心，还顺便聊了聊环保的话题。",
				LikesCount: 0,
				User: dto.AuthorInfo{
					ID:          "3",
					Username:    "papa_eco",
					DisplayName: "环保爸爸",
					IsVerified:  true,
				},
				CreatedAt: "2025-01-22T14:30:00Z",
				UpdatedAt: "2025-01-22T14:30:00Z",
			},
		},
		PublishedAt: "2025-01-20T10:00:00Z",
		CreatedAt:   "2025-01-20T10:00:00Z",
		UpdatedAt:   "2025-01-20T10:00:00Z",
	}, true
}

// Categories 演示模式的分类列表
func Categories() []dto.CategoryItem {
	return []dto.CategoryItem{
		{ID: "1", Name: "园艺", Slug: "gardening", Description: "植物与园艺相关的DIY项目", IconName: "leaf", ColorCode: "#22c55e", RecipesCount: 15, SortOrder: 1},
		{ID: "2", Name: "服饰配件", Slug: "clothing", Description: "衣物和配饰的制作与改造", IconName: "shirt", ColorCode: "#f59e0b", RecipesCount: 12, SortOrder: 2},
		{ID: "3", Name: "家居装饰", Slug: "interior", Description: "家具和家居小物的制作", IconName: "home", ColorCode: "#8b5cf6", RecipesCount: 18, SortOrder: 3},
		{ID: "4", Name: "宠物用品", Slug: "pet-supplies", Description: "给宠物做的各种小物件", IconName: "heart", ColorCode: "#ef4444", RecipesCount: 8, SortOrder: 4},
		{ID: "5", Name: "手工艺", Slug: "craft", Description: "手工艺品的制作", IconName: "scissors", ColorCode: "#06b6d4", RecipesCount: 22, SortOrder: 5},
	}
}
