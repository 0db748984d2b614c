package service

import (
	"strconv"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/model"
)

// 模型到响应结构的组装函数集中在这里，
// 保证列表、详情、用户教程三条读取路径的字段口径一致

func toID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func toAuthorInfo(u *model.User) dto.AuthorInfo {
	return dto.AuthorInfo{
		ID:          toID(u.ID),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		IsVerified:  u.IsVerified,
	}
}

func toAuthorInfoWithBio(u *model.User) dto.AuthorInfo {
	info := toAuthorInfo(u)
	info.Bio = u.Bio
	return info
}

func toCategoryInfo(c *model.Category) dto.CategoryInfo {
	return dto.CategoryInfo{
		ID:        toID(c.ID),
		Name:      c.Name,
		Slug:      c.Slug,
		IconName:  c.IconName,
		ColorCode: c.ColorCode,
	}
}

func toCategoryInfoWithDescription(c *model.Category) dto.CategoryInfo {
	info := toCategoryInfo(c)
	info.Description = c.Description
	return info
}

func toTagInfos(tags []model.Tag) []dto.TagInfo {
	result := make([]dto.TagInfo, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagInfo{
			ID:   toID(t.ID),
			Name: t.Name,
			Slug: t.Slug,
		})
	}
	return result
}

func toTagItems(tags []model.Tag) []dto.TagItem {
	result := make([]dto.TagItem, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagItem{
			ID:         toID(t.ID),
			Name:       t.Name,
			Slug:       t.Slug,
			UsageCount: t.UsageCount,
		})
	}
	return result
}

// 列表项最多携带10个标签，按使用次数降序截取
const maxListItemTags = 10

func toRecipeListItem(r *model.Recipe, counts dto.RecipeCounts) dto.RecipeListItem {
	tags := r.Tags
	if len(tags) > maxListItemTags {
		tags = tags[:maxListItemTags]
	}
	return dto.RecipeListItem{
		ID:                   toID(r.ID),
		Title:                r.Title,
		Slug:                 r.Slug,
		Description:          r.Description,
		ThumbnailURL:         r.ThumbnailURL,
		Difficulty:           r.Difficulty,
		EstimatedTimeMinutes: r.EstimatedTimeMinutes,
		Category:             toCategoryInfo(&r.Category),
		Author:               toAuthorInfo(&r.Author),
		LikesCount:           r.LikesCount,
		CommentsCount:        r.CommentsCount,
		ViewsCount:           r.ViewsCount,
		Tags:                 toTagInfos(tags),
		PublishedAt:          formatTimePtr(r.PublishedAt),
		CreatedAt:            formatTime(r.CreatedAt),
		UpdatedAt:            formatTime(r.UpdatedAt),
		Counts:               &counts,
	}
}

func toMaterialDetails(materials []model.RecipeMaterial) []dto.MaterialDetail {
	result := make([]dto.MaterialDetail, 0, len(materials))
	for _, m := range materials {
		result = append(result, dto.MaterialDetail{
			ID:        toID(m.ID),
			Name:      m.Name,
			Quantity:  m.Quantity,
			Notes:     m.Notes,
			SortOrder: m.SortOrder,
		})
	}
	return result
}

func toToolDetails(tools []model.RecipeTool) []dto.ToolDetail {
	result := make([]dto.ToolDetail, 0, len(tools))
	for _, t := range tools {
		result = append(result, dto.ToolDetail{
			ID:          toID(t.ID),
			Name:        t.Name,
			IsEssential: t.IsEssential,
			IsRequired:  t.IsEssential,
			Notes:       t.Notes,
			SortOrder:   t.SortOrder,
		})
	}
	return result
}

func toStepDetails(steps []model.RecipeStep) []dto.StepDetail {
	result := make([]dto.StepDetail, 0, len(steps))
	for _, s := range steps {
		result = append(result, dto.StepDetail{
			ID:                   toID(s.ID),
			StepNumber:           s.StepNumber,
			Title:                s.Title,
			Description:          s.Description,
			Tip:                  s.Tip,
			ImageURL:             s.ImageURL,
			EstimatedTimeMinutes: s.EstimatedTimeMinutes,
			SortOrder:            s.SortOrder,
		})
	}
	return result
}

func toCommentDetail(c *model.RecipeComment) dto.CommentDetail {
	return dto.CommentDetail{
		ID:         toID(c.ID),
		Content:    c.Content,
		LikesCount: c.LikesCount,
		User:       toAuthorInfo(&c.User),
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func toCommentDetails(comments []model.RecipeComment) []dto.CommentDetail {
	result := make([]dto.CommentDetail, 0, len(comments))
	for i := range comments {
		result = append(result, toCommentDetail(&comments[i]))
	}
	return result
}

// toRecipeDetail 组装详情响应，viewsCount按本次浏览已计入的口径加一
func toRecipeDetail(r *model.Recipe) dto.RecipeDetail {
	return dto.RecipeDetail{
		ID:                   toID(r.ID),
		Title:                r.Title,
		Slug:                 r.Slug,
		Description:          r.Description,
		ThumbnailURL:         r.ThumbnailURL,
		Difficulty:           r.Difficulty,
		EstimatedTimeMinutes: r.EstimatedTimeMinutes,
		Category:             toCategoryInfoWithDescription(&r.Category),
		Author:               toAuthorInfoWithBio(&r.Author),
		LikesCount:           r.LikesCount,
		CommentsCount:        r.CommentsCount,
		ViewsCount:           r.ViewsCount + 1,
		Materials:            toMaterialDetails(r.Materials),
		Tools:                toToolDetails(r.Tools),
		Steps:                toStepDetails(r.Steps),
		Tags:                 toTagItems(r.Tags),
		Comments:             toCommentDetails(r.Comments),
		PublishedAt:          formatTimePtr(r.PublishedAt),
		CreatedAt:            formatTime(r.CreatedAt),
		UpdatedAt:            formatTime(r.UpdatedAt),
	}
}

func toUserRecipeItem(r *model.Recipe) dto.UserRecipeItem {
	return dto.UserRecipeItem{
		ID:                   toID(r.ID),
		Title:                r.Title,
		Slug:                 r.Slug,
		Description:          r.Description,
		Difficulty:           r.Difficulty,
		EstimatedTimeMinutes: r.EstimatedTimeMinutes,
		Category:             toCategoryInfo(&r.Category),
		LikesCount:           r.LikesCount,
		CommentsCount:        r.CommentsCount,
		ViewsCount:           r.ViewsCount,
		Tags:                 toTagInfos(r.Tags),
		PublishedAt:          formatTimePtr(r.PublishedAt),
		CreatedAt:            formatTime(r.CreatedAt),
	}
}
