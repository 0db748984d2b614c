package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// listQuery 构建列表的过滤条件，数据查询和计数共用同一套条件
func (s *RecipeService) listQuery(db *gorm.DB, q *dto.RecipeListQuery) *gorm.DB {
	query := db.Model(&model.Recipe{}).
		Where("recipes.status = ?", model.RecipeStatusPublished)

	if q.Category != "" {
		query = query.Where("recipes.category_id = ?", q.Category)
	}

	if q.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", q.Difficulty)
	}

	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("(recipes.title LIKE ? OR recipes.description LIKE ?)", like, like)
	}

	if tags := q.TagList(); len(tags) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", tags)
	}

	return query
}

// childCounts 一次查出每个教程的材料、工具、步骤、评论数量
func (s *RecipeService) childCounts(ctx context.Context, ids []uint) (map[uint]dto.RecipeCounts, error) {
	counts := make(map[uint]dto.RecipeCounts, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		RecipeID uint
		Count    int64
	}

	children := []struct {
		model  interface{}
		assign func(c *dto.RecipeCounts, n int64)
	}{
		{&model.RecipeMaterial{}, func(c *dto.RecipeCounts, n int64) { c.Materials = n }},
		{&model.RecipeTool{}, func(c *dto.RecipeCounts, n int64) { c.Tools = n }},
		{&model.RecipeStep{}, func(c *dto.RecipeCounts, n int64) { c.Steps = n }},
		{&model.RecipeComment{}, func(c *dto.RecipeCounts, n int64) { c.Comments = n }},
	}

	for _, child := range children {
		var rows []row
		if err := s.db.WithContext(ctx).Model(child.model).
			Select("recipe_id", "COUNT(*) AS count").
			Where("recipe_id IN ?", ids).
			Group("recipe_id").
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			c := counts[r.RecipeID]
			child.assign(&c, r.Count)
			counts[r.RecipeID] = c
		}
	}

	return counts, nil
}

// List 获取教程列表，查询参数需先Normalize，返回值第二项表示是否命中缓存
func (s *RecipeService) List(ctx context.Context, q *dto.RecipeListQuery) (*dto.RecipeListResult, bool, error) {
	cacheKey := q.CacheKey()

	var cached dto.RecipeListResult
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, true, nil
	}

	hasTags := len(q.TagList()) > 0

	var (
		recipes []model.Recipe
		total   int64
	)

	// 数据页和总数并发查询
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if hasTags {
			// 标签join会产生重复行，先按主键分组取出本页ID再带关联查询
			var ids []uint
			if err := s.listQuery(s.db.WithContext(gctx), q).
				Group("recipes.id").
				Order(q.OrderClause()).
				Offset(q.Offset()).Limit(q.Limit).
				Pluck("recipes.id", &ids).Error; err != nil {
				return err
			}
			if len(ids) == 0 {
				return nil
			}
			return s.db.WithContext(gctx).
				Preload("Category").
				Preload("Author").
				Preload("Tags", func(db *gorm.DB) *gorm.DB {
					return db.Order("tags.usage_count DESC")
				}).
				Where("recipes.id IN ?", ids).
				Order(q.OrderClause()).
				Find(&recipes).Error
		}
		return s.listQuery(s.db.WithContext(gctx), q).
			Preload("Category").
			Preload("Author").
			Preload("Tags", func(db *gorm.DB) *gorm.DB {
				return db.Order("tags.usage_count DESC")
			}).
			Order(q.OrderClause()).
			Offset(q.Offset()).Limit(q.Limit).
			Find(&recipes).Error
	})
	g.Go(func() error {
		count := s.listQuery(s.db.WithContext(gctx), q)
		if hasTags {
			count = count.Distinct("recipes.id")
		}
		return count.Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	recipeIDs := make([]uint, 0, len(recipes))
	for i := range recipes {
		recipeIDs = append(recipeIDs, recipes[i].ID)
	}
	counts, err := s.childCounts(ctx, recipeIDs)
	if err != nil {
		return nil, false, err
	}

	items := make([]dto.RecipeListItem, 0, len(recipes))
	for i := range recipes {
		items = append(items, toRecipeListItem(&recipes[i], counts[recipes[i].ID]))
	}

	result := dto.RecipeListResult{
		Recipes:    items,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result, cache.RecipeListExpiration); err != nil {
		logger.Warn("写入教程列表缓存失败", zap.String("key", cacheKey), zap.Error(err))
	}

	return &result, false, nil
}
