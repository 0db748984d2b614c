package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// CategoryService 分类服务
type CategoryService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewCategoryService 创建分类服务
func NewCategoryService(db *gorm.DB, c cache.Cache) *CategoryService {
	return &CategoryService{db: db, cache: c}
}

// publishedCounts 一次查出各分类下已发布教程的数量
func (s *CategoryService) publishedCounts(ctx context.Context, categoryIDs []uint) (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}
	var rows []row
	err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Select("category_id", "COUNT(*) AS count").
		Where("status = ? AND category_id IN ?", model.RecipeStatusPublished, categoryIDs).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}

func toCategoryItem(c *model.Category, recipesCount int64) dto.CategoryItem {
	return dto.CategoryItem{
		ID:           toID(c.ID),
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		IconName:     c.IconName,
		ColorCode:    c.ColorCode,
		RecipesCount: recipesCount,
		SortOrder:    c.SortOrder,
	}
}

// List 获取启用中的分类列表，返回值第二项表示是否命中缓存
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryItem, bool, error) {
	var cached []dto.CategoryItem
	if err := s.cache.GetJSON(ctx, cache.CategoryListKey, &cached); err == nil {
		return cached, true, nil
	}

	items, err := s.loadList(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.SetJSON(ctx, cache.CategoryListKey, items, cache.CategoryListExpiration); err != nil {
		logger.Warn("写入分类列表缓存失败", zap.Error(err))
	}

	return items, false, nil
}

// loadList 从数据库组装分类列表，定时任务刷新缓存时也走这里
func (s *CategoryService) loadList(ctx context.Context) ([]dto.CategoryItem, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	counts := map[uint]int64{}
	if len(ids) > 0 {
		counts, err = s.publishedCounts(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.CategoryItem, 0, len(categories))
	for i := range categories {
		items = append(items, toCategoryItem(&categories[i], counts[categories[i].ID]))
	}
	return items, nil
}

// RefreshListCache 重新加载分类列表并写入缓存，由定时任务调用
func (s *CategoryService) RefreshListCache(ctx context.Context) error {
	items, err := s.loadList(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetJSON(ctx, cache.CategoryListKey, items, cache.CategoryListExpiration)
}

// GetByIdentifier 按ID或slug获取分类，返回值第二项表示是否命中缓存
func (s *CategoryService) GetByIdentifier(ctx context.Context, identifier string) (*dto.CategoryItem, bool, error) {
	cacheKey := fmt.Sprintf(cache.CategoryDetailKey, identifier)

	var cached dto.CategoryItem
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, true, nil
	}

	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if IsNumericIdentifier(identifier) {
		query = query.Where("id = ?", identifier)
	} else {
		query = query.Where("slug = ?", identifier)
	}

	var category model.Category
	if err := query.First(&category).Error; err != nil {
		return nil, false, err
	}

	counts, err := s.publishedCounts(ctx, []uint{category.ID})
	if err != nil {
		return nil, false, err
	}

	item := toCategoryItem(&category, counts[category.ID])

	if err := s.cache.SetJSON(ctx, cacheKey, item, cache.CategoryExpiration); err != nil {
		logger.Warn("写入分类详情缓存失败", zap.String("key", cacheKey), zap.Error(err))
	}

	return &item, false, nil
}
