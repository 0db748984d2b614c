package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// TagService 标签服务
type TagService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewTagService 创建标签服务
func NewTagService(db *gorm.DB, c cache.Cache) *TagService {
	return &TagService{db: db, cache: c}
}

// List 获取标签列表，popular模式只返回用过的标签并按热度排序，
// 返回值第二项表示是否命中缓存
func (s *TagService) List(ctx context.Context, q *dto.TagListQuery) ([]dto.TagItem, bool, error) {
	cacheKey := q.CacheKey()

	var cached []dto.TagItem
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, true, nil
	}

	query := s.db.WithContext(ctx).Model(&model.Tag{})

	if q.Search != "" {
		query = query.Where("name LIKE ?", "%"+q.Search+"%")
	}

	if q.Popular {
		query = query.Where("usage_count > 0").Order("usage_count DESC")
	} else {
		query = query.Order("name ASC")
	}

	var tags []model.Tag
	if err := query.Limit(q.Limit).Find(&tags).Error; err != nil {
		return nil, false, err
	}

	items := toTagItems(tags)

	if err := s.cache.SetJSON(ctx, cacheKey, items, cache.TagListExpiration); err != nil {
		logger.Warn("写入标签列表缓存失败", zap.String("key", cacheKey), zap.Error(err))
	}

	return items, false, nil
}
