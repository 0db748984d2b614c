package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// UserService 用户服务
type UserService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB, c cache.Cache) *UserService {
	return &UserService{db: db, cache: c}
}

// findActive 按ID或username查找启用中的用户
func (s *UserService) findActive(ctx context.Context, identifier string) (*model.User, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if IsNumericIdentifier(identifier) {
		query = query.Where("id = ?", identifier)
	} else {
		query = query.Where("username = ?", identifier)
	}

	var user model.User
	if err := query.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile 获取用户公开资料和活跃度统计，返回值第二项表示是否命中缓存
func (s *UserService) GetProfile(ctx context.Context, identifier string) (*dto.UserProfile, bool, error) {
	cacheKey := fmt.Sprintf(cache.UserProfileKey, identifier)

	var cached dto.UserProfile
	if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, true, nil
	}

	user, err := s.findActive(ctx, identifier)
	if err != nil {
		return nil, false, err
	}

	var stats dto.UserStats

	// 三个统计量并发查询
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&model.Recipe{}).
			Where("author_id = ? AND status = ?", user.ID, model.RecipeStatusPublished).
			Count(&stats.RecipesCount).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&model.RecipeLike{}).
			Where("user_id = ?", user.ID).
			Count(&stats.LikesGiven).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&model.RecipeComment{}).
			Where("user_id = ?", user.ID).
			Count(&stats.CommentsCount).Error
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	profile := dto.UserProfile{
		ID:          toID(user.ID),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		Location:    user.Location,
		WebsiteURL:  user.WebsiteURL,
		IsVerified:  user.IsVerified,
		CreatedAt:   formatTime(user.CreatedAt),
		Stats:       stats,
	}

	if err := s.cache.SetJSON(ctx, cacheKey, profile, cache.UserProfileExpiration); err != nil {
		logger.Warn("写入用户资料缓存失败", zap.String("key", cacheKey), zap.Error(err))
	}

	return &profile, false, nil
}

// ListRecipes 获取用户发布的教程列表
func (s *UserService) ListRecipes(ctx context.Context, identifier string, q *dto.UserRecipesQuery) (*dto.UserRecipesResult, error) {
	user, err := s.findActive(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var (
		recipes []model.Recipe
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Preload("Category").
			Preload("Tags").
			Where("author_id = ? AND status = ?", user.ID, model.RecipeStatusPublished).
			Order("created_at DESC").
			Offset((q.Page - 1) * q.Limit).Limit(q.Limit).
			Find(&recipes).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&model.Recipe{}).
			Where("author_id = ? AND status = ?", user.ID, model.RecipeStatusPublished).
			Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dto.UserRecipeItem, 0, len(recipes))
	for i := range recipes {
		items = append(items, toUserRecipeItem(&recipes[i]))
	}

	return &dto.UserRecipesResult{
		User: dto.UserSummary{
			ID:          toID(user.ID),
			Username:    user.Username,
			DisplayName: user.DisplayName,
		},
		Recipes:    items,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}
