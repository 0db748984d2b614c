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

// RecipeInteractionService 教程互动服务，负责点赞和评论
type RecipeInteractionService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewRecipeInteractionService 创建教程互动服务
func NewRecipeInteractionService(db *gorm.DB, c cache.Cache) *RecipeInteractionService {
	return &RecipeInteractionService{db: db, cache: c}
}

// invalidateDetail 同时清掉ID键和slug键的详情缓存
func (s *RecipeInteractionService) invalidateDetail(ctx context.Context, recipeID uint, slug string) {
	idKey := fmt.Sprintf(cache.RecipeDetailIDKey, toID(recipeID))
	slugKey := fmt.Sprintf(cache.RecipeDetailSlugKey, slug)
	if err := s.cache.Delete(ctx, idKey, slugKey); err != nil {
		logger.Warn("清除教程详情缓存失败", zap.Uint("recipe_id", recipeID), zap.Error(err))
	}
}

// ToggleLike 点赞切换，已点赞则取消，点赞行和冗余计数在同一个事务里更新
func (s *RecipeInteractionService) ToggleLike(ctx context.Context, recipeID, userID uint) (*dto.LikeResult, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).
		Select("id", "slug").
		Where("id = ? AND status = ?", recipeID, model.RecipeStatusPublished).
		First(&recipe).Error; err != nil {
		return nil, err
	}

	var existing model.RecipeLike
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	liked := err == gorm.ErrRecordNotFound

	txErr := executeTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if liked {
			like := model.RecipeLike{RecipeID: recipeID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			return tx.Model(&model.Recipe{}).
				Where("id = ?", recipeID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
		}
		if err := tx.Delete(&model.RecipeLike{}, existing.ID).Error; err != nil {
			return err
		}
		return tx.Model(&model.Recipe{}).
			Where("id = ? AND likes_count > 0", recipeID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	var counts []int
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", recipeID).
		Pluck("likes_count", &counts).Error; err != nil {
		return nil, err
	}
	likesCount := 0
	if len(counts) > 0 {
		likesCount = counts[0]
	}

	s.invalidateDetail(ctx, recipeID, recipe.Slug)

	logger.Info("教程点赞状态变更",
		zap.Uint("recipe_id", recipeID),
		zap.Uint("user_id", userID),
		zap.Bool("liked", liked))

	return &dto.LikeResult{Liked: liked, LikesCount: likesCount}, nil
}

// AddComment 发表评论，评论行和冗余计数在同一个事务里写入
func (s *RecipeInteractionService) AddComment(ctx context.Context, recipeID, userID uint, content string) (*dto.CommentDetail, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).
		Select("id", "slug").
		Where("id = ? AND status = ?", recipeID, model.RecipeStatusPublished).
		First(&recipe).Error; err != nil {
		return nil, err
	}

	comment := model.RecipeComment{
		RecipeID: recipeID,
		UserID:   userID,
		Content:  content,
	}

	err := executeTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&comment.User, userID).Error; err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, recipeID, recipe.Slug)

	logger.Info("教程评论发布成功",
		zap.Uint("recipe_id", recipeID),
		zap.Uint("user_id", userID),
		zap.Uint("comment_id", comment.ID))

	result := toCommentDetail(&comment)
	return &result, nil
}
