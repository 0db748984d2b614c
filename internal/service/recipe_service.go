package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
	"github.com/makeoo/recipe-api/pkg/cache"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// RecipeService 教程服务
type RecipeService struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewRecipeService 创建教程服务
func NewRecipeService(db *gorm.DB, c cache.Cache) *RecipeService {
	return &RecipeService{db: db, cache: c}
}

// generateSlug 标题转小写、空白折叠成连字符，再拼上毫秒时间戳保证唯一
func generateSlug(title string) string {
	base := strings.ToLower(whitespacePattern.ReplaceAllString(title, "-"))
	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}

// tagSlug 标签名转slug
func tagSlug(name string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(name), "-")
}

// Create 创建教程，主记录和子表在同一个事务里写入
func (s *RecipeService) Create(ctx context.Context, req *dto.RecipeCreateRequest, authorID uint) (*dto.RecipeCreateResult, error) {
	now := time.Now()
	recipe := model.Recipe{
		Title:                req.Title,
		Slug:                 generateSlug(req.Title),
		Description:          req.Description,
		Difficulty:           req.Difficulty,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		CategoryID:           req.CategoryID,
		AuthorID:             authorID,
		Status:               model.RecipeStatusPublished,
		PublishedAt:          &now,
	}

	err := executeTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		if len(req.Materials) > 0 {
			materials := make([]model.RecipeMaterial, 0, len(req.Materials))
			for i, m := range req.Materials {
				materials = append(materials, model.RecipeMaterial{
					RecipeID:  recipe.ID,
					Name:      m.Name,
					Quantity:  m.Quantity,
					Notes:     m.Notes,
					SortOrder: i,
				})
			}
			if err := tx.Create(&materials).Error; err != nil {
				return err
			}
		}

		if len(req.Tools) > 0 {
			tools := make([]model.RecipeTool, 0, len(req.Tools))
			for i, t := range req.Tools {
				tools = append(tools, model.RecipeTool{
					RecipeID:    recipe.ID,
					Name:        t.Name,
					IsEssential: t.Essential(),
					Notes:       t.Notes,
					SortOrder:   i,
				})
			}
			if err := tx.Create(&tools).Error; err != nil {
				return err
			}
		}

		if len(req.Steps) > 0 {
			steps := make([]model.RecipeStep, 0, len(req.Steps))
			for i, st := range req.Steps {
				steps = append(steps, model.RecipeStep{
					RecipeID:    recipe.ID,
					StepNumber:  i + 1,
					Title:       st.Title,
					Description: st.Description,
					Tip:         st.Tip,
					SortOrder:   i,
				})
			}
			if err := tx.Create(&steps).Error; err != nil {
				return err
			}
		}

		if len(req.Tags) > 0 {
			if err := s.attachTags(tx, recipe.ID, req.Tags); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 列表缓存整体失效，失败只记日志
	if err := s.cache.DeletePattern(ctx, cache.RecipeListPattern); err != nil {
		logger.Warn("清除教程列表缓存失败", zap.Error(err))
	}

	logger.Info("教程创建成功",
		zap.Uint("recipe_id", recipe.ID),
		zap.String("title", recipe.Title))

	return &dto.RecipeCreateResult{
		ID:    toID(recipe.ID),
		Title: recipe.Title,
		Slug:  recipe.Slug,
	}, nil
}

// attachTags 按名字复用或新建标签并建立关联，已有标签使用次数加一
func (s *RecipeService) attachTags(tx *gorm.DB, recipeID uint, names []string) error {
	links := make([]model.RecipeTag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		switch {
		case err == nil:
			if err := tx.Model(&tag).
				UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
				return err
			}
		case err == gorm.ErrRecordNotFound:
			tag = model.Tag{Name: name, Slug: tagSlug(name), UsageCount: 1}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		default:
			return err
		}
		links = append(links, model.RecipeTag{RecipeID: recipeID, TagID: tag.ID})
	}
	return tx.Create(&links).Error
}

// 详情最多返回20条最新的未删除评论
const maxDetailComments = 20

// GetDetail 按ID或slug获取教程详情
// 详情路径不读缓存，浏览数要求每次访问都前进，读缓存会把它冻结整个缓存期
func (s *RecipeService) GetDetail(ctx context.Context, identifier string) (*dto.RecipeDetail, error) {
	query := s.db.WithContext(ctx).
		Where("status = ?", model.RecipeStatusPublished).
		Preload("Category").
		Preload("Author").
		Preload("Materials", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Tools", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.usage_count DESC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("created_at DESC").Limit(maxDetailComments)
		}).
		Preload("Comments.User")

	if IsNumericIdentifier(identifier) {
		query = query.Where("recipes.id = ?", identifier)
	} else {
		query = query.Where("slug = ?", identifier)
	}

	var recipe model.Recipe
	if err := query.First(&recipe).Error; err != nil {
		return nil, err
	}

	// 浏览数异步加一，不阻塞响应
	go func(id uint) {
		if err := s.db.Model(&model.Recipe{}).
			Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error; err != nil {
			logger.Warn("更新浏览数失败", zap.Uint("recipe_id", id), zap.Error(err))
		}
	}(recipe.ID)

	detail := toRecipeDetail(&recipe)

	// ID和slug两个键都写入，点赞和评论失效时两个键一起清
	idKey := fmt.Sprintf(cache.RecipeDetailIDKey, detail.ID)
	slugKey := fmt.Sprintf(cache.RecipeDetailSlugKey, detail.Slug)
	if err := s.cache.SetJSON(ctx, idKey, detail, cache.RecipeDetailExpiration); err != nil {
		logger.Warn("写入教程详情缓存失败", zap.String("key", idKey), zap.Error(err))
	}
	if err := s.cache.SetJSON(ctx, slugKey, detail, cache.RecipeDetailExpiration); err != nil {
		logger.Warn("写入教程详情缓存失败", zap.String("key", slugKey), zap.Error(err))
	}

	return &detail, nil
}
