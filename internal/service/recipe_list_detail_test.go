package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&config.LogConfig{Level: "error", Stdout: true})
	os.Exit(m.Run())
}

// stubCache 记录缓存调用的测试替身，GetJSON永远未命中
type stubCache struct {
	mu          sync.Mutex
	getJSONKeys []string
	setJSONKeys []string
	deletedKeys []string
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("缓存未命中")
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (s *stubCache) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedKeys = append(s.deletedKeys, keys...)
	return nil
}

func (s *stubCache) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (s *stubCache) Exists(ctx context.Context, keys ...string) (int64, error) {
	return 0, nil
}

func (s *stubCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getJSONKeys = append(s.getJSONKeys, key)
	return errors.New("缓存未命中")
}

func (s *stubCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setJSONKeys = append(s.setJSONKeys, key)
	return nil
}

func (s *stubCache) Ping(ctx context.Context) error { return nil }

func (s *stubCache) Close() error { return nil }

// newTestDB 内存sqlite数据库，单连接保证所有查询落在同一个库上
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, model.InitTables(db))
	return db
}

// seedPublishedRecipe 建出分类、作者和一条已发布教程
func seedPublishedRecipe(t *testing.T, db *gorm.DB, slug string) *model.Recipe {
	t.Helper()

	category := model.Category{Name: "园艺 " + slug, Slug: "gardening-" + slug, IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	author := model.User{
		Username: "midori-" + slug,
		Email:    "midori-" + slug + "@example.com",
		Password: "x",
		IsActive: true,
	}
	require.NoError(t, db.Create(&author).Error)

	now := time.Now()
	recipe := model.Recipe{
		Title:                "饮料瓶花盆",
		Slug:                 slug,
		Description:          "用废旧饮料瓶做一个简单的小花盆。",
		Difficulty:           model.DifficultyBeginner,
		EstimatedTimeMinutes: 30,
		CategoryID:           category.ID,
		AuthorID:             author.ID,
		Status:               model.RecipeStatusPublished,
		PublishedAt:          &now,
	}
	require.NoError(t, db.Create(&recipe).Error)
	recipe.Category = category
	recipe.Author = author
	return &recipe
}

// 列表项必须带上materials/tools/steps/comments四项子表数量
func TestListItemCarriesChildCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, &stubCache{})
	recipe := seedPublishedRecipe(t, db, "pet-bottle-planter")

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&model.RecipeMaterial{RecipeID: recipe.ID, Name: fmt.Sprintf("材料%d", i), SortOrder: i}).Error)
	}
	require.NoError(t, db.Create(&model.RecipeTool{RecipeID: recipe.ID, Name: "剪刀", IsEssential: true}).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.RecipeStep{RecipeID: recipe.ID, StepNumber: i + 1, Title: fmt.Sprintf("步骤%d", i+1), SortOrder: i}).Error)
	}
	require.NoError(t, db.Create(&model.RecipeComment{RecipeID: recipe.ID, UserID: recipe.AuthorID, Content: "不错"}).Error)

	q := &dto.RecipeListQuery{}
	q.Normalize()
	result, cached, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, result.Recipes, 1)

	counts := result.Recipes[0].Counts
	require.NotNil(t, counts)
	assert.EqualValues(t, 2, counts.Materials)
	assert.EqualValues(t, 1, counts.Tools)
	assert.EqualValues(t, 3, counts.Steps)
	assert.EqualValues(t, 1, counts.Comments)

	raw, err := json.Marshal(result.Recipes[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"counts"`)
}

// 列表项标签按使用次数降序，最多10个
func TestListItemTagsOrderedAndCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, &stubCache{})
	recipe := seedPublishedRecipe(t, db, "pet-bottle-planter")

	for i := 1; i <= 12; i++ {
		tag := model.Tag{
			Name:       fmt.Sprintf("标签%02d", i),
			Slug:       fmt.Sprintf("tag-%02d", i),
			UsageCount: i,
		}
		require.NoError(t, db.Create(&tag).Error)
		require.NoError(t, db.Create(&model.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)
	}

	q := &dto.RecipeListQuery{}
	q.Normalize()
	result, _, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)

	tags := result.Recipes[0].Tags
	require.Len(t, tags, 10)
	assert.Equal(t, "标签12", tags[0].Name)
	assert.Equal(t, "标签03", tags[9].Name)
}

// 详情最多返回20条最新评论，已删除的不算
func TestDetailCapsComments(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db, &stubCache{})
	recipe := seedPublishedRecipe(t, db, "pet-bottle-planter")

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&model.RecipeComment{
			RecipeID: recipe.ID,
			UserID:   recipe.AuthorID,
			Content:  fmt.Sprintf("评论%d", i),
		}).Error)
	}
	require.NoError(t, db.Create(&model.RecipeComment{
		RecipeID:  recipe.ID,
		UserID:    recipe.AuthorID,
		Content:   "已删除的评论",
		IsDeleted: true,
	}).Error)

	detail, err := svc.GetDetail(context.Background(), recipe.Slug)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 20)
	for _, comment := range detail.Comments {
		assert.NotEqual(t, "已删除的评论", comment.Content)
	}
}

// 每次详情请求浏览数都要前进，缓存只写不读
func TestDetailViewsAdvanceEveryCall(t *testing.T) {
	db := newTestDB(t)
	store := &stubCache{}
	svc := NewRecipeService(db, store)
	recipe := seedPublishedRecipe(t, db, "pet-bottle-planter")

	storedViews := func() int {
		var r model.Recipe
		require.NoError(t, db.First(&r, recipe.ID).Error)
		return r.ViewsCount
	}

	first, err := svc.GetDetail(context.Background(), recipe.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ViewsCount)

	// 浏览数异步落库
	require.Eventually(t, func() bool { return storedViews() == 1 }, time.Second, 10*time.Millisecond)

	second, err := svc.GetDetail(context.Background(), recipe.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ViewsCount)
	require.Eventually(t, func() bool { return storedViews() == 2 }, time.Second, 10*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.getJSONKeys)
	assert.Len(t, store.setJSONKeys, 4)
}
