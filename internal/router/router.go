package router

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/controller"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/middleware"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// Options 路由装配所需的依赖，演示模式下DB/Cache/Redis可以为nil
type Options struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  cache.Cache
	Redis  *redis.Client
}

// init 注册字段名提取函数，让校验错误里出现json/form字段名而不是结构体字段名
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	}
}

// Setup 装配中间件和全部路由
func Setup(opts Options) *gin.Engine {
	cfg := opts.Config
	mockMode := cfg.App.MockMode

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.Cors(cfg.App.Cors.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.App.BodyLimitMB))

	var (
		recipeService      *service.RecipeService
		interactionService *service.RecipeInteractionService
		categoryService    *service.CategoryService
		tagService         *service.TagService
		userService        *service.UserService
	)
	if !mockMode {
		recipeService = service.NewRecipeService(opts.DB, opts.Cache)
		interactionService = service.NewRecipeInteractionService(opts.DB, opts.Cache)
		categoryService = service.NewCategoryService(opts.DB, opts.Cache)
		tagService = service.NewTagService(opts.DB, opts.Cache)
		userService = service.NewUserService(opts.DB, opts.Cache)
	}

	recipeController := controller.NewRecipeController(recipeService, interactionService, mockMode)
	categoryController := controller.NewCategoryController(categoryService, mockMode)
	tagController := controller.NewTagController(tagService, mockMode)
	userController := controller.NewUserController(userService, mockMode)
	uploadController := controller.NewUploadController()
	healthController := controller.NewHealthController(opts.DB, opts.Cache, mockMode)

	// 健康检查不限流
	health := r.Group("/health")
	{
		health.GET("", healthController.Check)
		health.GET("/detailed", healthController.Detailed)
		health.GET("/ready", healthController.Ready)
		health.GET("/live", healthController.Live)
	}

	// API元信息
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        cfg.App.Name,
			"version":     cfg.App.Version,
			"status":      "running",
			"environment": cfg.App.Mode,
			"endpoints": gin.H{
				"health": "/health",
				"v1": gin.H{
					"recipes":    "/api/v1/recipes",
					"users":      "/api/v1/users",
					"categories": "/api/v1/categories",
					"tags":       "/api/v1/tags",
					"upload":     "/api/v1/upload",
				},
			},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(opts.Redis, cfg.RateLimit))

	v1 := api.Group("/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeController.List)
			recipes.POST("", recipeController.Create)
			recipes.GET("/:identifier", recipeController.Detail)
			// 点赞的POST和DELETE是同一套切换语义
			recipes.POST("/:identifier/like", recipeController.ToggleLike)
			recipes.DELETE("/:identifier/like", recipeController.ToggleLike)
			recipes.POST("/:identifier/comments", recipeController.AddComment)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryController.List)
			categories.GET("/:identifier", categoryController.Detail)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", tagController.List)
		}

		users := v1.Group("/users")
		{
			users.GET("/:identifier", userController.Profile)
			users.GET("/:identifier/recipes", userController.Recipes)
		}

		upload := v1.Group("/upload")
		{
			upload.POST("", uploadController.Upload)
			upload.POST("/images", uploadController.UploadImages)
		}
	}

	// 未匹配的路由返回结构化404，顺带列出可用的端点
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"message":   "接口 " + c.Request.URL.Path + " 不存在",
				"status":    http.StatusNotFound,
				"path":      c.Request.URL.Path,
				"method":    c.Request.Method,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"availableEndpoints": gin.H{
					"api":    "/api",
					"health": "/health",
					"v1": gin.H{
						"recipes":    "/api/v1/recipes",
						"users":      "/api/v1/users",
						"categories": "/api/v1/categories",
						"tags":       "/api/v1/tags",
						"upload":     "/api/v1/upload",
					},
				},
			},
		})
	})

	return r
}
