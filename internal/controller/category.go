package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/makeoo/recipe-api/internal/mockdata"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/pkg/response"
)

// CategoryController 分类控制器
type CategoryController struct {
	categoryService *service.CategoryService
	mockMode        bool
}

// NewCategoryController 创建分类控制器，演示模式下服务可以传nil
func NewCategoryController(categoryService *service.CategoryService, mockMode bool) *CategoryController {
	return &CategoryController{categoryService: categoryService, mockMode: mockMode}
}

// List 获取分类列表
// GET /api/v1/categories
func (ctl *CategoryController) List(c *gin.Context) {
	if ctl.mockMode {
		response.Success(c, mockdata.Categories())
		return
	}

	items, cached, err := ctl.categoryService.List(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "分类不存在", "获取分类列表失败")
		return
	}

	if cached {
		response.SuccessCached(c, items)
		return
	}
	response.Success(c, items)
}

// Detail 按ID或slug获取分类
// GET /api/v1/categories/:identifier
func (ctl *CategoryController) Detail(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	item, cached, err := ctl.categoryService.GetByIdentifier(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handleDBError(c, err, "分类不存在", "获取分类失败")
		return
	}

	if cached {
		response.SuccessCached(c, item)
		return
	}
	response.Success(c, item)
}
