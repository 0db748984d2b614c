package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/pkg/response"
)

// TagController 标签控制器
type TagController struct {
	tagService *service.TagService
	mockMode   bool
}

// NewTagController 创建标签控制器，演示模式下服务可以传nil
func NewTagController(tagService *service.TagService, mockMode bool) *TagController {
	return &TagController{tagService: tagService, mockMode: mockMode}
}

// List 获取标签列表
// GET /api/v1/tags
func (ctl *TagController) List(c *gin.Context) {
	var query dto.TagListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}
	query.Normalize()

	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	items, cached, err := ctl.tagService.List(c.Request.Context(), &query)
	if err != nil {
		handleDBError(c, err, "标签不存在", "获取标签列表失败")
		return
	}

	if cached {
		response.SuccessCached(c, items)
		return
	}
	response.Success(c, items)
}
