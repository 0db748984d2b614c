package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/mockdata"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/pkg/response"
)

// RecipeController 教程控制器
type RecipeController struct {
	recipeService      *service.RecipeService
	interactionService *service.RecipeInteractionService
	mockMode           bool
}

// NewRecipeController 创建教程控制器，演示模式下服务可以传nil
func NewRecipeController(recipeService *service.RecipeService, interactionService *service.RecipeInteractionService, mockMode bool) *RecipeController {
	return &RecipeController{
		recipeService:      recipeService,
		interactionService: interactionService,
		mockMode:           mockMode,
	}
}

// List 获取教程列表
// GET /api/v1/recipes
func (ctl *RecipeController) List(c *gin.Context) {
	var query dto.RecipeListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}
	query.Normalize()

	if ctl.mockMode {
		response.Success(c, mockdata.RecipeList(query.Page, query.Limit))
		return
	}

	result, cached, err := ctl.recipeService.List(c.Request.Context(), &query)
	if err != nil {
		handleDBError(c, err, "教程不存在", "获取教程列表失败")
		return
	}

	if cached {
		response.SuccessCached(c, result)
		return
	}
	response.Success(c, result)
}

// Detail 按ID或slug获取教程详情
// GET /api/v1/recipes/:identifier
func (ctl *RecipeController) Detail(c *gin.Context) {
	identifier := c.Param("identifier")

	if ctl.mockMode {
		detail, ok := mockdata.RecipeDetail(identifier)
		if !ok {
			response.NotFound(c, "教程不存在")
			return
		}
		response.Success(c, detail)
		return
	}

	detail, err := ctl.recipeService.GetDetail(c.Request.Context(), identifier)
	if err != nil {
		handleDBError(c, err, "教程不存在", "获取教程详情失败")
		return
	}

	response.Success(c, detail)
}

// Create 创建教程
// POST /api/v1/recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := ctl.recipeService.Create(c.Request.Context(), &req, placeholderUserID)
	if err != nil {
		handleDBError(c, err, "分类不存在", "创建教程失败")
		return
	}

	response.Created(c, result, "教程创建成功")
}

// recipeID 解析路径中的教程ID，非数字直接拒绝
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("identifier"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "无效的教程ID", err)
		return 0, false
	}
	return uint(id), true
}

// ToggleLike 点赞切换，POST和DELETE共用同一套切换语义
// POST /api/v1/recipes/:identifier/like
// DELETE /api/v1/recipes/:identifier/like
func (ctl *RecipeController) ToggleLike(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	result, err := ctl.interactionService.ToggleLike(c.Request.Context(), id, placeholderUserID)
	if err != nil {
		handleDBError(c, err, "教程不存在", "点赞操作失败")
		return
	}

	response.Success(c, result)
}

// AddComment 发表评论
// POST /api/v1/recipes/:identifier/comments
func (ctl *RecipeController) AddComment(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		response.ErrorWithDetails(c, http.StatusBadRequest, "参数校验失败", []response.FieldError{
			{Field: "content", Message: "不能为空"},
		})
		return
	}

	comment, err := ctl.interactionService.AddComment(c.Request.Context(), id, placeholderUserID, content)
	if err != nil {
		handleDBError(c, err, "教程不存在", "发表评论失败")
		return
	}

	response.Created(c, comment, "")
}
