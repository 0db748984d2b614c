package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/makeoo/recipe-api/internal/dto"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/pkg/response"
)

// UserController 用户控制器
type UserController struct {
	userService *service.UserService
	mockMode    bool
}

// NewUserController 创建用户控制器，演示模式下服务可以传nil
func NewUserController(userService *service.UserService, mockMode bool) *UserController {
	return &UserController{userService: userService, mockMode: mockMode}
}

// Profile 按ID或username获取用户公开资料
// GET /api/v1/users/:identifier
func (ctl *UserController) Profile(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	profile, cached, err := ctl.userService.GetProfile(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		handleDBError(c, err, "用户不存在", "获取用户信息失败")
		return
	}

	if cached {
		response.SuccessCached(c, profile)
		return
	}
	response.Success(c, profile)
}

// Recipes 获取用户发布的教程列表
// GET /api/v1/users/:identifier/recipes
func (ctl *UserController) Recipes(c *gin.Context) {
	if ctl.mockMode {
		mockUnavailable(c)
		return
	}

	var query dto.UserRecipesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}
	query.Normalize()

	result, err := ctl.userService.ListRecipes(c.Request.Context(), c.Param("identifier"), &query)
	if err != nil {
		handleDBError(c, err, "用户不存在", "获取用户教程失败")
		return
	}

	response.Success(c, result)
}
