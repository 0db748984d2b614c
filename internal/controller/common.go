package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/pkg/response"
)

// 认证尚未接入，写操作先挂在1号用户名下
// TODO: 接入认证后从请求上下文取当前用户
const placeholderUserID uint = 1

// MySQL错误码
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// mockUnavailable 演示模式下不支持依赖数据库的写操作和查询
func mockUnavailable(c *gin.Context) {
	response.Error(c, http.StatusServiceUnavailable, "演示模式下该接口不可用", nil)
}

// handleDBError 数据库错误到HTTP响应的统一映射
func handleDBError(c *gin.Context, err error, notFoundMessage, fallbackMessage string) {
	var mysqlErr *mysql.MySQLError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, notFoundMessage)
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry:
		response.Conflict(c, "数据已存在", err)
	case errors.As(err, &mysqlErr) &&
		(mysqlErr.Number == mysqlRowIsReferenced || mysqlErr.Number == mysqlNoReferencedRow):
		response.BadRequest(c, "关联数据不存在或正被引用", err)
	default:
		logger.Error(fallbackMessage,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		response.InternalServerError(c, fallbackMessage, err)
	}
}
